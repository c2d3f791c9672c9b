package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pix-backend/internal/adapter/http/dto/request"
	"pix-backend/internal/domain/entities"
	mock_interfaces "pix-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPaymentRequest() request.PaymentRequest {
	amount := 100.0
	return request.PaymentRequest{
		Customer: &request.CustomerRequest{
			Name:     "A",
			Email:    "a@a.com",
			Phone:    "1",
			Document: &request.DocumentRequest{Number: "123", Type: "CPF"},
		},
		Items:  []request.ItemRequest{{Name: "ticket", Price: 100}},
		Amount: &amount,
	}
}

func TestPixPaymentUseCase_CreatePayment_ValidationBeforeGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	// No EXPECT: any gateway call fails the test.
	uc := NewPixPaymentUseCase(gateway)

	cases := []struct {
		name   string
		mutate func(*request.PaymentRequest)
		kind   request.ValidationKind
	}{
		{"missing customer", func(r *request.PaymentRequest) { r.Customer = nil }, request.KindMissingField},
		{"missing items", func(r *request.PaymentRequest) { r.Items = nil }, request.KindMissingField},
		{"missing amount", func(r *request.PaymentRequest) { r.Amount = nil }, request.KindMissingField},
		{"empty items", func(r *request.PaymentRequest) { r.Items = []request.ItemRequest{} }, request.KindInvalidItems},
		{"zero amount", func(r *request.PaymentRequest) { *r.Amount = 0 }, request.KindInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPaymentRequest()
			tc.mutate(&req)

			_, err := uc.CreatePayment(context.Background(), req, "http://host/v1/pix/webhook")

			var vErr *request.ValidationError
			if !errors.As(err, &vErr) || vErr.Kind != tc.kind {
				t.Fatalf("expected validation error %s, got %v", tc.kind, err)
			}
		})
	}
}

func TestPixPaymentUseCase_CreatePayment_BuildsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	uc := NewPixPaymentUseCase(gateway)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return now }

	var orders []entities.PaymentOrder
	gateway.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error) {
			orders = append(orders, order)
			return entities.PaymentRecord{ID: "pay-1", Status: entities.PaymentStatusWaitingPayment}, nil
		}).
		Times(2)

	for i := 0; i < 2; i++ {
		if _, err := uc.CreatePayment(context.Background(), validPaymentRequest(), "https://host/v1/pix/webhook"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	first, second := orders[0], orders[1]
	if first.TransactionID == "" || first.TransactionID == second.TransactionID {
		t.Fatalf("expected fresh transaction id per call, got %q and %q", first.TransactionID, second.TransactionID)
	}
	if first.Amount != 100 {
		t.Fatalf("expected amount 100, got %d", first.Amount)
	}
	if first.Customer.Document.Type != "cpf" {
		t.Fatalf("expected lower-cased document type, got %q", first.Customer.Document.Type)
	}
	if !strings.HasSuffix(first.Description, first.TransactionID[:8]) {
		t.Fatalf("expected description to carry the short id, got %q", first.Description)
	}
	if !first.ExpiresAt.Equal(now.Add(30 * time.Minute)) {
		t.Fatalf("expected expiry 30m from now, got %v", first.ExpiresAt)
	}
	if first.NotificationURL != "https://host/v1/pix/webhook" {
		t.Fatalf("unexpected notification url: %q", first.NotificationURL)
	}
	if len(first.Items) != 1 || first.Items[0].Name != "ticket" {
		t.Fatalf("unexpected items: %+v", first.Items)
	}
}

func TestPixPaymentUseCase_CreatePayment_GatewayErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPixPaymentUseCase(gateway)

	wantErr := errors.New("upstream down")
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, wantErr)

	_, err := uc.CreatePayment(context.Background(), validPaymentRequest(), "http://host/v1/pix/webhook")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
}

func TestPixPaymentUseCase_CreatePayment_NoGateway(t *testing.T) {
	uc := NewPixPaymentUseCase(nil)
	_, err := uc.CreatePayment(context.Background(), validPaymentRequest(), "http://host/v1/pix/webhook")
	if !errors.Is(err, ErrPaymentGatewayNotWired) {
		t.Fatalf("expected ErrPaymentGatewayNotWired, got %v", err)
	}
}

func TestPixPaymentUseCase_CheckStatus(t *testing.T) {
	t.Run("empty transaction id", func(t *testing.T) {
		uc := NewPixPaymentUseCase(nil)
		_, err := uc.CheckStatus(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("passes through provider response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixPaymentUseCase(gateway)

		raw := json.RawMessage(`{"status":"paid"}`)
		gateway.EXPECT().CheckStatus(gomock.Any(), "tx-1").Return(raw, nil)

		got, err := uc.CheckStatus(context.Background(), " tx-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"status":"paid"}` {
			t.Fatalf("unexpected response: %s", got)
		}
	})
}

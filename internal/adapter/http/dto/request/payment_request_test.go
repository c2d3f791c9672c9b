package request

import (
	"encoding/json"
	"testing"
)

func validRequest() PaymentRequest {
	amount := 100.0
	return PaymentRequest{
		Customer: &CustomerRequest{
			Name:     "A",
			Email:    "a@a.com",
			Phone:    "1",
			Document: &DocumentRequest{Number: "123", Type: "CPF"},
		},
		Items:  []ItemRequest{{Name: "ticket", Price: 100}},
		Amount: &amount,
	}
}

func TestPaymentRequest_Validate_TopLevelFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PaymentRequest)
		field  string
	}{
		{"missing customer", func(r *PaymentRequest) { r.Customer = nil }, "customer"},
		{"missing items", func(r *PaymentRequest) { r.Items = nil }, "items"},
		{"missing amount", func(r *PaymentRequest) { r.Amount = nil }, "amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			err := r.Validate()
			if err == nil || err.Kind != KindMissingField {
				t.Fatalf("expected MissingField, got %v", err)
			}
			if err.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, err.Field)
			}
		})
	}
}

func TestPaymentRequest_Validate_CustomerFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PaymentRequest)
		field  string
	}{
		{"empty name", func(r *PaymentRequest) { r.Customer.Name = "  " }, "customer.name"},
		{"empty email", func(r *PaymentRequest) { r.Customer.Email = "" }, "customer.email"},
		{"empty phone", func(r *PaymentRequest) { r.Customer.Phone = "" }, "customer.phone"},
		{"missing document", func(r *PaymentRequest) { r.Customer.Document = nil }, "customer.document"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			err := r.Validate()
			if err == nil || err.Kind != KindMissingField || err.Field != tc.field {
				t.Fatalf("expected MissingField %s, got %v", tc.field, err)
			}
		})
	}
}

func TestPaymentRequest_Validate_Document(t *testing.T) {
	r := validRequest()
	r.Customer.Document.Number = ""
	if err := r.Validate(); err == nil || err.Kind != KindInvalidDocument {
		t.Fatalf("expected InvalidDocument, got %v", err)
	}

	r = validRequest()
	r.Customer.Document.Type = " "
	if err := r.Validate(); err == nil || err.Kind != KindInvalidDocument {
		t.Fatalf("expected InvalidDocument, got %v", err)
	}
}

func TestPaymentRequest_Validate_Items(t *testing.T) {
	r := validRequest()
	r.Items = []ItemRequest{}
	if err := r.Validate(); err == nil || err.Kind != KindInvalidItems {
		t.Fatalf("expected InvalidItems, got %v", err)
	}

	r = validRequest()
	r.Items = []ItemRequest{{Name: "a", Price: 1}, {Name: "b", Price: 2}}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentRequest_Validate_Amount(t *testing.T) {
	for _, amount := range []float64{0, -1, -0.01} {
		r := validRequest()
		*r.Amount = amount
		if err := r.Validate(); err == nil || err.Kind != KindInvalidAmount {
			t.Fatalf("amount %v: expected InvalidAmount, got %v", amount, err)
		}
	}

	for _, amount := range []float64{1, 100, 0.5, 12345} {
		r := validRequest()
		*r.Amount = amount
		if err := r.Validate(); err != nil {
			t.Fatalf("amount %v: unexpected error: %v", amount, err)
		}
	}
}

func TestPaymentRequest_Validate_OrderOfRules(t *testing.T) {
	// A request violating every rule must fail on the first one.
	var r PaymentRequest
	err := r.Validate()
	if err == nil || err.Kind != KindMissingField || err.Field != "customer" {
		t.Fatalf("expected MissingField customer first, got %v", err)
	}
}

func TestPaymentRequest_ZeroAmountIsPresent(t *testing.T) {
	// "amount": 0 is present but invalid, not missing.
	var r PaymentRequest
	if err := json.Unmarshal([]byte(`{"customer":{"name":"A","email":"a@a.com","phone":"1","document":{"number":"1","type":"cpf"}},"items":[{"name":"x","price":1}],"amount":0}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	err := r.Validate()
	if err == nil || err.Kind != KindInvalidAmount {
		t.Fatalf("expected InvalidAmount, got %v", err)
	}
}

package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix-backend/internal/webhook"

	"github.com/gin-gonic/gin"
)

const testWebhookSecret = "test-webhook-secret"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(webhook.NewVerifier(testWebhookSecret))
	r := gin.New()
	r.POST("/v1/pix/webhook", h.ReceiveWebhook)
	return r
}

func TestWebhookHandler_MissingSignature(t *testing.T) {
	r := newWebhookRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/pix/webhook", bytes.NewBufferString(`{"id":"tx-1"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error body, got %s", w.Body.String())
	}
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	r := newWebhookRouter()
	payload := []byte(`{"id":"tx-1","status":"paid"}`)

	req := httptest.NewRequest(http.MethodPost, "/v1/pix/webhook", bytes.NewBuffer(payload))
	req.Header.Set(SignatureHeader, signBody("wrong-secret", payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestWebhookHandler_TamperedBody(t *testing.T) {
	r := newWebhookRouter()
	payload := []byte(`{"id":"tx-1","status":"paid"}`)
	signature := signBody(testWebhookSecret, payload)

	tampered := append([]byte(nil), payload...)
	tampered[len(tampered)-2] ^= 0x01

	req := httptest.NewRequest(http.MethodPost, "/v1/pix/webhook", bytes.NewBuffer(tampered))
	req.Header.Set(SignatureHeader, signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestWebhookHandler_ValidDelivery(t *testing.T) {
	r := newWebhookRouter()
	payload := []byte(`{"id":"tx-1","status":"paid","amount":100}`)

	req := httptest.NewRequest(http.MethodPost, "/v1/pix/webhook", bytes.NewBuffer(payload))
	req.Header.Set(SignatureHeader, signBody(testWebhookSecret, payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "received" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestWebhookHandler_ValidSignatureInvalidJSON(t *testing.T) {
	r := newWebhookRouter()
	payload := []byte(`{not-json`)

	req := httptest.NewRequest(http.MethodPost, "/v1/pix/webhook", bytes.NewBuffer(payload))
	req.Header.Set(SignatureHeader, signBody(testWebhookSecret, payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

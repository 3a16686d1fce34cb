package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gecf-kip/insight/internal/config"
)

func TestReportHandler_GeneratesPDF(t *testing.T) {
	handler := NewReportHandler()

	body := `[{"title":"Outlook","countries":["Qatar"],"summary":"Qatar grows.","source":"Argus"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.GenerateReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
}

func TestReportHandler_RejectsBadInput(t *testing.T) {
	handler := NewReportHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "nope"},
		{name: "empty selection", body: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.GenerateReport(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(&config.Config{AIAPIKey: "key"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"gemini_api_key_set":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

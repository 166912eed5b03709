package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func validRecord() agreement.Record {
	return agreement.Record{
		ReferenceNumber:    "SA-2024-001",
		Date:               time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ClientName:         "Acme Co",
		ClientEmail:        "a@acme.com",
		RegistrationNumber: "RC-123",
		ServiceType:        agreement.ServiceTypeConsultancy,
		ServiceProvider:    "Jane Doe Consulting",
		ScopeOfWork:        "Provide advisory services.",
		FeeAmount:          decimal.NewFromInt(1500),
		Currency:           agreement.CurrencyUSD,
	}
}

func validDocument() *agreement.Document {
	return &agreement.Document{
		FileName:    "service_agreement_SA-2024-001_20240305.pdf",
		ContentType: agreement.ContentTypePDF,
		Content:     []byte("%PDF-1.3 test"),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

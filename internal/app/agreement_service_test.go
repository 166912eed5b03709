package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
	"github.com/jsamuelsen11/agreement-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/agreement-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validRecord() agreement.Record {
	return agreement.Record{
		ReferenceNumber:    "REF-001",
		Date:               time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ClientName:         "Acme W.L.L.",
		ClientEmail:        "ops@acme.example",
		RegistrationNumber: "CR-12345",
		ServiceType:        agreement.ServiceTypeVAT,
		ServiceProvider:    "Ledger Partners",
		ScopeOfWork:        "Quarterly VAT returns.",
		FeeAmount:          decimal.NewFromInt(1500),
		Currency:           agreement.CurrencyBHD,
	}
}

// newTestMetrics returns metrics backed by a manual reader so tests can
// collect what the service recorded.
func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "agreement-service-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m, reader
}

// generatedCount returns the agreement.generated.total value for result.
func generatedCount(t *testing.T, reader *sdkmetric.ManualReader, result string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "agreement.generated.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("agreement.generated.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(telemetry.AttrResult); ok && v.AsString() == result {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestNewAgreementService_NilLogger(t *testing.T) {
	t.Parallel()
	svc := NewAgreementService(mocks.NewMockDocumentRenderer(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewAgreementService(nil logger) should create a no-op logger, got nil")
	}
}

func TestAgreementService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns named pdf document on success", func(t *testing.T) {
		t.Parallel()
		renderer := mocks.NewMockDocumentRenderer(t)
		svc := NewAgreementService(renderer, nil, discardLogger())

		rec := validRecord()
		renderer.EXPECT().Render(rec).Return([]byte("%PDF-1.3 test"), nil)

		doc, err := svc.Generate(context.Background(), rec)
		if err != nil {
			t.Fatalf("Generate() error = %v, want nil", err)
		}
		if doc.FileName != "service_agreement_REF-001_20240305.pdf" {
			t.Errorf("FileName = %q, want %q", doc.FileName, "service_agreement_REF-001_20240305.pdf")
		}
		if doc.ContentType != agreement.ContentTypePDF {
			t.Errorf("ContentType = %q, want %q", doc.ContentType, agreement.ContentTypePDF)
		}
		if string(doc.Content) != "%PDF-1.3 test" {
			t.Errorf("Content = %q, want renderer output", doc.Content)
		}
	})

	t.Run("missing required field never reaches renderer", func(t *testing.T) {
		t.Parallel()
		renderer := mocks.NewMockDocumentRenderer(t)
		svc := NewAgreementService(renderer, nil, discardLogger())

		rec := validRecord()
		rec.ClientName = "   "

		doc, err := svc.Generate(context.Background(), rec)
		if doc != nil {
			t.Errorf("Generate() doc = %+v, want nil", doc)
		}
		if !errors.Is(err, domain.ErrMissingRequiredField) {
			t.Fatalf("Generate() error = %v, want ErrMissingRequiredField", err)
		}
		var mfe *domain.MissingFieldsError
		if !errors.As(err, &mfe) {
			t.Fatalf("errors.As(*MissingFieldsError) = false for %v", err)
		}
		if len(mfe.Fields) != 1 || mfe.Fields[0] != "client_name" {
			t.Errorf("Fields = %v, want [client_name]", mfe.Fields)
		}
		renderer.AssertNotCalled(t, "Render", mock.Anything)
	})

	t.Run("negative fee is a validation error", func(t *testing.T) {
		t.Parallel()
		renderer := mocks.NewMockDocumentRenderer(t)
		svc := NewAgreementService(renderer, nil, discardLogger())

		rec := validRecord()
		rec.FeeAmount = decimal.NewFromInt(-1)

		_, err := svc.Generate(context.Background(), rec)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Generate() error = %v, want ErrValidation", err)
		}
		if errors.Is(err, domain.ErrMissingRequiredField) {
			t.Errorf("Generate() error = %v, should not match ErrMissingRequiredField", err)
		}
	})

	t.Run("renderer failure is wrapped as ErrRender", func(t *testing.T) {
		t.Parallel()
		renderer := mocks.NewMockDocumentRenderer(t)
		svc := NewAgreementService(renderer, nil, discardLogger())

		boom := errors.New("font table exhausted")
		renderer.EXPECT().Render(mock.Anything).Return(nil, boom)

		_, err := svc.Generate(context.Background(), validRecord())
		if !errors.Is(err, domain.ErrRender) {
			t.Errorf("Generate() error = %v, want ErrRender", err)
		}
		if !errors.Is(err, boom) {
			t.Errorf("Generate() error = %v, want wrapped cause", err)
		}
	})

	t.Run("renderer ErrRender passes through unchanged", func(t *testing.T) {
		t.Parallel()
		renderer := mocks.NewMockDocumentRenderer(t)
		svc := NewAgreementService(renderer, nil, discardLogger())

		renderErr := errors.Join(domain.ErrRender, errors.New("client_name: unsupported character"))
		renderer.EXPECT().Render(mock.Anything).Return(nil, renderErr)

		_, err := svc.Generate(context.Background(), validRecord())
		if err == nil || err.Error() != renderErr.Error() {
			t.Errorf("Generate() error = %v, want %v", err, renderErr)
		}
	})
}

func TestAgreementService_Generate_Metrics(t *testing.T) {
	t.Parallel()
	metrics, reader := newTestMetrics(t)
	renderer := mocks.NewMockDocumentRenderer(t)
	svc := NewAgreementService(renderer, metrics, discardLogger())

	renderer.EXPECT().Render(mock.Anything).Return([]byte("%PDF"), nil).Once()
	renderer.EXPECT().Render(mock.Anything).Return(nil, errors.New("boom")).Once()

	ctx := context.Background()
	if _, err := svc.Generate(ctx, validRecord()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := svc.Generate(ctx, validRecord()); err == nil {
		t.Fatal("Generate() error = nil, want render failure")
	}
	missing := validRecord()
	missing.ReferenceNumber = ""
	if _, err := svc.Generate(ctx, missing); err == nil {
		t.Fatal("Generate() error = nil, want missing field")
	}

	tests := []struct {
		result string
		want   int64
	}{
		{resultGenerated, 1},
		{resultFailed, 1},
		{resultMissing, 1},
		{resultInvalid, 0},
	}
	for _, tt := range tests {
		if got := generatedCount(t, reader, tt.result); got != tt.want {
			t.Errorf("agreement.generated.total{result=%q} = %d, want %d", tt.result, got, tt.want)
		}
	}
}

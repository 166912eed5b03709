// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
	"github.com/jsamuelsen11/agreement-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/agreement-service/internal/ports"
)

// Compile-time check that AgreementService implements ports.AgreementService.
var _ ports.AgreementService = (*AgreementService)(nil)

// Outcome labels for agreement.generated.total.
const (
	resultGenerated = "generated"
	resultMissing   = "missing_required_field"
	resultInvalid   = "invalid"
	resultFailed    = "render_failed"
)

// AgreementService implements ports.AgreementService. It enforces the record
// invariants, delegates layout to the DocumentRenderer port and packages the
// bytes as a named download. It holds no per-submission state.
type AgreementService struct {
	renderer ports.DocumentRenderer
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewAgreementService creates an AgreementService. A nil logger is replaced by
// a no-op logger; nil metrics disables metric recording.
func NewAgreementService(renderer ports.DocumentRenderer, metrics *telemetry.Metrics, logger *slog.Logger) *AgreementService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AgreementService{
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Generate validates rec and renders it. The renderer is only invoked for a
// record whose required fields are all present.
func (s *AgreementService) Generate(ctx context.Context, rec agreement.Record) (*agreement.Document, error) {
	ctx, span := otel.Tracer("app").Start(ctx, "agreement.Generate")
	defer span.End()

	span.SetAttributes(
		attribute.String("agreement.reference_number", rec.ReferenceNumber),
		attribute.String("agreement.service_type", rec.ServiceType.String()),
	)

	s.logger.InfoContext(ctx, "generating agreement",
		slog.String("reference_number", rec.ReferenceNumber),
		slog.String("service_type", rec.ServiceType.String()),
		slog.String("currency", rec.Currency.String()),
	)

	if err := rec.Validate(); err != nil {
		result := resultInvalid
		if errors.Is(err, domain.ErrMissingRequiredField) {
			result = resultMissing
		}
		s.logger.WarnContext(ctx, "agreement rejected",
			slog.String("operation", "Generate"),
			slog.String("reference_number", rec.ReferenceNumber),
			slog.Any("error", err),
		)
		span.SetStatus(codes.Error, result)
		s.record(ctx, rec, result)
		return nil, err
	}

	start := time.Now()
	content, err := s.renderer.Render(rec)
	elapsed := time.Since(start)

	if err != nil {
		if !errors.Is(err, domain.ErrRender) {
			err = errors.Join(domain.ErrRender, err)
		}
		s.logger.ErrorContext(ctx, "failed to render agreement",
			slog.String("operation", "Generate"),
			slog.String("reference_number", rec.ReferenceNumber),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, resultFailed)
		s.record(ctx, rec, resultFailed)
		return nil, err
	}

	doc := &agreement.Document{
		FileName:    rec.FileName(),
		ContentType: agreement.ContentTypePDF,
		Content:     content,
	}

	s.logger.InfoContext(ctx, "agreement generated",
		slog.String("file_name", doc.FileName),
		slog.Int("bytes", len(content)),
		slog.Duration("render_duration", elapsed),
	)
	s.record(ctx, rec, resultGenerated)
	s.recordRender(ctx, rec, elapsed, len(content))

	return doc, nil
}

// record counts one submission outcome. Safe with nil metrics.
func (s *AgreementService) record(ctx context.Context, rec agreement.Record, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.AgreementGeneratedTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
		telemetry.AttrServiceType.String(rec.ServiceType.String()),
	))
}

func (s *AgreementService) recordRender(ctx context.Context, rec agreement.Record, elapsed time.Duration, size int) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrServiceType.String(rec.ServiceType.String()),
		telemetry.AttrCurrency.String(rec.Currency.String()),
	)
	s.metrics.AgreementRenderDuration.Record(ctx, elapsed.Seconds(), attrs)
	s.metrics.AgreementDocumentSize.Record(ctx, int64(size), attrs)
}

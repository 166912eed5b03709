package ports

import (
	"context"

	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

// AgreementService defines the service port for generating service
// agreements. Implemented by the application layer; called by inbound
// adapters (handlers).
type AgreementService interface {
	// Generate validates the record and renders it into a downloadable
	// document. Each call is independent; no state survives between calls.
	// Returns domain.ErrMissingRequiredField (and domain.ErrValidation) when
	// a required field is empty, domain.ErrValidation for other invalid
	// input, and domain.ErrRender when the renderer fails. No partial
	// document is ever returned alongside an error.
	Generate(ctx context.Context, rec agreement.Record) (*agreement.Document, error)
}

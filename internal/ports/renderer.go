package ports

import "github.com/jsamuelsen11/agreement-service/internal/domain/agreement"

// DocumentRenderer turns a validated agreement record into PDF bytes.
// Implemented by the pdf adapter; called by the application layer.
type DocumentRenderer interface {
	// Render is a pure function of rec: identical records produce
	// byte-identical output. Errors wrap domain.ErrRender.
	Render(rec agreement.Record) ([]byte, error)
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

// ContentDisposition returns the attachment header value for a download named
// fileName. Names that need escaping are encoded per RFC 2231.
func ContentDisposition(fileName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); v != "" {
		return v
	}
	return "attachment"
}

// WriteDocument writes doc as a file download with a 200 status.
func WriteDocument(w http.ResponseWriter, r *http.Request, doc *agreement.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", ContentDisposition(doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(doc.Content); err != nil {
		slog.ErrorContext(r.Context(), "failed to write document",
			slog.String("file_name", doc.FileName),
			slog.Any("error", err),
		)
	}
}

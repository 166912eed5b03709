package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/agreement-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agreement-service/internal/adapters/http/views"
	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/platform/logging"
	"github.com/jsamuelsen11/agreement-service/internal/ports"
)

// PageRenderer renders a named HTML page. *views.Engine implements it.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// AgreementHandler serves the agreement form and turns submissions into PDF
// downloads.
type AgreementHandler struct {
	svc   ports.AgreementService
	pages PageRenderer
	now   func() time.Time
}

// AgreementHandlerOption configures an AgreementHandler.
type AgreementHandlerOption func(*AgreementHandler)

// WithClock overrides the clock used for the default agreement date.
func WithClock(now func() time.Time) AgreementHandlerOption {
	return func(h *AgreementHandler) {
		h.now = now
	}
}

// NewAgreementHandler creates a new AgreementHandler.
func NewAgreementHandler(svc ports.AgreementService, pages PageRenderer, opts ...AgreementHandlerOption) *AgreementHandler {
	h := &AgreementHandler{
		svc:   svc,
		pages: pages,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ShowForm handles GET /. The date field is prefilled with today.
func (h *AgreementHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	form := &dto.AgreementForm{Date: h.now().Format(dto.DateLayout)}
	h.renderForm(w, r, http.StatusOK, form, nil)
}

// SubmitForm handles POST /agreements. A valid submission is answered with the
// PDF as an attachment. Otherwise the form is shown again with the submitted
// values: 422 for missing or invalid fields, 500 when rendering failed.
func (h *AgreementHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := parseFormBody(w, r); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, &dto.AgreementForm{}, err)
		return
	}

	rec, form, err := dto.CollectAgreement(r.PostForm, h.now())
	if err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, err)
		return
	}

	doc, err := h.svc.Generate(r.Context(), rec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusUnprocessableEntity
		}
		h.renderForm(w, r, status, form, err)
		return
	}

	dto.WriteDocument(w, r, doc)
}

// CreateAgreement handles POST /api/v1/agreements. The JSON body is validated
// with the same rules as the form; failures are RFC 9457 problem details.
func (h *AgreementHandler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	var req dto.AgreementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := req.ToRecord(h.now())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	doc, err := h.svc.Generate(r.Context(), rec)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteDocument(w, r, doc)
}

func (h *AgreementHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, form *dto.AgreementForm, formErr error) {
	if err := h.pages.Render(w, status, views.PageAgreementForm, views.NewFormPage(form, formErr)); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render form page",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// Package pdf renders service agreements into fixed-layout PDF documents
// using go-pdf/fpdf.
//
// The layout is a single top-to-bottom flow (title, reference/date block,
// client and service tables, scope of work). Pagination is left to fpdf's
// automatic page break; the decorative border is drawn from the page header
// hook so it repeats on every page.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
	"github.com/jsamuelsen11/agreement-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.DocumentRenderer = (*Renderer)(nil)
	_ ports.HealthChecker    = (*Renderer)(nil)
)

const (
	documentTitle = "SERVICE AGREEMENT"

	headingClient  = "CLIENT INFORMATION"
	headingService = "SERVICE DETAILS"
	headingScope   = "SCOPE OF WORK"

	defaultCreator = "agreement-service"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles zlib compression of page content streams.
// Uncompressed output is larger but keeps the text greppable.
func WithCompression(on bool) Option {
	return func(r *Renderer) {
		r.compress = on
	}
}

// WithAuthor sets the PDF Author metadata.
func WithAuthor(author string) Option {
	return func(r *Renderer) {
		r.author = author
	}
}

// WithCreator sets the PDF Creator metadata.
func WithCreator(creator string) Option {
	return func(r *Renderer) {
		r.creator = creator
	}
}

// Renderer implements [ports.DocumentRenderer]. It holds only immutable
// configuration, so a single instance is safe for concurrent use; every
// Render call builds its own fpdf document.
type Renderer struct {
	theme    Theme
	compress bool
	author   string
	creator  string
}

// NewRenderer creates a Renderer with the given theme. Compression is on by
// default.
func NewRenderer(theme Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:    theme,
		compress: true,
		creator:  defaultCreator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Render produces the PDF bytes for rec. Output depends only on rec and the
// renderer configuration: document dates are pinned to the agreement date.
// Any failure, including a panic inside the layout engine, is reported as
// an error wrapping domain.ErrRender and no bytes are returned.
func (r *Renderer) Render(rec agreement.Record) (out []byte, err error) {
	defer func() {
		if v := recover(); v != nil {
			out = nil
			err = fmt.Errorf("%w: layout panic: %v", domain.ErrRender, v)
		}
	}()

	doc := r.newDocument(rec)
	enc := newTextEncoder()
	l := &layout{pdf: doc, theme: r.theme, enc: enc}

	l.title(documentTitle)
	l.table([]row{
		{"Reference Number:", enc.encode("reference_number", rec.ReferenceNumber)},
		{"Date:", rec.DisplayDate()},
	}, false)
	l.space(r.theme.SectionSpacing)

	l.heading(headingClient)
	l.table([]row{
		{"Client Name:", enc.encode("client_name", rec.ClientName)},
		{"Email:", enc.encode("client_email", rec.ClientEmail)},
		{"Registration Number:", enc.encode("registration_number", rec.RegistrationNumber)},
	}, true)
	l.space(r.theme.SectionSpacing)

	l.heading(headingService)
	l.table([]row{
		{"Service Type:", enc.encode("service_type", rec.ServiceType.String())},
		{"Service Provider:", enc.encode("service_provider", rec.ServiceProvider)},
		{"Service Fee:", enc.encode("fee_amount", rec.ServiceFee())},
	}, true)
	l.space(r.theme.SectionSpacing)

	l.heading(headingScope)
	l.paragraph(enc.encode("scope_of_work", rec.ScopeOfWork))

	if enc.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, enc.err)
	}
	if l.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, l.err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: writing pdf: %w", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// newDocument prepares an empty A4 document with margins, metadata and the
// border hook installed, positioned at the top of the first page.
func (r *Renderer) newDocument(rec agreement.Record) *fpdf.Fpdf {
	t := r.theme

	doc := fpdf.New("P", "pt", t.PageSize, "")
	doc.SetCompression(r.compress)
	doc.SetCatalogSort(true)
	doc.SetCreationDate(rec.Date)
	doc.SetModificationDate(rec.Date)
	doc.SetTitle("Service Agreement "+rec.ReferenceNumber, true)
	doc.SetSubject(rec.ServiceType.String(), true)
	doc.SetCreator(r.creator, true)
	if r.author != "" {
		doc.SetAuthor(r.author, true)
	}

	doc.SetMargins(t.Margin, t.Margin, t.Margin)
	doc.SetAutoPageBreak(true, t.Margin)
	doc.SetCellMargin(t.CellMargin)
	doc.SetHeaderFuncMode(func() { drawBorder(doc, t.Border) }, true)
	doc.AddPage()

	return doc
}

// drawBorder strokes the page frame. It runs inside fpdf's header hook, which
// fires for the first page and for every automatic page break.
func drawBorder(doc *fpdf.Fpdf, b BorderStyle) {
	w, h := doc.GetPageSize()
	doc.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
	doc.SetLineWidth(b.Width)
	doc.Rect(b.Inset, b.Inset, w-2*b.Inset, h-2*b.Inset, "D")
}

// Name identifies the renderer in readiness checks.
func (r *Renderer) Name() string {
	return "pdf-renderer"
}

// HealthCheck renders a sample agreement to prove the layout engine and its
// fonts are usable.
func (r *Renderer) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.Render(SampleRecord()); err != nil {
		return fmt.Errorf("rendering sample agreement: %w", err)
	}
	return nil
}

package views

import (
	"errors"
	"sort"

	"github.com/jsamuelsen11/agreement-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

// User-facing messages shown above the form.
const (
	MsgMissingFields = "Please fill in all required fields"
	MsgInvalidFields = "Please correct the highlighted fields"
	MsgFailure       = "The service agreement could not be generated. Please try again."
)

// fieldLabels are the form labels, also used to phrase error messages.
var fieldLabels = map[string]string{
	dto.FieldReferenceNumber:    "Reference Number",
	dto.FieldDate:               "Agreement Date",
	dto.FieldClientName:         "Client Name",
	dto.FieldClientEmail:        "Client Email",
	dto.FieldRegistrationNumber: "Commercial Registration Number",
	dto.FieldServiceType:        "Service Type",
	dto.FieldServiceProvider:    "Service Provider Name",
	dto.FieldScopeOfWork:        "Scope of Work",
	dto.FieldFeeAmount:          "Service Fee",
	dto.FieldCurrency:           "Currency",
}

// Label returns the display label for a form field.
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Option is one entry of a select element.
type Option struct {
	Value    string
	Selected bool
}

// FieldError is an error message attached to a form field.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

// FormPage is the model of the agreement form page.
type FormPage struct {
	Form         *dto.AgreementForm
	ServiceTypes []Option
	Currencies   []Option
	Summary      string
	Errors       []FieldError

	fieldErrors map[string]string
}

// NewFormPage builds the page model for form. A nil err renders a clean form.
// Missing and invalid fields are listed individually; any other error is
// reported with a generic failure message so internal details never reach the
// page.
func NewFormPage(form *dto.AgreementForm, err error) *FormPage {
	if form == nil {
		form = &dto.AgreementForm{}
	}
	p := &FormPage{
		Form:         form,
		ServiceTypes: serviceTypeOptions(form.ServiceType),
		Currencies:   currencyOptions(form.Currency),
		fieldErrors:  map[string]string{},
	}
	if err == nil {
		return p
	}

	var mfe *domain.MissingFieldsError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &mfe):
		p.Summary = MsgMissingFields
		p.setErrors(mfe.FieldMessages())
	case errors.As(err, &verr):
		p.Summary = MsgInvalidFields
		p.setErrors(verr.Fields)
	default:
		p.Summary = MsgFailure
	}
	return p
}

// FieldError returns the message for field, or "".
func (p *FormPage) FieldError(field string) string {
	return p.fieldErrors[field]
}

func (p *FormPage) setErrors(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.fieldErrors[name] = fields[name]
		p.Errors = append(p.Errors, FieldError{
			Field:   name,
			Label:   Label(name),
			Message: fields[name],
		})
	}
}

// serviceTypeOptions marks selected, or the first option when selected is
// empty or unknown.
func serviceTypeOptions(selected string) []Option {
	types := agreement.ServiceTypes()
	values := make([]string, len(types))
	for i, st := range types {
		values[i] = st.String()
	}
	return options(values, selected)
}

func currencyOptions(selected string) []Option {
	currencies := agreement.Currencies()
	values := make([]string, len(currencies))
	for i, c := range currencies {
		values[i] = c.String()
	}
	return options(values, selected)
}

func options(values []string, selected string) []Option {
	opts := make([]Option, len(values))
	found := false
	for i, v := range values {
		opts[i] = Option{Value: v, Selected: v == selected}
		found = found || opts[i].Selected
	}
	if !found && len(opts) > 0 {
		opts[0].Selected = true
	}
	return opts
}

package dto

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/agreement-service/internal/domain"
	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

// Form field names. They are shared by the HTML form, the JSON body and the
// locations reported in validation errors.
const (
	FieldReferenceNumber    = "reference_number"
	FieldDate               = "date"
	FieldClientName         = "client_name"
	FieldClientEmail        = "client_email"
	FieldRegistrationNumber = "registration_number"
	FieldServiceType        = "service_type"
	FieldServiceProvider    = "service_provider"
	FieldScopeOfWork        = "scope_of_work"
	FieldFeeAmount          = "fee_amount"
	FieldCurrency           = "currency"
)

// DateLayout is the wire format of the date field (an HTML date input).
const DateLayout = "2006-01-02"

var (
	// feePattern is plain decimal notation. Exponent forms are refused so a
	// short input cannot describe an enormous number.
	feePattern       = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	exponentPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?[eE][-+]?\d+$`)
	msgFeeNotNumber  = "must be a number"
	msgFeeNegative   = "must be greater than or equal to 0"
	msgFeeOutOfRange = fmt.Sprintf("must have at most %d digits and %d decimal places",
		agreement.MaxFeeIntegerDigits, agreement.MaxFeeScale)
)

// AgreementForm holds the raw values of one agreement submission. It is the
// input to collection and the model used to redisplay the form, so it keeps
// exactly what the client sent (trimmed) even when validation fails.
type AgreementForm struct {
	ReferenceNumber    string `json:"reference_number"`
	Date               string `json:"date"`
	ClientName         string `json:"client_name"`
	ClientEmail        string `json:"client_email"`
	RegistrationNumber string `json:"registration_number"`
	ServiceType        string `json:"service_type"`
	ServiceProvider    string `json:"service_provider"`
	ScopeOfWork        string `json:"scope_of_work"`
	FeeAmount          string `json:"fee_amount"`
	Currency           string `json:"currency"`
}

// NewAgreementForm reads the agreement fields from submitted form values.
// Single-line fields are trimmed; the scope of work is kept verbatim.
func NewAgreementForm(values url.Values) *AgreementForm {
	return &AgreementForm{
		ReferenceNumber:    strings.TrimSpace(values.Get(FieldReferenceNumber)),
		Date:               strings.TrimSpace(values.Get(FieldDate)),
		ClientName:         strings.TrimSpace(values.Get(FieldClientName)),
		ClientEmail:        strings.TrimSpace(values.Get(FieldClientEmail)),
		RegistrationNumber: strings.TrimSpace(values.Get(FieldRegistrationNumber)),
		ServiceType:        strings.TrimSpace(values.Get(FieldServiceType)),
		ServiceProvider:    strings.TrimSpace(values.Get(FieldServiceProvider)),
		ScopeOfWork:        values.Get(FieldScopeOfWork),
		FeeAmount:          strings.TrimSpace(values.Get(FieldFeeAmount)),
		Currency:           strings.TrimSpace(values.Get(FieldCurrency)),
	}
}

// Validate checks the submitted values. Missing required fields are reported
// on their own as a *domain.MissingFieldsError; otherwise any malformed value
// is reported as a *domain.ValidationError keyed by field name.
func (f *AgreementForm) Validate() error {
	missing := validation.Errors{
		FieldReferenceNumber: validation.Validate(f.ReferenceNumber, validation.Required),
		FieldClientName:      validation.Validate(f.ClientName, validation.Required),
		FieldServiceProvider: validation.Validate(f.ServiceProvider, validation.Required),
	}.Filter()
	if missing != nil {
		return domain.NewMissingFieldsError(fieldNames(missing)...)
	}

	invalid := validation.Errors{
		FieldDate:        validation.Validate(f.Date, validation.Date(DateLayout)),
		FieldServiceType: validation.Validate(f.ServiceType, validation.In(serviceTypeChoices()...)),
		FieldCurrency:    validation.Validate(f.Currency, validation.In(currencyChoices()...)),
		FieldFeeAmount:   validation.Validate(f.FeeAmount, validation.By(checkFee)),
	}.Filter()
	if invalid != nil {
		return &domain.ValidationError{Fields: fieldMessages(invalid)}
	}
	return nil
}

// ToRecord validates the form and converts it to an agreement record. An
// empty date becomes today, an empty fee becomes zero and empty choices fall
// back to the first service type and BHD.
func (f *AgreementForm) ToRecord(today time.Time) (agreement.Record, error) {
	if err := f.Validate(); err != nil {
		return agreement.Record{}, err
	}

	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if f.Date != "" {
		parsed, err := time.ParseInLocation(DateLayout, f.Date, today.Location())
		if err != nil {
			return agreement.Record{}, fmt.Errorf("parsing date: %w", err)
		}
		date = parsed
	}

	fee := decimal.Zero
	if f.FeeAmount != "" {
		parsed, err := decimal.NewFromString(f.FeeAmount)
		if err != nil {
			return agreement.Record{}, fmt.Errorf("parsing fee_amount: %w", err)
		}
		fee = parsed
	}

	serviceType := agreement.ServiceType(f.ServiceType)
	if serviceType == "" {
		serviceType = agreement.ServiceTypes()[0]
	}
	currency := agreement.Currency(f.Currency)
	if currency == "" {
		currency = agreement.CurrencyBHD
	}

	return agreement.Record{
		ReferenceNumber:    f.ReferenceNumber,
		Date:               date,
		ClientName:         f.ClientName,
		ClientEmail:        f.ClientEmail,
		RegistrationNumber: f.RegistrationNumber,
		ServiceType:        serviceType,
		ServiceProvider:    f.ServiceProvider,
		ScopeOfWork:        f.ScopeOfWork,
		FeeAmount:          fee,
		Currency:           currency,
	}, nil
}

// CollectAgreement turns a form submission into a validated record. The
// returned form always reflects the submitted values so the caller can
// redisplay it alongside the error.
func CollectAgreement(values url.Values, today time.Time) (agreement.Record, *AgreementForm, error) {
	form := NewAgreementForm(values)
	rec, err := form.ToRecord(today)
	if err != nil {
		return agreement.Record{}, form, err
	}
	return rec, form, nil
}

// AgreementRequest represents the JSON body for generating an agreement.
// fee_amount accepts either a JSON number or a numeric string.
type AgreementRequest struct {
	ReferenceNumber    string           `json:"reference_number"`
	Date               string           `json:"date,omitempty"`
	ClientName         string           `json:"client_name"`
	ClientEmail        string           `json:"client_email,omitempty"`
	RegistrationNumber string           `json:"registration_number,omitempty"`
	ServiceType        string           `json:"service_type,omitempty"`
	ServiceProvider    string           `json:"service_provider"`
	ScopeOfWork        string           `json:"scope_of_work,omitempty"`
	FeeAmount          *decimal.Decimal `json:"fee_amount,omitempty"`
	Currency           string           `json:"currency,omitempty"`
}

// Validate applies the same rules as the HTML form.
func (r *AgreementRequest) Validate() error {
	return r.form().Validate()
}

// ToRecord converts the request to an agreement record using the form
// defaults.
func (r *AgreementRequest) ToRecord(today time.Time) (agreement.Record, error) {
	return r.form().ToRecord(today)
}

func (r *AgreementRequest) form() *AgreementForm {
	f := &AgreementForm{
		ReferenceNumber:    strings.TrimSpace(r.ReferenceNumber),
		Date:               strings.TrimSpace(r.Date),
		ClientName:         strings.TrimSpace(r.ClientName),
		ClientEmail:        strings.TrimSpace(r.ClientEmail),
		RegistrationNumber: strings.TrimSpace(r.RegistrationNumber),
		ServiceType:        strings.TrimSpace(r.ServiceType),
		ServiceProvider:    strings.TrimSpace(r.ServiceProvider),
		ScopeOfWork:        r.ScopeOfWork,
		Currency:           strings.TrimSpace(r.Currency),
	}
	if r.FeeAmount != nil {
		f.FeeAmount = feeString(*r.FeeAmount)
	}
	return f
}

// feeString formats a decoded JSON fee for validation. Values outside the
// fee bounds keep their compact exponent form instead of being expanded.
func feeString(fee decimal.Decimal) string {
	if !agreement.FeeInRange(fee) {
		return fee.Coefficient().String() + "e" + strconv.Itoa(int(fee.Exponent()))
	}
	return fee.String()
}

func checkFee(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if exponentPattern.MatchString(s) {
		return errors.New(msgFeeOutOfRange)
	}
	if !feePattern.MatchString(s) {
		return errors.New(msgFeeNotNumber)
	}
	if significantDigits(s) > agreement.MaxFeeIntegerDigits+agreement.MaxFeeScale {
		return errors.New(msgFeeOutOfRange)
	}
	fee, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New(msgFeeNotNumber)
	}
	if fee.IsNegative() {
		return errors.New(msgFeeNegative)
	}
	if !agreement.FeeInRange(fee) {
		return errors.New(msgFeeOutOfRange)
	}
	return nil
}

// significantDigits counts the digits of a plain decimal string, ignoring
// the sign, leading zeros and trailing fractional zeros.
func significantDigits(s string) int {
	intPart, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	return len(strings.TrimLeft(intPart, "0")) + len(strings.TrimRight(frac, "0"))
}

func serviceTypeChoices() []any {
	types := agreement.ServiceTypes()
	choices := make([]any, len(types))
	for i, st := range types {
		choices[i] = st.String()
	}
	return choices
}

func currencyChoices() []any {
	currencies := agreement.Currencies()
	choices := make([]any, len(currencies))
	for i, c := range currencies {
		choices[i] = c.String()
	}
	return choices
}

func fieldNames(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	return names
}

func fieldMessages(err error) map[string]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return map[string]string{"form": err.Error()}
	}
	fields := make(map[string]string, len(errs))
	for name, e := range errs {
		fields[name] = e.Error()
	}
	return fields
}

// Package agreement defines the service agreement record collected from the
// form and consumed by the document renderer.
package agreement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/agreement-service/internal/domain"
)

// Fee bounds. A fee has at most MaxFeeIntegerDigits digits before the
// decimal point and MaxFeeScale after it, the precision of the form's
// currency input.
const (
	MaxFeeIntegerDigits = 15
	MaxFeeScale         = 2
)

// Date layouts used on the rendered document and in the download filename.
const (
	DisplayDateLayout  = "02-01-2006"
	FileNameDateLayout = "20060102"
)

// Record is an immutable snapshot of one agreement submission. It is built by
// the form collector, rendered once and discarded.
type Record struct {
	ReferenceNumber    string
	Date               time.Time
	ClientName         string
	ClientEmail        string
	RegistrationNumber string
	ServiceType        ServiceType
	ServiceProvider    string
	ScopeOfWork        string
	FeeAmount          decimal.Decimal
	Currency           Currency
}

// Validate checks the rules a record must satisfy before it may be rendered.
// Empty required fields produce a *domain.MissingFieldsError; any other
// violation produces a *domain.ValidationError. Missing fields are reported
// first since they are what the form highlights.
func (r *Record) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ReferenceNumber) == "" {
		missing = append(missing, "reference_number")
	}
	if strings.TrimSpace(r.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(r.ServiceProvider) == "" {
		missing = append(missing, "service_provider")
	}
	if err := domain.NewMissingFieldsError(missing...); err != nil {
		return err
	}

	fields := make(map[string]string)
	if r.Date.IsZero() {
		fields["date"] = domain.MsgRequired
	}
	if !r.ServiceType.IsValid() {
		fields["service_type"] = fmt.Sprintf("invalid: %q", r.ServiceType)
	}
	if !r.Currency.IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", r.Currency)
	}
	switch {
	case r.FeeAmount.IsNegative():
		fields["fee_amount"] = "must be greater than or equal to 0"
	case !FeeInRange(r.FeeAmount):
		fields["fee_amount"] = fmt.Sprintf("must have at most %d digits and %d decimal places", MaxFeeIntegerDigits, MaxFeeScale)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// FeeInRange reports whether fee fits the fee bounds. It inspects the
// coefficient and exponent only, so it never expands the number.
func FeeInRange(fee decimal.Decimal) bool {
	if fee.IsZero() {
		return true
	}
	exp := int(fee.Exponent())
	if exp < -MaxFeeScale-fee.NumDigits() {
		return false
	}
	if exp < -MaxFeeScale {
		// 12.500 is stored as 12500e-3; only trailing zeros may exceed the scale.
		trimmed := fee.Truncate(MaxFeeScale)
		if !trimmed.Equal(fee) {
			return false
		}
		fee, exp = trimmed, int(trimmed.Exponent())
	}
	return fee.NumDigits()+exp <= MaxFeeIntegerDigits
}

// DisplayDate returns the agreement date as DD-MM-YYYY.
func (r *Record) DisplayDate() string {
	return r.Date.Format(DisplayDateLayout)
}

// FileName returns the download name
// service_agreement_{reference_number}_{YYYYMMDD}.pdf.
func (r *Record) FileName() string {
	return fmt.Sprintf("service_agreement_%s_%s.pdf", r.ReferenceNumber, r.Date.Format(FileNameDateLayout))
}

// FeeText returns the fee in its natural decimal form, always carrying at
// least one fractional digit: 1500 -> "1500.0", 12.50 -> "12.5".
func (r *Record) FeeText() string {
	s := r.FeeAmount.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ServiceFee returns the fee cell text "{currency} {fee}".
func (r *Record) ServiceFee() string {
	return r.Currency.String() + " " + r.FeeText()
}

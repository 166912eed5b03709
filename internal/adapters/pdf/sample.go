package pdf

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/agreement-service/internal/domain/agreement"
)

// SampleRecord returns a fixed, valid agreement used by readiness checks.
func SampleRecord() agreement.Record {
	return agreement.Record{
		ReferenceNumber:    "SA-SAMPLE-001",
		Date:               time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ClientName:         "Sample Client W.L.L.",
		ClientEmail:        "client@example.com",
		RegistrationNumber: "CR-00000",
		ServiceType:        agreement.ServiceTypeConsultancy,
		ServiceProvider:    "Sample Provider",
		ScopeOfWork:        "Sample scope of work.",
		FeeAmount:          decimal.NewFromInt(100),
		Currency:           agreement.CurrencyBHD,
	}
}

package agreement

// ServiceType is the closed set of services an agreement can cover.
type ServiceType string

const (
	ServiceTypeVAT             ServiceType = "VAT Services"
	ServiceTypeBusinessSupport ServiceType = "Business Support"
	ServiceTypeConsultancy     ServiceType = "Consultancy"
	ServiceTypeOther           ServiceType = "Other"
)

// ServiceTypes returns the options in form display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeVAT,
		ServiceTypeBusinessSupport,
		ServiceTypeConsultancy,
		ServiceTypeOther,
	}
}

// IsValid returns true if the service type is one of the defined constants.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeVAT, ServiceTypeBusinessSupport, ServiceTypeConsultancy, ServiceTypeOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ServiceType) String() string {
	return string(s)
}

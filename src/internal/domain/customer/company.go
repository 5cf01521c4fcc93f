package customer

// Company identifies which brokerage brand owns the customer record.
type Company int

const (
	Warren Company = 1
	Rena   Company = 2
)

// IsValid reports whether the value is a known company.
func (c Company) IsValid() bool {
	return c == Warren || c == Rena
}

// String returns the name used by response projections.
func (c Company) String() string {
	switch c {
	case Warren:
		return "Warren"
	case Rena:
		return "Rena"
	default:
		return "Unknown"
	}
}

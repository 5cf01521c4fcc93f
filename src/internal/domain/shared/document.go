package shared

import "strings"

// ===========================
// BusinessDocument Value Object
// ===========================

// DocumentType classifies a Brazilian taxpayer document by its length.
type DocumentType int

const (
	// CPF is the individual taxpayer id, 11 digits.
	CPF DocumentType = 1
	// CNPJ is the legal-entity taxpayer id, 14 digits.
	CNPJ DocumentType = 2
)

// String returns the type name used by response projections.
func (t DocumentType) String() string {
	switch t {
	case CPF:
		return "Cpf"
	case CNPJ:
		return "Cnpj"
	default:
		return "Unknown"
	}
}

const (
	cpfLength  = 11
	cnpjLength = 14
)

// ErrInvalidBusinessDocument signals a document whose digit count is
// neither a CPF nor a CNPJ.
var ErrInvalidBusinessDocument = NewDomainError(
	"DOCUMENT_INVALID",
	"document must have 11 digits (CPF) or 14 digits (CNPJ)",
)

// BusinessDocument is the CPF/CNPJ value object shared by customers and
// bond emitters. It stores only the digits; the type is derived from the
// digit count at construction and never changes.
type BusinessDocument struct {
	value        string
	documentType DocumentType
}

// NewBusinessDocument strips every non-digit character from the input and
// classifies the remainder by length. Anything other than exactly 11 or
// 14 digits is rejected; there is no partial matching.
func NewBusinessDocument(value string) (BusinessDocument, error) {
	digits := stripNonDigits(value)

	switch len(digits) {
	case cpfLength:
		return BusinessDocument{value: digits, documentType: CPF}, nil
	case cnpjLength:
		return BusinessDocument{value: digits, documentType: CNPJ}, nil
	default:
		return BusinessDocument{}, ErrInvalidBusinessDocument.WithContext(
			"document", value,
			"digits", len(digits),
		)
	}
}

// Value returns the bare digit string.
func (d BusinessDocument) Value() string {
	return d.value
}

// Type returns the derived classification.
func (d BusinessDocument) Type() DocumentType {
	return d.documentType
}

// IsCPF reports whether the document is an individual taxpayer id.
func (d BusinessDocument) IsCPF() bool {
	return d.documentType == CPF
}

// IsCNPJ reports whether the document is a legal-entity taxpayer id.
func (d BusinessDocument) IsCNPJ() bool {
	return d.documentType == CNPJ
}

// Masked renders the document in display format:
// CPF 000.000.000-00, CNPJ 00.000.000/0000-00.
func (d BusinessDocument) Masked() string {
	v := d.value
	switch d.documentType {
	case CPF:
		return v[0:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:11]
	case CNPJ:
		return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
	default:
		return v
	}
}

// Equals compares by (digits, type).
func (d BusinessDocument) Equals(other BusinessDocument) bool {
	return d.value == other.value && d.documentType == other.documentType
}

// IsZero reports whether the document was never set.
func (d BusinessDocument) IsZero() bool {
	return d.value == ""
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

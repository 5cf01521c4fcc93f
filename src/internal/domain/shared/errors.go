package shared

import "fmt"

// ===========================
// DomainError
// ===========================

// ErrorCode identifies a domain rule so boundaries can map violations
// without parsing messages.
type ErrorCode string

// DomainError is the structured error every domain package raises when a
// construction constraint or business rule is violated.
//
// Design:
// 1. Code + Message, never bare strings
// 2. Context map for the structured fields a boundary logger needs
// 3. Immutable: WithContext returns a copy
// 4. errors.Is compares by Code
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// NewDomainError builds an error template for a domain package to expose
// as a package-level var.
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext returns a copy of the error carrying additional key-value
// context. Odd argument counts and non-string keys are programming errors.
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("shared: WithContext requires key-value pairs")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("shared: WithContext keys must be strings")
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{Code: e.Code, Message: e.Message, Context: ctx}
}

// Is matches errors by code, so errors.Is(err, ErrTemplate) works across
// WithContext copies.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

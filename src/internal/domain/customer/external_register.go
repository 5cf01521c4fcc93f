package customer

import (
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// External system registers
// ===========================

// SystemType enumerates the custody/settlement systems a customer must be
// registered with before trading. Immutable after creation.
type SystemType int

const (
	// Cetip handles private fixed-income custody.
	Cetip SystemType = 1
	// Selic handles public fixed-income custody.
	Selic SystemType = 2
)

// IsValid reports whether the value is a known system.
func (t SystemType) IsValid() bool {
	return t == Cetip || t == Selic
}

// String returns the name used by response projections.
func (t SystemType) String() string {
	switch t {
	case Cetip:
		return "Cetip"
	case Selic:
		return "Selic"
	default:
		return "Unknown"
	}
}

// RegisterStatus tracks the customer's registration lifecycle in one
// external system.
type RegisterStatus int

const (
	NotRegistered RegisterStatus = 1
	Registered    RegisterStatus = 2
	Inactive      RegisterStatus = 3
)

// String returns the name used by response projections.
func (s RegisterStatus) String() string {
	switch s {
	case NotRegistered:
		return "NotRegistered"
	case Registered:
		return "Registered"
	case Inactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// ExternalSystemRegister is the child entity owned by Customer that tracks
// the registration status in one external system.
//
// Lifecycle: created only while initializing a Customer (one register per
// system type, status NotRegistered), never deleted independently, status
// transitions only through the owning aggregate.
type ExternalSystemRegister struct {
	shared.Entity

	customerID int
	systemType SystemType
	status     RegisterStatus
}

// newExternalSystemRegister seeds a register during Customer construction.
// Unexported: Customer initialization is the only insertion point, which is
// what keeps the one-register-per-system invariant free of duplicates.
func newExternalSystemRegister(systemType SystemType, now time.Time) *ExternalSystemRegister {
	return &ExternalSystemRegister{
		Entity:     shared.NewEntity(now),
		systemType: systemType,
		status:     NotRegistered,
	}
}

// ReconstituteExternalSystemRegister rebuilds a register from persisted
// data. Identity and audit fields are trusted as stored.
func ReconstituteExternalSystemRegister(
	id int,
	customerID int,
	systemType SystemType,
	status RegisterStatus,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) *ExternalSystemRegister {
	return &ExternalSystemRegister{
		Entity:     shared.ReconstituteEntity(id, createdAt, lastUpdatedAt),
		customerID: customerID,
		systemType: systemType,
		status:     status,
	}
}

// CustomerID returns the owning customer's surrogate key (0 while the
// parent is unpersisted).
func (r *ExternalSystemRegister) CustomerID() int {
	return r.customerID
}

// SystemType returns the target system. Immutable after creation.
func (r *ExternalSystemRegister) SystemType() SystemType {
	return r.systemType
}

// Status returns the current registration status.
func (r *ExternalSystemRegister) Status() RegisterStatus {
	return r.status
}

// IsRegistered reports whether the customer is active in the system.
func (r *ExternalSystemRegister) IsRegistered() bool {
	return r.status == Registered
}

// markRegistered transitions to Registered. Repeating the transition is a
// silent no-op success; only the audit timestamp moves.
func (r *ExternalSystemRegister) markRegistered(now time.Time) {
	r.status = Registered
	r.Touch(now)
}

// markInactive transitions to Inactive, with the same permissive repeat
// behavior as markRegistered.
func (r *ExternalSystemRegister) markInactive(now time.Time) {
	r.status = Inactive
	r.Touch(now)
}

// bindToCustomer records the back-reference once the parent gains an id.
// Reserved for the persistence layer.
func (r *ExternalSystemRegister) bindToCustomer(customerID int) {
	r.customerID = customerID
}

package shared

import "time"

// ===========================
// Entity base
// ===========================

// Entity carries the identity and audit state every aggregate and child
// entity embeds. The surrogate key is assigned by the persistence layer;
// id 0 means the entity has not been persisted yet.
//
// Equality between entities is by (concrete type, id), never by field
// values. Embedding packages compare ids of the same aggregate type, so
// the type half of the contract is enforced by the compiler.
type Entity struct {
	id            int
	createdAt     time.Time
	lastUpdatedAt *time.Time
}

// NewEntity initializes the audit state of a freshly created entity.
// The id stays 0 until a repository assigns one.
func NewEntity(now time.Time) Entity {
	return Entity{createdAt: now}
}

// ReconstituteEntity rebuilds identity and audit state from persisted data.
// Identity and audit fields are trusted as stored; value objects are
// re-validated by the owning aggregate's reconstitution constructor.
func ReconstituteEntity(id int, createdAt time.Time, lastUpdatedAt *time.Time) Entity {
	return Entity{id: id, createdAt: createdAt, lastUpdatedAt: lastUpdatedAt}
}

// ID returns the surrogate key (0 while unpersisted).
func (e *Entity) ID() int {
	return e.id
}

// ExistsInDatabase reports whether the entity has been persisted.
func (e *Entity) ExistsInDatabase() bool {
	return e.id > 0
}

// CreatedAt returns the immutable creation timestamp.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// LastUpdatedAt returns the last mutation timestamp, nil if the entity
// was never mutated after creation.
func (e *Entity) LastUpdatedAt() *time.Time {
	return e.lastUpdatedAt
}

// Touch stamps lastUpdatedAt. Aggregates call it at the end of every
// mutation method; external code has no reason to.
func (e *Entity) Touch(now time.Time) {
	e.lastUpdatedAt = &now
}

// AssignID sets the surrogate key after an insert. Reserved for the
// persistence layer; assigning twice or assigning a non-positive id is
// a programming error.
func (e *Entity) AssignID(id int) {
	if id <= 0 || e.id != 0 {
		panic("shared: AssignID called with invalid id or on a persisted entity")
	}
	e.id = id
}

// Equals reports identity equality. Both entities must be persisted;
// two unpersisted entities are never equal through this predicate.
func (e *Entity) Equals(other *Entity) bool {
	if other == nil {
		return false
	}
	return e.id > 0 && e.id == other.id
}

package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// Test 1: a fresh entity is unpersisted
func TestNewEntity_StartsUnpersisted(t *testing.T) {
	// Arrange
	now := time.Now()

	// Act
	e := shared.NewEntity(now)

	// Assert
	assert.Equal(t, 0, e.ID())
	assert.False(t, e.ExistsInDatabase())
	assert.Equal(t, now, e.CreatedAt())
	assert.Nil(t, e.LastUpdatedAt())
}

// Test 2: AssignID marks the entity as persisted, exactly once
func TestEntity_AssignID_MarksPersisted(t *testing.T) {
	// Arrange
	e := shared.NewEntity(time.Now())

	// Act
	e.AssignID(42)

	// Assert
	assert.Equal(t, 42, e.ID())
	assert.True(t, e.ExistsInDatabase())
	assert.Panics(t, func() { e.AssignID(43) })
}

// Test 3: AssignID rejects non-positive ids
func TestEntity_AssignID_RejectsNonPositive(t *testing.T) {
	e := shared.NewEntity(time.Now())

	assert.Panics(t, func() { e.AssignID(0) })
	assert.Panics(t, func() { e.AssignID(-1) })
}

// Test 4: equality is by id, never for unpersisted entities
func TestEntity_Equals_ComparesByID(t *testing.T) {
	// Arrange
	a := shared.ReconstituteEntity(7, time.Now(), nil)
	b := shared.ReconstituteEntity(7, time.Now().Add(time.Hour), nil)
	c := shared.ReconstituteEntity(8, time.Now(), nil)
	fresh1 := shared.NewEntity(time.Now())
	fresh2 := shared.NewEntity(time.Now())

	// Assert
	assert.True(t, a.Equals(&b))
	assert.False(t, a.Equals(&c))
	assert.False(t, fresh1.Equals(&fresh2))
	assert.False(t, a.Equals(nil))
}

// Test 5: Touch stamps the mutation timestamp
func TestEntity_Touch_StampsLastUpdatedAt(t *testing.T) {
	// Arrange
	e := shared.NewEntity(time.Now())
	stamp := time.Now().Add(time.Minute)

	// Act
	e.Touch(stamp)

	// Assert
	if assert.NotNil(t, e.LastUpdatedAt()) {
		assert.Equal(t, stamp, *e.LastUpdatedAt())
	}
}

package cashbox

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewGeneralBalance(t *testing.T) {
	b := NewGeneralBalance()

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.True(t, b.Amount.IsZero())
}

func TestGeneralBalance_Operations(t *testing.T) {
	b := NewGeneralBalance()

	b.Set(dec("100.00"))
	assert.True(t, b.Amount.Equal(dec("100.00")))

	b.Add(dec("25.00"))
	assert.True(t, b.Amount.Equal(dec("125.00")))

	b.Subtract(dec("50.00"))
	assert.True(t, b.Amount.Equal(dec("75.00")))

	// negative balances are representable; the engine never clamps
	b.Subtract(dec("100.00"))
	assert.True(t, b.Amount.Equal(dec("-25.00")))
}

func TestGeneralBalance_LastUpdated(t *testing.T) {
	b := NewGeneralBalance()
	before := b.LastUpdated()

	b.Add(dec("1.00"))

	assert.False(t, b.LastUpdated().Before(before))
}

package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/inventory"
)

func TestStatusForStock(t *testing.T) {
	cases := []struct {
		stock string
		want  entity.MaterialStatus
	}{
		{"0", entity.MaterialOutOfStock},
		{"0.5", entity.MaterialLowStock},
		{"49.999", entity.MaterialLowStock},
		{"50", entity.MaterialActive},
		{"1200", entity.MaterialActive},
	}
	for _, tc := range cases {
		t.Run(tc.stock, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StatusForStock(decimal.RequireFromString(tc.stock)))
		})
	}
}

func TestStatusAfterDecrement_BajoUmbral(t *testing.T) {
	st, changed := inventory.StatusAfterDecrement(decimal.NewFromInt(45))
	assert.True(t, changed)
	assert.Equal(t, entity.MaterialLowStock, st)
}

func TestStatusAfterDecrement_CeroYNegativo(t *testing.T) {
	for _, v := range []int64{0, -3} {
		st, changed := inventory.StatusAfterDecrement(decimal.NewFromInt(v))
		assert.True(t, changed)
		assert.Equal(t, entity.MaterialOutOfStock, st)
	}
}

// Stock >= umbral: nunca cambia el estado (sin re-promoción).
func TestStatusAfterDecrement_SobreUmbralSinCambio(t *testing.T) {
	for _, v := range []int64{50, 51, 900} {
		st, changed := inventory.StatusAfterDecrement(decimal.NewFromInt(v))
		assert.False(t, changed)
		assert.Empty(t, st)
	}
}

// El umbral es fijo: 60 - 15 = 45 queda en stock bajo y 50 exacto no cambia.
func TestLowStockThreshold_Fijo(t *testing.T) {
	assert.Equal(t, 50, inventory.LowStockThreshold)

	st, changed := inventory.StatusAfterDecrement(decimal.NewFromInt(60).Sub(decimal.NewFromInt(15)))
	assert.True(t, changed)
	assert.Equal(t, entity.MaterialLowStock, st)

	_, changed = inventory.StatusAfterDecrement(decimal.NewFromInt(inventory.LowStockThreshold))
	assert.False(t, changed)
}

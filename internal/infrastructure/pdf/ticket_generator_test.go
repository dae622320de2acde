package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "25.000,00", formatWeight(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.234.567,50", formatWeight(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "15,00", formatWeight(decimal.NewFromInt(15)))
	assert.Equal(t, "-1.500,25", formatWeight(decimal.RequireFromString("-1500.25")))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3F2A9C1B", shortID("3f2a9c1b-77aa-4c1e-9a0b-000000000000"))
	assert.Equal(t, "ABC", shortID("abc"))
}

func TestGenerateTicket_DevuelvePDF(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	rec := &entity.WeightRecord{
		ID: "3f2a9c1b-77aa-4c1e-9a0b-000000000000", MaterialName: "Pasir Silika", MaterialUnit: "kg",
		GrossWeight: decimal.NewFromInt(1000), TareWeight: decimal.NewFromInt(200), NetWeight: decimal.NewFromInt(800),
		VehicleNumber: "B 1234 XYZ", OperatorName: "Budi", Status: entity.WeightCompleted,
		EntryDate: at, WeighingDate: &at, CreatedAt: at,
	}

	data, err := NewTicketGenerator("").GenerateTicket(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

func TestWriteWeightRecords_CabeceraYFilas(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	recs := []*entity.WeightRecord{{
		ID: "r-1", MaterialName: "Pasir Silika", MaterialUnit: "kg",
		GrossWeight: decimal.RequireFromString("1000.5"), TareWeight: decimal.NewFromInt(200),
		NetWeight: decimal.RequireFromString("800.5"), VehicleNumber: "B 1234 XYZ",
		OperatorName: "Budi", Status: entity.WeightCompleted, EntryDate: at, WeighingDate: &at,
	}}

	data, err := NewWeightRecordsWriter().WriteWeightRecords(context.Background(), recs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Net Weight", rows[0][5])
	assert.Equal(t, "Pasir Silika", rows[1][1])
	assert.Equal(t, "800.5", rows[1][5])
	assert.Equal(t, "COMPLETED", rows[1][8])
	assert.Equal(t, "2024-01-15 10:30:00", rows[1][10])
}

func TestWriteWeightRecords_SinRegistros(t *testing.T) {
	data, err := NewWeightRecordsWriter().WriteWeightRecords(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository/mocks"
)

type fakeSheets struct{ got []*entity.WeightRecord }

func (f *fakeSheets) WriteWeightRecords(_ context.Context, rs []*entity.WeightRecord) ([]byte, error) {
	f.got = rs
	return []byte("xlsx"), nil
}

type fakeTickets struct{ got *entity.WeightRecord }

func (f *fakeTickets) GenerateTicket(_ context.Context, r *entity.WeightRecord) ([]byte, error) {
	f.got = r
	return []byte("%PDF"), nil
}

func seed(t *testing.T) *mocks.Store {
	t.Helper()
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: "m-1", Name: "Semen Portland", Unit: "kg"})
	store.AddUser(entity.User{ID: "op-1", Name: "Budi", Role: entity.RoleOperator})
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	store.AddRecord(entity.WeightRecord{
		ID: "r-done", MaterialID: "m-1", OperatorID: "op-1", Status: entity.WeightCompleted,
		GrossWeight: decimal.NewFromInt(1000), TareWeight: decimal.NewFromInt(200), NetWeight: decimal.NewFromInt(800),
		WeighingDate: &at, CreatedAt: at,
	})
	store.AddRecord(entity.WeightRecord{
		ID: "r-pend", MaterialID: "m-1", OperatorID: "op-1", Status: entity.WeightPending,
		CreatedAt: at.Add(48 * time.Hour),
	})
	return store
}

func TestExport_FiltraPorRango(t *testing.T) {
	store := seed(t)
	sheets := &fakeSheets{}
	uc := NewUseCase(store.WeightRecords(), sheets, &fakeTickets{})

	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	data, name, err := uc.ExportWeightRecords(context.Background(), ExportFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Contains(t, name, ".xlsx")
	require.Len(t, sheets.got, 1)
	assert.Equal(t, "r-done", sheets.got[0].ID)
	assert.Equal(t, "Semen Portland", sheets.got[0].MaterialName)
}

func TestExport_EstadoInvalido(t *testing.T) {
	uc := NewUseCase(seed(t).WeightRecords(), &fakeSheets{}, &fakeTickets{})
	_, _, err := uc.ExportWeightRecords(context.Background(), ExportFilter{Status: "DONE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicket_SoloCompletados(t *testing.T) {
	tickets := &fakeTickets{}
	uc := NewUseCase(seed(t).WeightRecords(), &fakeSheets{}, tickets)

	data, name, err := uc.Ticket(context.Background(), "r-done", "admin", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "ticket-r-done.pdf", name)
	assert.Equal(t, "Budi", tickets.got.OperatorName)

	_, _, err = uc.Ticket(context.Background(), "r-pend", "admin", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, _, err = uc.Ticket(context.Background(), "nope", "admin", entity.RoleAdmin)
	assert.True(t, domain.IsNotFound(err, domain.EntityWeightRecord))
}

func TestTicket_OperadorAjeno(t *testing.T) {
	uc := NewUseCase(seed(t).WeightRecords(), &fakeSheets{}, &fakeTickets{})
	_, _, err := uc.Ticket(context.Background(), "r-done", "op-2", entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

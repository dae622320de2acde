package weighing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

func manualInput() weighing.ManualInput {
	return weighing.ManualInput{
		MaterialID:    matSilica,
		VehicleNumber: "d 777 ab",
		GrossWeight:   dec("50"),
		TareWeight:    dec("30"),
		OperatorID:    opBudi,
	}
}

func TestCreateManual_PendienteSinTocarStock(t *testing.T) {
	uc, store, _ := newFixture(t)

	rec, err := uc.CreateManual(context.Background(), manualInput())
	require.NoError(t, err)

	assert.Equal(t, entity.WeightPending, rec.Status)
	assert.Nil(t, rec.WeighingDate)
	assert.Equal(t, "D 777 AB", rec.VehicleNumber)
	assert.Equal(t, "Pasir Silika", rec.MaterialName)

	m, _ := store.Material(matSilica)
	assert.True(t, dec("60").Equal(m.Stock))
	assert.Empty(t, store.Notifications())
}

func TestCreateManual_Validacion(t *testing.T) {
	uc, _, _ := newFixture(t)
	in := manualInput()
	in.MaterialID = ""
	in.GrossWeight = dec("0")

	_, err := uc.CreateManual(context.Background(), in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestCreateManual_PrecisionDePeso(t *testing.T) {
	uc, store, _ := newFixture(t)
	in := manualInput()
	in.TareWeight = dec("30.0001")

	_, err := uc.CreateManual(context.Background(), in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "tareWeight", verr.Fields[0].Field)
	assert.Empty(t, store.Records())
}

func TestUpdateStatus_CompletarDescuentaStockYNotifica(t *testing.T) {
	uc, store, _ := newFixture(t)
	ctx := context.Background()

	rec, err := uc.CreateManual(ctx, manualInput())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, rec.ID, entity.WeightInProgress, opBudi, entity.RoleOperator)
	require.NoError(t, err)
	done, err := uc.UpdateStatus(ctx, rec.ID, entity.WeightCompleted, opBudi, entity.RoleOperator)
	require.NoError(t, err)

	assert.Equal(t, entity.WeightCompleted, done.Status)
	require.NotNil(t, done.WeighingDate)

	m, _ := store.Material(matSilica)
	assert.True(t, dec("40").Equal(m.Stock))
	assert.Equal(t, entity.MaterialLowStock, m.Status)
	assert.Len(t, notificationsOfType(store, entity.NotificationSuccess), 1)
	assert.Len(t, notificationsOfType(store, entity.NotificationWarning), 1)
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	uc, store, _ := newFixture(t)
	ctx := context.Background()

	rec, err := uc.CreateManual(ctx, manualInput())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, rec.ID, entity.WeightCompleted, adminID, entity.RoleAdmin)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	m, _ := store.Material(matSilica)
	assert.True(t, dec("60").Equal(m.Stock), "sin descuento en transición rechazada")
}

func TestUpdateStatus_OperadorAjenoProhibido(t *testing.T) {
	uc, store, _ := newFixture(t)
	store.AddUser(entity.User{ID: "op-2", Name: "Sari", Role: entity.RoleOperator})

	rec, err := uc.CreateManual(context.Background(), manualInput())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), rec.ID, entity.WeightCancelled, "op-2", entity.RoleOperator)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_RegistroInexistente(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.UpdateStatus(context.Background(), "nada", entity.WeightCancelled, adminID, entity.RoleAdmin)
	assert.True(t, domain.IsNotFound(err, domain.EntityWeightRecord))
}

func TestRecent_OrdenDescendenteYLimite(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		res, err := uc.Ingest(ctx, payload(matSemen, 100, 40))
		require.NoError(t, err)
		ids = append(ids, res.ID)
	}

	list, err := uc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Equal(t, "Semen Portland", list[0].MaterialName)
	assert.Equal(t, "Budi", list[0].OperatorName)
}

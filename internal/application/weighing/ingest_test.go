package weighing_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository/mocks"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	matSilica = "mat-silica"
	matSemen  = "mat-semen"
	opBudi    = "op-budi"
	adminID   = "adm-1"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newFixture siembra dos materiales (stock 60 y 5000), un operador y un admin.
func newFixture(t *testing.T) (*weighing.UseCase, *mocks.Store, *recordingPublisher) {
	t.Helper()
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: matSilica, Name: "Pasir Silika", Unit: "kg", Stock: dec("60"), Status: entity.MaterialActive})
	store.AddMaterial(entity.Material{ID: matSemen, Name: "Semen Portland", Unit: "kg", Stock: dec("5000"), Status: entity.MaterialActive})
	store.AddUser(entity.User{ID: opBudi, Name: "Budi", Role: entity.RoleOperator, IsActive: true})
	store.AddUser(entity.User{ID: adminID, Name: "Admin", Role: entity.RoleAdmin, IsActive: true})

	pub := &recordingPublisher{}
	uc := weighing.NewUseCase(weighing.Deps{
		Tx:            &mocks.TxRunner{S: store},
		Materials:     store.Materials(),
		Users:         store.Users(),
		Records:       store.WeightRecords(),
		Notifications: store.NotificationRepo(),
		Events:        pub,
		Log:           zerolog.Nop(),
	})
	return uc, store, pub
}

func payload(materialID string, gross, tare float64) map[string]any {
	return map[string]any{
		"deviceId":      "scale-01",
		"materialId":    materialID,
		"grossWeight":   gross,
		"tareWeight":    tare,
		"vehicleNumber": "b 1234 xy",
		"operatorId":    opBudi,
	}
}

func notificationsOfType(store *mocks.Store, typ entity.NotificationType) []entity.Notification {
	var out []entity.Notification
	for _, n := range store.Notifications() {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_NetoExactoYEstadoCompletado(t *testing.T) {
	uc, store, _ := newFixture(t)
	p := payload(matSemen, 1500.5, 500.25)
	p["timestamp"] = "2026-01-15T08:30:00Z"

	res, err := uc.Ingest(context.Background(), p)
	require.NoError(t, err)

	assert.True(t, dec("1000.25").Equal(res.NetWeight))
	assert.Equal(t, "Semen Portland", res.Material)
	assert.Equal(t, "Budi", res.Operator)
	assert.Equal(t, time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC), res.Timestamp)

	records := store.Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, res.ID, rec.ID)
	assert.Equal(t, entity.WeightCompleted, rec.Status)
	assert.Equal(t, "B 1234 XY", rec.VehicleNumber)
	assert.True(t, rec.NetWeight.Equal(rec.GrossWeight.Sub(rec.TareWeight)))
	require.NotNil(t, rec.WeighingDate)
	assert.Equal(t, 1, store.Commits())
}

func TestIngest_SinTimestampUsaHoraDeCreacion(t *testing.T) {
	uc, store, _ := newFixture(t)

	res, err := uc.Ingest(context.Background(), payload(matSemen, 100, 40))
	require.NoError(t, err)

	rec := store.Records()[0]
	require.NotNil(t, rec.WeighingDate)
	assert.Equal(t, rec.CreatedAt, *rec.WeighingDate)
	assert.Equal(t, rec.CreatedAt, res.Timestamp)
}

// Bruto <= tara → InvalidWeight y el store queda intacto.
func TestIngest_BrutoMenorOIgualATara_NoEscribe(t *testing.T) {
	for _, tc := range []struct{ gross, tare float64 }{{100, 100}, {40, 100}} {
		uc, store, pub := newFixture(t)

		_, err := uc.Ingest(context.Background(), payload(matSemen, tc.gross, tc.tare))
		require.ErrorIs(t, err, domain.ErrInvalidWeight)

		assert.Empty(t, store.Records())
		assert.Empty(t, store.Notifications())
		assert.Empty(t, pub.events)
		assert.Zero(t, store.CallCount("tx.Begin"))
		assert.Zero(t, store.CallCount("materials.DecrementStock"))
		m, _ := store.Material(matSemen)
		assert.True(t, dec("5000").Equal(m.Stock))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_MaterialInexistente_NoConsultaOperador(t *testing.T) {
	uc, store, _ := newFixture(t)

	_, err := uc.Ingest(context.Background(), payload("no-existe", 100, 40))
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.EntityMaterial, nf.Entity)
	assert.Zero(t, store.CallCount("users.GetByID"), "el operador no debe consultarse")
	assert.Empty(t, store.Records())
}

// El material se concilia antes de comparar bruto y tara: material inexistente con
// bruto <= tara responde NotFound, no InvalidWeight.
func TestIngest_MaterialInexistenteAntesQuePesoInvalido(t *testing.T) {
	uc, store, _ := newFixture(t)

	_, err := uc.Ingest(context.Background(), payload("no-existe", 40, 100))
	assert.True(t, domain.IsNotFound(err, domain.EntityMaterial))
	assert.NotErrorIs(t, err, domain.ErrInvalidWeight)
	assert.Empty(t, store.Records())
}

func TestIngest_OperadorInexistente(t *testing.T) {
	uc, store, _ := newFixture(t)
	p := payload(matSemen, 100, 40)
	p["operatorId"] = "fantasma"

	_, err := uc.Ingest(context.Background(), p)
	assert.True(t, domain.IsNotFound(err, domain.EntityOperator))
	assert.Empty(t, store.Records())
}

func TestIngest_UsuarioNoOperador_Rechazado(t *testing.T) {
	uc, store, _ := newFixture(t)
	p := payload(matSemen, 100, 40)
	p["operatorId"] = adminID

	_, err := uc.Ingest(context.Background(), p)
	require.ErrorIs(t, err, domain.ErrNotOperator)
	assert.Empty(t, store.Records())
	assert.Zero(t, store.CallCount("materials.DecrementStock"))
}

// Orden estricto: material → operador → tx(registro → stock) → notificaciones.
func TestIngest_OrdenDeOperaciones(t *testing.T) {
	uc, store, _ := newFixture(t)

	_, err := uc.Ingest(context.Background(), payload(matSemen, 100, 40))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"materials.GetByID",
		"users.GetByID",
		"tx.Begin",
		"records.Create",
		"materials.DecrementStock",
		"tx.Commit",
		"notifications.Create",
	}, store.Calls())
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock y alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_PayloadRepetido_DosRegistrosDosDescuentos(t *testing.T) {
	uc, store, _ := newFixture(t)
	p := payload(matSemen, 300, 200)

	first, err := uc.Ingest(context.Background(), p)
	require.NoError(t, err)
	second, err := uc.Ingest(context.Background(), p)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.Records(), 2)
	assert.Equal(t, 2, store.CallCount("materials.DecrementStock"))
	m, _ := store.Material(matSemen)
	assert.True(t, dec("4800").Equal(m.Stock), "stock: %s", m.Stock)
}

func TestIngest_CruzaUmbral_StockBajoYUnaAlerta(t *testing.T) {
	uc, store, pub := newFixture(t)

	res, err := uc.Ingest(context.Background(), payload(matSilica, 35, 20))
	require.NoError(t, err)
	assert.True(t, res.LowStock)

	m, _ := store.Material(matSilica)
	assert.True(t, dec("45").Equal(m.Stock))
	assert.Equal(t, entity.MaterialLowStock, m.Status)

	warnings := notificationsOfType(store, entity.NotificationWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Low Stock Alert", warnings[0].Title)
	assert.Equal(t, "Pasir Silika inventory is running low (45 kg remaining)", warnings[0].Message)
	assert.Equal(t, entity.CategoryInventory, warnings[0].Category)
	assert.Equal(t, entity.PriorityHigh, warnings[0].Priority)
	assert.False(t, warnings[0].IsRead)
	assert.Nil(t, warnings[0].UserID)

	require.Len(t, pub.events, 2)
	low, ok := pub.events[1].(weighing.LowStockEvent)
	require.True(t, ok)
	assert.Equal(t, string(entity.MaterialLowStock), low.Status)
	assert.Equal(t, matSilica, pub.keys[1])
}

func TestIngest_StockACero_SinExistencias(t *testing.T) {
	uc, store, _ := newFixture(t)
	store.AddMaterial(entity.Material{ID: "mat-10", Name: "Kapur", Unit: "kg", Stock: dec("10"), Status: entity.MaterialLowStock})

	_, err := uc.Ingest(context.Background(), payload("mat-10", 30, 20))
	require.NoError(t, err)

	m, _ := store.Material("mat-10")
	assert.True(t, m.Stock.IsZero())
	assert.Equal(t, entity.MaterialOutOfStock, m.Status)
}

func TestIngest_StockSobreUmbral_SinRutaDeStockBajo(t *testing.T) {
	uc, store, _ := newFixture(t)

	res, err := uc.Ingest(context.Background(), payload(matSemen, 1000, 100))
	require.NoError(t, err)
	assert.False(t, res.LowStock)

	m, _ := store.Material(matSemen)
	assert.True(t, dec("4100").Equal(m.Stock))
	assert.Equal(t, entity.MaterialActive, m.Status)
	assert.Zero(t, store.CallCount("materials.UpdateStatus"))
	assert.Empty(t, notificationsOfType(store, entity.NotificationWarning))
}

func TestIngest_CadaExitoUnaNotificacionSuccess(t *testing.T) {
	uc, store, _ := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := uc.Ingest(context.Background(), payload(matSemen, 100, 40))
		require.NoError(t, err)
	}

	successes := notificationsOfType(store, entity.NotificationSuccess)
	require.Len(t, successes, 3)
	assert.Equal(t, "Weight Record Completed", successes[0].Title)
	assert.Equal(t, "Weight record for Semen Portland has been successfully processed (60 kg)", successes[0].Message)
	assert.Equal(t, entity.CategoryOperations, successes[0].Category)
	assert.Equal(t, entity.PriorityNormal, successes[0].Priority)
}

// Las notificaciones son best-effort: su fallo no revierte registro ni stock.
func TestIngest_FalloDeNotificacion_NoRevierte(t *testing.T) {
	uc, store, _ := newFixture(t)
	store.FailOn("notifications.Create", errors.New("db caída"))

	res, err := uc.Ingest(context.Background(), payload(matSilica, 35, 20))
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	assert.Len(t, store.Records(), 1)
	m, _ := store.Material(matSilica)
	assert.True(t, dec("45").Equal(m.Stock))
}

// Fallo dentro de la transacción → PersistenceError y rollback completo.
func TestIngest_FalloDeStock_Rollback(t *testing.T) {
	uc, store, pub := newFixture(t)
	store.FailOn("materials.DecrementStock", errors.New("deadlock"))

	_, err := uc.Ingest(context.Background(), payload(matSemen, 100, 40))
	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)

	assert.Empty(t, store.Records(), "el registro debe revertirse")
	assert.Empty(t, store.Notifications())
	assert.Empty(t, pub.events)
	assert.Zero(t, store.Commits())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateReading_ReportaTodosLosCampos(t *testing.T) {
	_, err := weighing.ValidateReading(map[string]any{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Len(t, fields, 6)
	for _, k := range []string{"deviceId", "materialId", "grossWeight", "tareWeight", "vehicleNumber", "operatorId"} {
		assert.Equal(t, "Required", fields[k], k)
	}
}

func TestValidateReading_TiposYValores(t *testing.T) {
	_, err := weighing.ValidateReading(map[string]any{
		"deviceId":      "",
		"materialId":    42.0,
		"grossWeight":   "100",
		"tareWeight":    -5.0,
		"vehicleNumber": "B1",
		"operatorId":    "op",
		"timestamp":     "ayer",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "Device ID is required", fields["deviceId"])
	assert.Equal(t, "Expected string, received number", fields["materialId"])
	assert.Equal(t, "Expected number, received string", fields["grossWeight"])
	assert.Equal(t, "Tare weight must be positive", fields["tareWeight"])
	assert.Contains(t, fields, "timestamp")
	assert.NotContains(t, fields, "vehicleNumber")
}

func TestValidateReading_JSONNumberPreservaDecimales(t *testing.T) {
	r, err := weighing.ValidateReading(map[string]any{
		"deviceId":      "scale-01",
		"materialId":    "m",
		"grossWeight":   json.Number("1234.567"),
		"tareWeight":    json.Number("234.5"),
		"vehicleNumber": "B1",
		"operatorId":    "op",
		"timestamp":     "2026-02-01T10:00:00.123+07:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "1234.567", r.GrossWeight.String())
	require.NotNil(t, r.Timestamp)
	assert.Equal(t, time.Date(2026, 2, 1, 3, 0, 0, 123000000, time.UTC), *r.Timestamp)
}

func TestIngest_ValidacionNoTocaElStore(t *testing.T) {
	uc, store, _ := newFixture(t)

	_, err := uc.Ingest(context.Background(), map[string]any{"deviceId": "scale-01"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.Calls())
}

// ──────────────────────────────────────────────────────────────────────────────
// Precisión de pesos (NUMERIC(14, 3))
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_MasDeTresDecimales_RechazadoSinEscribir(t *testing.T) {
	uc, store, _ := newFixture(t)
	p := payload(matSemen, 0, 0)
	p["grossWeight"] = json.Number("10.0005")
	p["tareWeight"] = json.Number("0.0004")

	_, err := uc.Ingest(context.Background(), p)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "At most 3 decimal places allowed", fields["grossWeight"])
	assert.Equal(t, "At most 3 decimal places allowed", fields["tareWeight"])
	assert.Empty(t, store.Calls())
	m, _ := store.Material(matSemen)
	assert.True(t, dec("5000").Equal(m.Stock))
}

func TestValidateReading_CerosFinalesYTresDecimalesAceptados(t *testing.T) {
	r, err := weighing.ValidateReading(map[string]any{
		"deviceId":      "scale-01",
		"materialId":    "m",
		"grossWeight":   json.Number("10.5000"),
		"tareWeight":    0.125,
		"vehicleNumber": "B1",
		"operatorId":    "op",
	})
	require.NoError(t, err)
	assert.True(t, dec("10.5").Equal(r.GrossWeight))
	assert.True(t, dec("0.125").Equal(r.TareWeight))
}

func TestValidateReading_PesoFueraDeRango(t *testing.T) {
	_, err := weighing.ValidateReading(map[string]any{
		"deviceId":      "scale-01",
		"materialId":    "m",
		"grossWeight":   json.Number("100000000000"),
		"tareWeight":    json.Number("1"),
		"vehicleNumber": "B1",
		"operatorId":    "op",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "grossWeight", verr.Fields[0].Field)
	assert.Equal(t, "Weight is too large", verr.Fields[0].Message)
}

// Sin zona horaria el timestamp se interpreta en la hora local del servidor.
func TestValidateReading_TimestampSinZonaEnHoraLocal(t *testing.T) {
	r, err := weighing.ValidateReading(map[string]any{
		"deviceId":      "scale-01",
		"materialId":    "m",
		"grossWeight":   100.0,
		"tareWeight":    40.0,
		"vehicleNumber": "B1",
		"operatorId":    "op",
		"timestamp":     "2026-01-15T08:30",
	})
	require.NoError(t, err)
	require.NotNil(t, r.Timestamp)
	assert.True(t, time.Date(2026, 1, 15, 8, 30, 0, 0, time.Local).Equal(*r.Timestamp))
}

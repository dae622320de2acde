package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

func reading(materialID, operatorID string, gross, tare float64) map[string]any {
	return map[string]any{
		"deviceId":      "scale-01",
		"materialId":    materialID,
		"grossWeight":   gross,
		"tareWeight":    tare,
		"vehicleNumber": "B 1234 XY",
		"operatorId":    operatorID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/iot/weighing
// ──────────────────────────────────────────────────────────────────────────────

func TestIoTIngest_LecturaValida_DescuentaStock(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading(matSemen, opBudi, 1500, 500))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)

	assert.True(t, env.Success)
	var data struct {
		ID        string  `json:"id"`
		NetWeight float64 `json:"netWeight"`
		Material  string  `json:"material"`
		Operator  string  `json:"operator"`
		Timestamp string  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, 1000.0, data.NetWeight)
	assert.Equal(t, "Semen Portland", data.Material)
	assert.Equal(t, "Budi", data.Operator)
	assert.NotEmpty(t, data.Timestamp)

	m, _ := f.store.Material(matSemen)
	assert.True(t, dec("4000").Equal(m.Stock))
}

func TestIoTIngest_CamposFaltantes_DevuelveDetalles(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", map[string]any{"deviceId": "scale-01", "grossWeight": "100"})
	env := decodeEnvelope(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid data format", env.Error)
	fields := map[string]string{}
	for _, d := range env.Details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "Required", fields["materialId"])
	assert.Contains(t, fields, "grossWeight")
	assert.Contains(t, fields, "tareWeight")
	assert.Empty(t, f.store.Records())
}

func TestIoTIngest_CuerpoNoObjeto_Retorna400(t *testing.T) {
	f := newAPI(t)
	for _, body := range []string{`[1,2]`, `null`, `"hola"`, `{malformado`} {
		resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", body)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		require.Len(t, env.Details, 1, body)
		assert.Equal(t, "body", env.Details[0].Field)
		assert.Equal(t, "Expected object", env.Details[0].Message)
	}
}

// Detalles como {field, message} por campo; pesos con más de 3 decimales no llegan al store.
func TestIoTIngest_PesoConCuatroDecimales_Retorna400ConDetalle(t *testing.T) {
	f := newAPI(t)
	body := `{"deviceId":"scale-01","materialId":"` + matSemen + `","grossWeight":10.0005,` +
		`"tareWeight":0.0004,"vehicleNumber":"B 1","operatorId":"` + opBudi + `"}`
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var raw struct {
		Error   string           `json:"error"`
		Details []map[string]any `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "Invalid data format", raw.Error)
	require.Len(t, raw.Details, 2)
	for _, d := range raw.Details {
		assert.ElementsMatch(t, []string{"field", "message"}, keys(d))
		assert.Equal(t, "At most 3 decimal places allowed", d["message"])
	}
	assert.Empty(t, f.store.Records())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestIoTIngest_MaterialInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading("mat-x", opBudi, 1500, 500))
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Material not found", env.Error)
}

func TestIoTIngest_OperadorInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading(matSemen, "op-x", 1500, 500))
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Operator not found", env.Error)
}

func TestIoTIngest_UsuarioSinRolOperador_Retorna403(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading(matSemen, adminID, 1500, 500))
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User is not authorized as an operator", env.Error)
}

func TestIoTIngest_TaraMayorQueBruto_Retorna400(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading(matSemen, opBudi, 500, 1500))
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Net weight must be positive (gross weight > tare weight)", env.Error)

	m, _ := f.store.Material(matSemen)
	assert.True(t, dec("5000").Equal(m.Stock), "sin escritura cuando el neto no es positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/iot/weighing
// ──────────────────────────────────────────────────────────────────────────────

func TestIoTRecent_DevuelveUltimosPrimero(t *testing.T) {
	f := newAPI(t)
	for _, gross := range []float64{600, 700, 800} {
		resp := f.call(t, http.MethodPost, "/api/iot/weighing", "", reading(matSemen, opBudi, gross, 500))
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := f.call(t, http.MethodGet, "/api/iot/weighing?limit=2", "", nil)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []struct {
		Status        string `json:"status"`
		VehicleNumber string `json:"vehicleNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, string(entity.WeightCompleted), list[0].Status)
	assert.Equal(t, "B 1234 XY", list[0].VehicleNumber)
}

func TestIoTRecent_SinRegistros_DevuelveListaVacia(t *testing.T) {
	f := newAPI(t)
	resp := f.call(t, http.MethodGet, "/api/iot/weighing", "", nil)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(env.Data))
}

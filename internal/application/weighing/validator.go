package weighing

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// Reading lectura de báscula ya validada estructuralmente.
type Reading struct {
	DeviceID      string
	MaterialID    string
	OperatorID    string
	VehicleNumber string
	GrossWeight   decimal.Decimal
	TareWeight    decimal.Decimal
	Timestamp     *time.Time
}

// timestampLayouts formatos ISO-8601 aceptados para timestamp. Los que no traen zona
// se interpretan en la hora local del servidor.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

type requiredString struct {
	key     string
	message string
}

var requiredStrings = []requiredString{
	{"deviceId", "Device ID is required"},
	{"materialId", "Material ID is required"},
	{"vehicleNumber", "Vehicle number is required"},
	{"operatorId", "Operator ID is required"},
}

// ValidateReading comprueba la forma del payload sin acceder al store.
// Devuelve *domain.ValidationError con todos los campos inválidos a la vez.
// Los números pueden llegar como float64 o json.Number (decoder con UseNumber).
func ValidateReading(raw map[string]any) (*Reading, error) {
	verr := &domain.ValidationError{}
	r := &Reading{}

	strs := make(map[string]string, len(requiredStrings))
	for _, f := range requiredStrings {
		v, ok := raw[f.key]
		if !ok || v == nil {
			verr.Add(f.key, "Required")
			continue
		}
		s, ok := v.(string)
		if !ok {
			verr.Add(f.key, fmt.Sprintf("Expected string, received %s", jsonKind(v)))
			continue
		}
		if s == "" {
			verr.Add(f.key, f.message)
			continue
		}
		strs[f.key] = s
	}
	r.DeviceID = strs["deviceId"]
	r.MaterialID = strs["materialId"]
	r.VehicleNumber = strs["vehicleNumber"]
	r.OperatorID = strs["operatorId"]

	r.GrossWeight = positiveNumber(raw, "grossWeight", "Gross weight must be positive", verr)
	r.TareWeight = positiveNumber(raw, "tareWeight", "Tare weight must be positive", verr)

	if v, ok := raw["timestamp"]; ok && v != nil {
		s, isStr := v.(string)
		switch {
		case !isStr:
			verr.Add("timestamp", fmt.Sprintf("Expected string, received %s", jsonKind(v)))
		default:
			ts, err := parseTimestamp(s)
			if err != nil {
				verr.Add("timestamp", "Invalid ISO-8601 timestamp")
			} else {
				r.Timestamp = &ts
			}
		}
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

func positiveNumber(raw map[string]any, key, message string, verr *domain.ValidationError) decimal.Decimal {
	v, ok := raw[key]
	if !ok || v == nil {
		verr.Add(key, "Required")
		return decimal.Zero
	}
	var d decimal.Decimal
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			verr.Add(key, "Expected number, received nan")
			return decimal.Zero
		}
		d = decimal.NewFromFloat(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			verr.Add(key, "Expected number, received "+n.String())
			return decimal.Zero
		}
		d = parsed
	case int:
		d = decimal.NewFromInt(int64(n))
	default:
		verr.Add(key, fmt.Sprintf("Expected number, received %s", jsonKind(v)))
		return decimal.Zero
	}
	checkWeight(key, message, d, verr)
	return d
}

// checkWeight valida signo, precisión y magnitud de un peso; los mensajes se acumulan en verr.
func checkWeight(key, message string, d decimal.Decimal, verr *domain.ValidationError) {
	switch {
	case !d.IsPositive():
		verr.Add(key, message)
	case !entity.WeightPrecisionOK(d):
		verr.Add(key, fmt.Sprintf("At most %d decimal places allowed", entity.WeightDecimals))
	case d.GreaterThanOrEqual(entity.MaxWeight):
		verr.Add(key, "Weight is too large")
	}
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func jsonKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, json.Number, int:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

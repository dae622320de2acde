package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WeightStatus estado del ciclo de vida de un registro de pesaje.
type WeightStatus string

const (
	WeightPending    WeightStatus = "PENDING"
	WeightInProgress WeightStatus = "IN_PROGRESS"
	WeightCompleted  WeightStatus = "COMPLETED"
	WeightCancelled  WeightStatus = "CANCELLED"
)

// WeightDecimals decimales con los que se guardan pesos y stock (NUMERIC(14, 3)).
const WeightDecimals = 3

// MaxWeight primer valor que ya no cabe en NUMERIC(14, 3).
var MaxWeight = decimal.New(1, 14-WeightDecimals)

// WeightPrecisionOK indica si d se guarda sin redondeo: como mucho WeightDecimals decimales.
func WeightPrecisionOK(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(WeightDecimals))
}

// weightTransitions tabla de transiciones permitidas. COMPLETED y CANCELLED son terminales.
var weightTransitions = map[WeightStatus][]WeightStatus{
	WeightPending:    {WeightInProgress, WeightCancelled},
	WeightInProgress: {WeightCompleted, WeightCancelled},
	WeightCompleted:  nil,
	WeightCancelled:  nil,
}

// ParseWeightStatus valida un estado recibido desde la API.
func ParseWeightStatus(s string) (WeightStatus, error) {
	st := WeightStatus(s)
	if _, ok := weightTransitions[st]; !ok {
		return "", fmt.Errorf("estado de pesaje desconocido %q", s)
	}
	return st, nil
}

// CanTransitionTo indica si la tabla permite pasar de s a next.
func (s WeightStatus) CanTransitionTo(next WeightStatus) bool {
	for _, allowed := range weightTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal indica si no hay transiciones posibles desde s.
func (s WeightStatus) IsTerminal() bool {
	return len(weightTransitions[s]) == 0
}

var (
	errNonPositiveNet   = errors.New("peso neto no positivo")
	errMissingWeighedAt = errors.New("un registro COMPLETED requiere fecha de pesaje")
	errNetMismatch      = errors.New("peso neto distinto de bruto - tara")
)

// WeightRecord entrada del libro de pesajes. MaterialName, MaterialUnit y
// OperatorName sólo se rellenan en lecturas con join.
type WeightRecord struct {
	ID            string
	MaterialID    string
	GrossWeight   decimal.Decimal
	TareWeight    decimal.Decimal
	NetWeight     decimal.Decimal
	VehicleNumber string
	OperatorID    string
	Status        WeightStatus
	EntryDate     time.Time
	WeighingDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	MaterialName string
	MaterialUnit string
	OperatorName string
}

// NewWeightRecord construye un registro con neto = bruto - tara y placa en mayúsculas.
// Un registro COMPLETED sin weighedAt se rechaza.
func NewWeightRecord(id, materialID, operatorID, vehicle string, gross, tare decimal.Decimal,
	status WeightStatus, weighedAt *time.Time, now time.Time) (*WeightRecord, error) {
	r := &WeightRecord{
		ID:            id,
		MaterialID:    materialID,
		GrossWeight:   gross,
		TareWeight:    tare,
		NetWeight:     gross.Sub(tare),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(vehicle)),
		OperatorID:    operatorID,
		Status:        status,
		EntryDate:     now,
		WeighingDate:  weighedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate comprueba las invariantes del registro.
func (r *WeightRecord) Validate() error {
	if _, ok := weightTransitions[r.Status]; !ok {
		return fmt.Errorf("estado de pesaje desconocido %q", r.Status)
	}
	if !r.NetWeight.Equal(r.GrossWeight.Sub(r.TareWeight)) {
		return errNetMismatch
	}
	if !r.NetWeight.IsPositive() {
		return errNonPositiveNet
	}
	if r.Status == WeightCompleted && r.WeighingDate == nil {
		return errMissingWeighedAt
	}
	return nil
}

// TransitionTo aplica la tabla de transiciones. Al completar fija WeighingDate si falta.
func (r *WeightRecord) TransitionTo(next WeightStatus, at time.Time) error {
	if !r.Status.CanTransitionTo(next) {
		return fmt.Errorf("%s -> %s no permitido", r.Status, next)
	}
	r.Status = next
	if next == WeightCompleted && r.WeighingDate == nil {
		t := at
		r.WeighingDate = &t
	}
	r.UpdatedAt = at
	return nil
}

// Timestamp momento de pesaje o, si no existe, de creación.
func (r *WeightRecord) Timestamp() time.Time {
	if r.WeighingDate != nil {
		return *r.WeighingDate
	}
	return r.CreatedAt
}

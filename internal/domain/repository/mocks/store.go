// Package mocks implementa los puertos de repository en memoria para tests.
// Todas las operaciones quedan registradas en orden en Store.Calls.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// Store estado compartido por los repos en memoria.
type Store struct {
	mu sync.Mutex

	materials     map[string]entity.Material
	users         map[string]entity.User
	records       map[string]entity.WeightRecord
	recordSeq     map[string]int
	notifications []entity.Notification
	suppliers     map[string]entity.Supplier

	calls   []string
	failOn  map[string]error
	commits int
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		materials: make(map[string]entity.Material),
		users:     make(map[string]entity.User),
		records:   make(map[string]entity.WeightRecord),
		recordSeq: make(map[string]int),
		suppliers: make(map[string]entity.Supplier),
		failOn:    make(map[string]error),
	}
}

// FailOn hace que la operación op (ej. "notifications.Create") devuelva err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[op] = err
}

// Calls devuelve una copia del registro de llamadas.
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount cuenta cuántas veces se invocó op.
func (s *Store) CallCount(op string) int {
	n := 0
	for _, c := range s.Calls() {
		if c == op {
			n++
		}
	}
	return n
}

// Commits número de transacciones confirmadas.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// AddMaterial siembra un material.
func (s *Store) AddMaterial(m entity.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[m.ID] = m
}

// AddUser siembra un usuario.
func (s *Store) AddUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddRecord siembra un registro de pesaje.
func (s *Store) AddRecord(r entity.WeightRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordSeq[r.ID] = len(s.recordSeq)
	s.records[r.ID] = r
}

// Material devuelve el estado actual de un material.
func (s *Store) Material(id string) (entity.Material, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.materials[id]
	return m, ok
}

// Records devuelve los registros en orden de inserción.
func (s *Store) Records() []entity.WeightRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.WeightRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return s.recordSeq[out[i].ID] < s.recordSeq[out[j].ID] })
	return out
}

// Notifications devuelve las notificaciones creadas en orden.
func (s *Store) Notifications() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Notification(nil), s.notifications...)
}

// record registra la llamada y devuelve el error inyectado, si lo hay. Requiere s.mu.
func (s *Store) record(op string) error {
	s.calls = append(s.calls, op)
	return s.failOn[op]
}

// Repos atados al store.
func (s *Store) Materials() *MaterialRepo         { return &MaterialRepo{s: s} }
func (s *Store) Users() *UserRepo                 { return &UserRepo{s: s} }
func (s *Store) WeightRecords() *WeightRecordRepo { return &WeightRecordRepo{s: s} }
func (s *Store) NotificationRepo() *NotificationRepo {
	return &NotificationRepo{s: s}
}
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// TxRunner simula una transacción: si fn falla restaura materiales y registros.
type TxRunner struct {
	S *Store
}

// RunWeighing ejecuta fn con los repos del store y hace "rollback" en memoria si falla.
func (t *TxRunner) RunWeighing(ctx context.Context, fn func(
	records repository.WeightRecordRepository,
	materials repository.MaterialRepository,
) error) error {
	s := t.S
	s.mu.Lock()
	if err := s.record("tx.Begin"); err != nil {
		s.mu.Unlock()
		return err
	}
	matSnap := make(map[string]entity.Material, len(s.materials))
	for k, v := range s.materials {
		matSnap[k] = v
	}
	recSnap := make(map[string]entity.WeightRecord, len(s.records))
	for k, v := range s.records {
		recSnap[k] = v
	}
	s.mu.Unlock()

	if err := fn(s.WeightRecords(), s.Materials()); err != nil {
		s.mu.Lock()
		s.materials = matSnap
		s.records = recSnap
		s.calls = append(s.calls, "tx.Rollback")
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("tx.Commit"); err != nil {
		s.materials = matSnap
		s.records = recSnap
		return err
	}
	s.commits++
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

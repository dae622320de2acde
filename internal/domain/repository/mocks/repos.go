package mocks

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var (
	_ repository.MaterialRepository     = (*MaterialRepo)(nil)
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.WeightRecordRepository = (*WeightRecordRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

// ── Materials ────────────────────────────────────────────────────────────────

// MaterialRepo repositorio de materiales en memoria.
type MaterialRepo struct{ s *Store }

func (r *MaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.Create"); err != nil {
		return err
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r *MaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.GetByID"); err != nil {
		return nil, err
	}
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MaterialRepo) Update(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.Update"); err != nil {
		return err
	}
	if _, ok := r.s.materials[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r *MaterialRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.materials[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.materials, id)
	return nil
}

func (r *MaterialRepo) List(_ context.Context, f repository.MaterialFilter) ([]*entity.Material, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.List"); err != nil {
		return nil, 0, err
	}
	var out []*entity.Material
	for _, m := range r.s.materials {
		if f.Search != "" && !containsFold(m.Name, f.Search) && !containsFold(m.Supplier, f.Search) {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, f.Limit, f.Offset), len(out), nil
}

func (r *MaterialRepo) DecrementStock(_ context.Context, id string, qty decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.DecrementStock"); err != nil {
		return decimal.Zero, err
	}
	m, ok := r.s.materials[id]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	m.Stock = m.Stock.Sub(qty)
	r.s.materials[id] = m
	return m.Stock, nil
}

func (r *MaterialRepo) UpdateStatus(_ context.Context, id string, status entity.MaterialStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("materials.UpdateStatus"); err != nil {
		return err
	}
	m, ok := r.s.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	r.s.materials[id] = m
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("users.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("users.GetByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("users.Update"); err != nil {
		return err
	}
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("users.List"); err != nil {
		return nil, 0, err
	}
	var out []*entity.User
	for _, u := range r.s.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return paginate(out, f.Limit, f.Offset), len(out), nil
}

// ── Weight records ───────────────────────────────────────────────────────────

// WeightRecordRepo libro de pesajes en memoria.
type WeightRecordRepo struct{ s *Store }

// withJoins rellena los campos de lectura como lo haría el join SQL. Requiere s.mu.
func (r *WeightRecordRepo) withJoins(rec entity.WeightRecord) *entity.WeightRecord {
	if m, ok := r.s.materials[rec.MaterialID]; ok {
		rec.MaterialName = m.Name
		rec.MaterialUnit = m.Unit
	}
	if u, ok := r.s.users[rec.OperatorID]; ok {
		rec.OperatorName = u.Name
	}
	return &rec
}

func (r *WeightRecordRepo) Create(_ context.Context, rec *entity.WeightRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.Create"); err != nil {
		return err
	}
	if _, dup := r.s.records[rec.ID]; dup {
		return domain.ErrDuplicate
	}
	r.s.recordSeq[rec.ID] = len(r.s.recordSeq)
	r.s.records[rec.ID] = *rec
	return nil
}

func (r *WeightRecordRepo) GetByID(_ context.Context, id string) (*entity.WeightRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.GetByID"); err != nil {
		return nil, err
	}
	rec, ok := r.s.records[id]
	if !ok {
		return nil, nil
	}
	return r.withJoins(rec), nil
}

func (r *WeightRecordRepo) GetForUpdate(_ context.Context, id string) (*entity.WeightRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.GetForUpdate"); err != nil {
		return nil, err
	}
	rec, ok := r.s.records[id]
	if !ok {
		return nil, nil
	}
	return r.withJoins(rec), nil
}

func (r *WeightRecordRepo) UpdateStatus(_ context.Context, rec *entity.WeightRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.UpdateStatus"); err != nil {
		return err
	}
	cur, ok := r.s.records[rec.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Status = rec.Status
	cur.WeighingDate = rec.WeighingDate
	cur.UpdatedAt = rec.UpdatedAt
	r.s.records[rec.ID] = cur
	return nil
}

// sorted devuelve los registros por fecha de creación descendente. Requiere s.mu.
func (r *WeightRecordRepo) sorted() []entity.WeightRecord {
	out := make([]entity.WeightRecord, 0, len(r.s.records))
	for _, rec := range r.s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.s.recordSeq[out[i].ID] > r.s.recordSeq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *WeightRecordRepo) List(_ context.Context, f repository.WeightRecordFilter) ([]*entity.WeightRecord, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.List"); err != nil {
		return nil, 0, err
	}
	var out []*entity.WeightRecord
	for _, rec := range r.sorted() {
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		if f.MaterialID != "" && rec.MaterialID != f.MaterialID {
			continue
		}
		if f.OperatorID != "" && rec.OperatorID != f.OperatorID {
			continue
		}
		if f.From != nil && rec.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !rec.CreatedAt.Before(*f.To) {
			continue
		}
		out = append(out, r.withJoins(rec))
	}
	return paginate(out, f.Limit, f.Offset), len(out), nil
}

func (r *WeightRecordRepo) ListRecent(_ context.Context, limit int) ([]*entity.WeightRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("records.ListRecent"); err != nil {
		return nil, err
	}
	var out []*entity.WeightRecord
	for _, rec := range r.sorted() {
		out = append(out, r.withJoins(rec))
	}
	return paginate(out, limit, 0), nil
}

// ── Notifications ────────────────────────────────────────────────────────────

// NotificationRepo notificaciones en memoria.
type NotificationRepo struct{ s *Store }

var priorityRank = map[entity.NotificationPriority]int{
	entity.PriorityLow: 0, entity.PriorityNormal: 1, entity.PriorityHigh: 2,
}

func visibleTo(n entity.Notification, userID string) bool {
	return n.UserID == nil || *n.UserID == userID
}

func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("notifications.Create"); err != nil {
		return err
	}
	r.s.notifications = append(r.s.notifications, *n)
	return nil
}

func (r *NotificationRepo) List(_ context.Context, f repository.NotificationFilter) ([]*entity.Notification, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("notifications.List"); err != nil {
		return nil, 0, err
	}
	var out []*entity.Notification
	for _, n := range r.s.notifications {
		if !visibleTo(n, f.UserID) || (f.UnreadOnly && n.IsRead) {
			continue
		}
		n := n
		out = append(out, &n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityRank[out[i].Priority], priorityRank[out[j].Priority]
		if pi != pj {
			return pi > pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, f.Limit, f.Offset), len(out), nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("notifications.MarkRead"); err != nil {
		return nil, err
	}
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			r.s.notifications[i].IsRead = true
			n := r.s.notifications[i]
			return &n, nil
		}
	}
	return nil, nil
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("notifications.MarkAllRead"); err != nil {
		return 0, err
	}
	var n int64
	for i := range r.s.notifications {
		if visibleTo(r.s.notifications[i], userID) && !r.s.notifications[i].IsRead {
			r.s.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository/mocks"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func ptr[T any](v T) *T           { return &v }

// ── Materiales ───────────────────────────────────────────────────────────────

func TestMaterialCreate_EstadoDerivadoDelStock(t *testing.T) {
	cases := []struct {
		stock string
		want  string
	}{
		{"0", "OUT_OF_STOCK"},
		{"49.9", "LOW_STOCK"},
		{"50", "ACTIVE"},
		{"1200", "ACTIVE"},
	}
	for _, tc := range cases {
		t.Run(tc.stock, func(t *testing.T) {
			uc := NewMaterialUseCase(mocks.NewStore().Materials())
			out, err := uc.Create(context.Background(), "admin-1", dto.CreateMaterialRequest{
				Name: "Pasir Silika", Category: "Mineral", Unit: "kg",
				UnitPrice: dec("1500"), Stock: dec(tc.stock),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Status)
			assert.Equal(t, "admin-1", out.CreatedBy)
		})
	}
}

func TestMaterialCreate_ValidaTodosLosCampos(t *testing.T) {
	uc := NewMaterialUseCase(mocks.NewStore().Materials())
	_, err := uc.Create(context.Background(), "", dto.CreateMaterialRequest{Stock: dec("-1")})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "unit", "stock"}, fields)
}

func TestMaterialStock_MasDeTresDecimalesRechazado(t *testing.T) {
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: "m-1", Name: "Semen", Unit: "kg", Stock: dec("10"), Status: entity.MaterialLowStock})
	uc := NewMaterialUseCase(store.Materials())

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateMaterialRequest{
		Name: "Pasir Silika", Category: "Mineral", Unit: "kg", Stock: dec("12.0005"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "stock", verr.Fields[0].Field)

	_, err = uc.Update(context.Background(), "m-1", dto.UpdateMaterialRequest{Stock: ptr(dec("75.1234"))})
	require.ErrorAs(t, err, &verr)
	m, _ := store.Material("m-1")
	assert.True(t, dec("10").Equal(m.Stock))
}

func TestMaterialUpdate_StockRederivaEstado(t *testing.T) {
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: "m-1", Name: "Semen", Unit: "kg", Stock: dec("10"), Status: entity.MaterialLowStock})
	uc := NewMaterialUseCase(store.Materials())

	out, err := uc.Update(context.Background(), "m-1", dto.UpdateMaterialRequest{Stock: ptr(dec("500"))})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", out.Status)

	m, _ := store.Material("m-1")
	assert.Equal(t, entity.MaterialActive, m.Status)
}

func TestMaterialUpdate_EstadoExplicitoPrevalece(t *testing.T) {
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: "m-1", Name: "Semen", Unit: "kg", Stock: dec("10"), Status: entity.MaterialLowStock})
	uc := NewMaterialUseCase(store.Materials())

	out, err := uc.Update(context.Background(), "m-1", dto.UpdateMaterialRequest{
		Stock: ptr(dec("500")), Status: ptr("INACTIVE"),
	})
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", out.Status)
}

func TestMaterialUpdate_Inexistente(t *testing.T) {
	uc := NewMaterialUseCase(mocks.NewStore().Materials())
	out, err := uc.Update(context.Background(), "nope", dto.UpdateMaterialRequest{Name: ptr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMaterialList_BuscaYPagina(t *testing.T) {
	store := mocks.NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Pasir Silika", "Pasir Zircon", "Semen Portland"} {
		store.AddMaterial(entity.Material{ID: name, Name: name, Status: entity.MaterialActive, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	uc := NewMaterialUseCase(store.Materials())

	list, page, err := uc.List(context.Background(), dto.MaterialFilterRequest{
		PageRequest: dto.PageRequest{Page: 1, Limit: 1}, Search: "pasir",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pasir Zircon", list[0].Name)
	assert.Equal(t, dto.Pagination{Page: 1, Limit: 1, Total: 2, Pages: 2}, page)

	_, _, err = uc.List(context.Background(), dto.MaterialFilterRequest{Status: "BOGUS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Proveedores ──────────────────────────────────────────────────────────────

func TestSupplierCreate_ActivoYEmailValidado(t *testing.T) {
	uc := NewSupplierUseCase(mocks.NewStore().Suppliers())

	out, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "PT Mineral Jaya", ContactPerson: "Andi", Phone: "0812", Email: "andi@mineraljaya.co.id",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", out.Status)
	assert.Equal(t, []string{}, out.Materials)

	_, err = uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "PT X", ContactPerson: "Y", Phone: "1", Email: "no-es-email",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestSupplierUpdate_RatingFueraDeRango(t *testing.T) {
	store := mocks.NewStore()
	uc := NewSupplierUseCase(store.Suppliers())
	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "PT A", ContactPerson: "B", Phone: "1", Email: "b@a.com",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSupplierRequest{Rating: ptr(dec("6"))})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateSupplierRequest{Status: ptr("PENDING")})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", out.Status)
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaYRechazaDuplicado(t *testing.T) {
	store := mocks.NewStore()
	uc := NewUserUseCase(store.Users())

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "Manager@VR46.com", Password: "rahasia123", Name: "Sari", Role: "MANAGER",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager@vr46.com", out.Email)
	assert.True(t, out.IsActive)

	u, err := store.Users().GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", u.PasswordHash)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "manager@vr46.com", Password: "rahasia123", Name: "Otra", Role: "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc := NewUserUseCase(mocks.NewStore().Users())
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "x@vr46.com", Password: "rahasia123", Name: "X", Role: "SUPERUSER",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "role", verr.Fields[0].Field)
}

func TestUserUpdate_DesactivaYCambiaRol(t *testing.T) {
	store := mocks.NewStore()
	store.AddUser(entity.User{ID: "u-1", Email: "a@vr46.com", Name: "A", Role: entity.RoleOperator, IsActive: true})
	uc := NewUserUseCase(store.Users())

	out, err := uc.Update(context.Background(), "u-1", dto.UpdateUserRequest{
		Role: ptr("MARKETING"), IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "MARKETING", out.Role)
	assert.False(t, out.IsActive)
}

// ── Notificaciones ───────────────────────────────────────────────────────────

func TestNotificationMarkRead_Inexistente(t *testing.T) {
	uc := NewNotificationUseCase(mocks.NewStore().NotificationRepo())
	_, err := uc.MarkRead(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err, domain.EntityNotification))
}

// ── Registros de pesaje ──────────────────────────────────────────────────────

func TestWeightRecordList_OperadorSoloVeLosSuyos(t *testing.T) {
	store := mocks.NewStore()
	store.AddMaterial(entity.Material{ID: "m-1", Name: "Semen", Unit: "kg"})
	store.AddUser(entity.User{ID: "op-1", Name: "Budi", Role: entity.RoleOperator})
	store.AddUser(entity.User{ID: "op-2", Name: "Joko", Role: entity.RoleOperator})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, op := range []string{"op-1", "op-2", "op-1"} {
		store.AddRecord(entity.WeightRecord{
			ID: op + "-" + string(rune('a'+i)), MaterialID: "m-1", OperatorID: op,
			Status: entity.WeightPending, CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	uc := NewWeightRecordUseCase(store.WeightRecords())

	mine, page, err := uc.List(context.Background(), "op-1", entity.RoleOperator, dto.WeightRecordFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, 2, page.Total)
	for _, r := range mine {
		assert.Equal(t, "op-1", r.OperatorID)
	}

	all, _, err := uc.List(context.Background(), "admin", entity.RoleAdmin, dto.WeightRecordFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.GetByID(context.Background(), "op-2-b", "op-1", entity.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

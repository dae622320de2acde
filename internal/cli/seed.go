package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
	"github.com/ninjasaskeh/vr46/internal/infrastructure/postgres"
)

// SeedReport cuántas filas creó y omitió el seed.
type SeedReport struct {
	Users, Suppliers, Materials int
	Skipped                     int
}

var demoUsers = []dto.CreateUserRequest{
	{Email: "admin@company.com", Password: "admin123", Name: "System Administrator", Role: "ADMIN", Department: "IT"},
	{Email: "manager@company.com", Password: "manager123", Name: "Operations Manager", Role: "MANAGER", Department: "Operations"},
	{Email: "marketing@company.com", Password: "marketing123", Name: "Marketing Staff", Role: "MARKETING", Department: "Marketing"},
	{Email: "operator@company.com", Password: "operator123", Name: "Weighing Operator 1", Role: "OPERATOR", Department: "Operations"},
	{Email: "operator2@company.com", Password: "operator123", Name: "Weighing Operator 2", Role: "OPERATOR", Department: "Operations"},
}

var demoSuppliers = []dto.CreateSupplierRequest{
	{Name: "PT Batu Sejahtera", ContactPerson: "Ahmad Wijaya", Phone: "+62 21 1234 5678", Email: "ahmad@batusejahtera.com",
		Address: "Jl. Industri No. 123, Jakarta Selatan", Materials: []string{"Sand", "Gravel", "Stone"}},
	{Name: "PT Semen Utama", ContactPerson: "Budi Santoso", Phone: "+62 21 2345 6789", Email: "budi@semenutama.com",
		Address: "Jl. Raya Bekasi Km 25, Bekasi", Materials: []string{"Cement", "Mortar"}},
	{Name: "PT Baja Kencana", ContactPerson: "Sarah Dewi", Phone: "+62 21 3456 7890", Email: "sarah@bajakencana.com",
		Address: "Jl. Industri Baja No. 45, Tangerang", Materials: []string{"Steel Rebar", "Steel Plate"}},
}

var demoMaterials = []dto.CreateMaterialRequest{
	{Name: "Fine Sand", Category: "Aggregate", Supplier: "PT Batu Sejahtera", UnitPrice: decimal.NewFromInt(85000), Unit: "ton", Stock: decimal.RequireFromString("125.5")},
	{Name: "Coarse Sand", Category: "Aggregate", Supplier: "PT Batu Sejahtera", UnitPrice: decimal.NewFromInt(90000), Unit: "ton", Stock: decimal.RequireFromString("89.2")},
	{Name: "Portland Cement", Category: "Cement", Supplier: "PT Semen Utama", UnitPrice: decimal.NewFromInt(65000), Unit: "sak", Stock: decimal.NewFromInt(450)},
	{Name: "Steel Rebar 10mm", Category: "Steel", Supplier: "PT Baja Kencana", UnitPrice: decimal.NewFromInt(12500), Unit: "kg", Stock: decimal.NewFromInt(30)},
	{Name: "Split Stone 1-2", Category: "Aggregate", Supplier: "PT Batu Sejahtera", UnitPrice: decimal.NewFromInt(250000), Unit: "m3", Stock: decimal.Zero},
}

// Seeder carga datos de demostración a través de los casos de uso.
type Seeder struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	users        *usecase.UserUseCase
	suppliers    *usecase.SupplierUseCase
	materials    *usecase.MaterialUseCase
	out          io.Writer
}

// NewSeeder construye el seeder.
func NewSeeder(users repository.UserRepository, suppliers repository.SupplierRepository,
	materials repository.MaterialRepository, out io.Writer) *Seeder {
	return &Seeder{
		userRepo:     users,
		supplierRepo: suppliers,
		materialRepo: materials,
		users:        usecase.NewUserUseCase(users),
		suppliers:    usecase.NewSupplierUseCase(suppliers),
		materials:    usecase.NewMaterialUseCase(materials),
		out:          out,
	}
}

// Run es idempotente: usuarios existentes se omiten por email; proveedores y
// materiales sólo se cargan si su tabla está vacía.
func (s *Seeder) Run(ctx context.Context) (SeedReport, error) {
	var rep SeedReport
	for _, u := range demoUsers {
		_, err := s.users.Create(ctx, u)
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			rep.Skipped++
			fmt.Fprintf(s.out, "%s user %s already exists\n", skipMark, u.Email)
		case err != nil:
			return rep, fmt.Errorf("seed user %s: %w", u.Email, err)
		default:
			rep.Users++
			fmt.Fprintf(s.out, "%s user %s (%s)\n", okMark, u.Email, u.Role)
		}
	}

	_, total, err := s.supplierRepo.List(ctx, repository.SupplierFilter{Limit: 1})
	if err != nil {
		return rep, fmt.Errorf("count suppliers: %w", err)
	}
	if total == 0 {
		for _, in := range demoSuppliers {
			if _, err := s.suppliers.Create(ctx, in); err != nil {
				return rep, fmt.Errorf("seed supplier %s: %w", in.Name, err)
			}
			rep.Suppliers++
			fmt.Fprintf(s.out, "%s supplier %s\n", okMark, in.Name)
		}
	} else {
		rep.Skipped += len(demoSuppliers)
		fmt.Fprintf(s.out, "%s suppliers already present\n", skipMark)
	}

	_, total, err = s.materialRepo.List(ctx, repository.MaterialFilter{Limit: 1})
	if err != nil {
		return rep, fmt.Errorf("count materials: %w", err)
	}
	if total > 0 {
		rep.Skipped += len(demoMaterials)
		fmt.Fprintf(s.out, "%s materials already present\n", skipMark)
		return rep, nil
	}
	var createdBy string
	if mk, err := s.userRepo.GetByEmail(ctx, "marketing@company.com"); err == nil && mk != nil {
		createdBy = mk.ID
	}
	for _, in := range demoMaterials {
		m, err := s.materials.Create(ctx, createdBy, in)
		if err != nil {
			return rep, fmt.Errorf("seed material %s: %w", in.Name, err)
		}
		rep.Materials++
		fmt.Fprintf(s.out, "%s material %s [%s]\n", okMark, m.Name, m.Status)
	}
	return rep, nil
}

// SeedCmd carga usuarios por rol, proveedores y materiales de demostración.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, suppliers and materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			seeder := NewSeeder(
				postgres.NewUserRepository(pool),
				postgres.NewSupplierRepository(pool),
				postgres.NewMaterialRepository(pool),
				cmd.OutOrStdout(),
			)
			rep, err := seeder.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nCreated %d users, %d suppliers, %d materials (%d skipped)\n",
				rep.Users, rep.Suppliers, rep.Materials, rep.Skipped)
			return nil
		},
	}
}

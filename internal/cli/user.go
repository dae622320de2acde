package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
	"github.com/ninjasaskeh/vr46/internal/infrastructure/postgres"
)

// UserCmd administración de usuarios desde la terminal.
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user (e.g. the first ADMIN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.CreateUserRequest{}
			in.Email, _ = cmd.Flags().GetString("email")
			in.Name, _ = cmd.Flags().GetString("name")
			in.Role, _ = cmd.Flags().GetString("role")
			in.Password, _ = cmd.Flags().GetString("password")
			in.Department, _ = cmd.Flags().GetString("department")

			_, pool, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			out, err := usecase.NewUserUseCase(postgres.NewUserRepository(pool)).Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created user %s (%s) id=%s\n", okMark, out.Email, out.Role, out.ID)
			return nil
		},
	}
	create.Flags().String("email", "", "email (required)")
	create.Flags().String("name", "", "display name (required)")
	create.Flags().String("role", "OPERATOR", "ADMIN | MANAGER | MARKETING | OPERATOR")
	create.Flags().String("password", "", "password, min 6 characters (required)")
	create.Flags().String("department", "", "department")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

const minPasswordLen = 6

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario activo con password hasheado (bcrypt).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	verr := &domain.ValidationError{}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validEmail(email) {
		verr.Add("email", "Invalid email")
	}
	if len(in.Password) < minPasswordLen {
		verr.Add("password", "Password must be at least 6 characters")
	}
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "Name is required")
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		verr.Add("role", "Invalid role")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		Department:   in.Department,
		Phone:        in.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(user)
	return &out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	out := dto.UserFromEntity(user)
	return &out, nil
}

// Update modifica rol, estado, datos de contacto o password.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	verr := &domain.ValidationError{}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
		if user.Name == "" {
			verr.Add("name", "Name cannot be empty")
		}
	}
	if in.Role != nil {
		role, err := entity.ParseRole(*in.Role)
		if err != nil {
			verr.Add("role", "Invalid role")
		}
		user.Role = role
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			verr.Add("password", "Password must be at least 6 characters")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = string(hash)
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(user)
	return &out, nil
}

// List lista usuarios, opcionalmente por rol.
func (uc *UserUseCase) List(ctx context.Context, in dto.UserFilterRequest) ([]dto.UserResponse, dto.Pagination, error) {
	in.DefaultPage()
	f := repository.UserFilter{Limit: in.Limit, Offset: in.Offset()}
	if in.Role != "" {
		role, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, dto.Pagination{}, domain.ErrInvalidInput
		}
		f.Role = role
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserFromEntity(u))
	}
	return out, dto.NewPagination(in.PageRequest, total), nil
}

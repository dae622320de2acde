package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
	"github.com/ninjasaskeh/vr46/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *jwt.Signer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *jwt.Signer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Usuario inexistente o password incorrecto → ErrUnauthorized; usuario inactivo → ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := uc.tokens.Issue(jwt.Identity{UserID: user.ID, Role: string(user.Role)})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      dto.UserFromEntity(user),
	}, nil
}

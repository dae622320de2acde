package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret se devuelve al firmar o verificar sin secreto configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Identity lo que viaja dentro del token: quién es y con qué rol.
type Identity struct {
	UserID string
	Role   string // ADMIN | MANAGER | MARKETING | OPERATOR
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Token firmado más su expiración.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Signer emite y verifica tokens HS256 de un emisor concreto.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner crea el firmador. ttl <= 0 usa 24h.
func NewSigner(secret, issuer string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue firma un token para la identidad dada.
func (s *Signer) Issue(id Identity) (Token, error) {
	if len(s.secret) == 0 {
		return Token{}, ErrEmptySecret
	}
	now := s.now()
	exp := now.Add(s.ttl)
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: id.Role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return Token{}, fmt.Errorf("firmar token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp}, nil
}

// Verify valida firma, emisor y expiración y devuelve la identidad.
func (s *Signer) Verify(tokenString string) (Identity, error) {
	if len(s.secret) == 0 {
		return Identity{}, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid || c.Subject == "" {
		return Identity{}, errors.New("jwt: claims inválidos")
	}
	return Identity{UserID: c.Subject, Role: c.Role}, nil
}

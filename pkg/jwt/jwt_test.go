package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_IdentidadCompleta(t *testing.T) {
	s := NewSigner("secreto", "vr46", 5*time.Minute)

	tok, err := s.Issue(Identity{UserID: "user-1", Role: "OPERATOR"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), tok.ExpiresAt, 2*time.Second)

	id, err := s.Verify(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "user-1", Role: "OPERATOR"}, id)
}

func TestVerify_FirmaIncorrecta(t *testing.T) {
	tok, err := NewSigner("secreto", "vr46", time.Minute).Issue(Identity{UserID: "u", Role: "ADMIN"})
	require.NoError(t, err)

	_, err = NewSigner("otro", "vr46", time.Minute).Verify(tok.Value)
	assert.Error(t, err)
}

func TestVerify_OtroEmisor(t *testing.T) {
	tok, err := NewSigner("secreto", "otra-app", time.Minute).Issue(Identity{UserID: "u", Role: "ADMIN"})
	require.NoError(t, err)

	_, err = NewSigner("secreto", "vr46", time.Minute).Verify(tok.Value)
	assert.Error(t, err)
}

func TestVerify_Expirado(t *testing.T) {
	s := NewSigner("secreto", "vr46", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := s.Issue(Identity{UserID: "u", Role: "ADMIN"})
	require.NoError(t, err)

	_, err = NewSigner("secreto", "vr46", time.Minute).Verify(tok.Value)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	s := NewSigner("", "vr46", time.Minute)
	_, err := s.Issue(Identity{UserID: "u"})
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = s.Verify("x.y.z")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

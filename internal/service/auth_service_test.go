package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"imovel-api/internal/core/auth"
	"imovel-api/internal/domain"
	"imovel-api/internal/repo"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte("test-secret"),
		Issuer: "imovel-api",
		TTL:    7 * 24 * time.Hour,
	}
}

func TestLoginIssuesDecodableClaims(t *testing.T) {
	svc := NewAuthService(repo.NewMemUserRepo(), testJWTer())

	token, u, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "admin", u.Username)
	require.Equal(t, "admin", u.Role)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, u.ID, claims.UID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(repo.NewMemUserRepo(), testJWTer())
	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUserIsIndistinguishable(t *testing.T) {
	svc := NewAuthService(repo.NewMemUserRepo(), testJWTer())
	_, _, err := svc.Login(context.Background(), "ghost", "admin123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	j := testJWTer()
	j.TTL = -2 * time.Minute // 已过期（超出 60s leeway）
	svc := NewAuthService(repo.NewMemUserRepo(), j)

	token, _, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	svc := NewAuthService(repo.NewMemUserRepo(), testJWTer())
	other := &auth.JWTer{Secret: []byte("another-secret"), Issuer: "imovel-api", TTL: time.Hour}
	token, err := other.Issue("1", "admin", "admin")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

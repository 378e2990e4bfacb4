package service

import (
	"context"
	"errors"

	"imovel-api/internal/core/auth"
	"imovel-api/internal/domain"
	"imovel-api/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Login 用户名未知与密码不符返回同一个错误，避免账号枚举
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.jwter.Issue(u.ID, u.Username, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	claims, err := s.jwter.Parse(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

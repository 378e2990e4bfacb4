package repo

import (
	"context"

	"imovel-api/internal/domain"
	"imovel-api/pkg/utils"
)

// MemUserRepo 兜底模式的静态账号；演示口令在构造时做 bcrypt，
// 登录校验只走哈希比对，不存在明文旁路
type MemUserRepo struct {
	users map[string]domain.User
}

func NewMemUserRepo() *MemUserRepo {
	admin := domain.User{
		ID:           "1",
		Username:     "admin",
		PasswordHash: utils.HashPassword("admin123"),
		Email:        "admin@imovel.local",
		Role:         "admin",
	}
	return &MemUserRepo{users: map[string]domain.User{admin.Username: admin}}
}

func (r *MemUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"imovel-api/internal/domain"
	"imovel-api/internal/feature/property"
)

// PropertyRepo 真实后端适配；排序统一 created_at DESC（最新在前）
type PropertyRepo struct{ db *gorm.DB }

func NewPropertyRepo(db *gorm.DB) *PropertyRepo { return &PropertyRepo{db: db} }

func (r *PropertyRepo) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("status = ?", string(domain.StatusAvailable)))
}

func (r *PropertyRepo) ListAll(ctx context.Context) ([]domain.Property, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *PropertyRepo) list(ctx context.Context, tx *gorm.DB) ([]domain.Property, error) {
	var rows []property.Model
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *PropertyRepo) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var m property.Model
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := m.ToDomain()
	return &p, nil
}

func (r *PropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(property.FromDomain(p)).Error
}

func (r *PropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	res := r.db.WithContext(ctx).
		Model(&property.Model{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(property.FromDomain(p))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, at time.Time) (*domain.Property, error) {
	res := r.db.WithContext(ctx).
		Model(&property.Model{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": at})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&property.Model{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

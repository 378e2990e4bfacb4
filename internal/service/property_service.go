package service

import (
	"context"
	"strings"
	"time"

	"imovel-api/internal/core/cache"
	"imovel-api/internal/domain"
	"imovel-api/internal/feature/property"
	"imovel-api/pkg/utils"
)

const (
	availableCacheKey = "properties:available"
	availableCacheTTL = 30 * time.Second
)

// PropertyService CRUD 语义都在这一层：校验、缺省值、时间戳、状态可见性门
type PropertyService struct {
	repo  domain.PropertyRepository
	cache *cache.Cache // 可空；只缓存公共列表
	now   func() time.Time
}

func NewPropertyService(repo domain.PropertyRepository, c *cache.Cache) *PropertyService {
	return &PropertyService{repo: repo, cache: c, now: time.Now}
}

// ---------- 公共侧（仅 available） ----------

func (s *PropertyService) ListAvailable(ctx context.Context, f property.Filters) ([]domain.Property, error) {
	list, err := s.loadAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return property.Apply(list, f), nil
}

func (s *PropertyService) loadAvailable(ctx context.Context) ([]domain.Property, error) {
	if s.cache == nil {
		return s.repo.ListAvailable(ctx)
	}
	list, err := cache.GetOrLoadJSON(s.cache, ctx, availableCacheKey, availableCacheTTL,
		func(ctx context.Context) ([]domain.Property, error) {
			return s.repo.ListAvailable(ctx)
		})
	if err != nil {
		// 缓存故障退化为直连存储
		return s.repo.ListAvailable(ctx)
	}
	return list, nil
}

// GetPublic 非 available 与不存在对外不可区分
func (s *PropertyService) GetPublic(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusAvailable {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ---------- 管理侧 ----------

func (s *PropertyService) ListAll(ctx context.Context) ([]domain.Property, error) {
	return s.repo.ListAll(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, draft *domain.Property) (*domain.Property, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	now := s.now()
	p := *draft
	p.ID = utils.NewID()
	if p.Status == "" {
		p.Status = domain.StatusAvailable
	}
	if !domain.ValidStatus(p.Status) {
		return nil, domain.Invalid("status", "unknown status")
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &p, nil
}

// Update 全量替换可变字段；id 与 createdAt 不可变
func (s *PropertyService) Update(ctx context.Context, id string, full *domain.Property) (*domain.Property, error) {
	if err := validateDraft(full); err != nil {
		return nil, err
	}
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := *full
	p.ID = cur.ID
	p.CreatedAt = cur.CreatedAt
	if p.Status == "" {
		p.Status = cur.Status
	}
	if !domain.ValidStatus(p.Status) {
		return nil, domain.Invalid("status", "unknown status")
	}
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &p, nil
}

// UpdateStatus 窄更新：只动 status 和 updatedAt
func (s *PropertyService) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Property, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.Invalid("status", "unknown status")
	}
	p, err := s.repo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *PropertyService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Forget(ctx, availableCacheKey)
	}
}

func validateDraft(p *domain.Property) error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.Invalid("title", "required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return domain.Invalid("description", "required")
	}
	if p.Type == "" {
		return domain.Invalid("type", "required")
	}
	if !domain.ValidPropertyType(p.Type) {
		return domain.Invalid("type", "unknown type")
	}
	if p.Operation == "" {
		return domain.Invalid("operation", "required")
	}
	if !domain.ValidOperation(p.Operation) {
		return domain.Invalid("operation", "unknown operation")
	}
	if p.Price < 0 {
		return domain.Invalid("price", "must be >= 0")
	}
	if strings.TrimSpace(p.Location.City) == "" {
		return domain.Invalid("location.city", "required")
	}
	if strings.TrimSpace(p.Location.Neighborhood) == "" {
		return domain.Invalid("location.neighborhood", "required")
	}
	if strings.TrimSpace(p.Location.Address) == "" {
		return domain.Invalid("location.address", "required")
	}
	if p.Details.Bedrooms < 0 || p.Details.Bathrooms < 0 || p.Details.Garages < 0 {
		return domain.Invalid("details", "room counts must be >= 0")
	}
	if p.Details.Area < 0 {
		return domain.Invalid("details.area", "must be >= 0")
	}
	return nil
}

package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"imovel-api/internal/domain"
)

// MemPropertyRepo 内存兜底/测试替身：id 为键的 arena。
// ReadOnly 时写操作一律 ErrNotConfigured（未配置真实存储 → 501）
type MemPropertyRepo struct {
	mu       sync.RWMutex
	items    map[string]domain.Property
	ReadOnly bool
}

func NewMemPropertyRepo(seed ...domain.Property) *MemPropertyRepo {
	r := &MemPropertyRepo{items: make(map[string]domain.Property, len(seed))}
	for _, p := range seed {
		r.items[p.ID] = clone(p)
	}
	return r
}

func clone(p domain.Property) domain.Property {
	p.Details.Features = append([]string(nil), p.Details.Features...)
	p.Images = append([]string(nil), p.Images...)
	return p
}

func (r *MemPropertyRepo) snapshot(onlyAvailable bool) []domain.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Property, 0, len(r.items))
	for _, p := range r.items {
		if onlyAvailable && p.Status != domain.StatusAvailable {
			continue
		}
		out = append(out, clone(p))
	}
	// 最新在前，时间相同按 id 保证稳定
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemPropertyRepo) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	return r.snapshot(true), nil
}

func (r *MemPropertyRepo) ListAll(ctx context.Context) ([]domain.Property, error) {
	return r.snapshot(false), nil
}

func (r *MemPropertyRepo) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = clone(p)
	return &p, nil
}

func (r *MemPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	if r.ReadOnly {
		return domain.ErrNotConfigured
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = clone(*p)
	return nil
}

func (r *MemPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	if r.ReadOnly {
		return domain.ErrNotConfigured
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = clone(*p)
	return nil
}

func (r *MemPropertyRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, at time.Time) (*domain.Property, error) {
	if r.ReadOnly {
		return nil, domain.ErrNotConfigured
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	r.items[id] = p
	p = clone(p)
	return &p, nil
}

func (r *MemPropertyRepo) Delete(ctx context.Context, id string) error {
	if r.ReadOnly {
		return domain.ErrNotConfigured
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

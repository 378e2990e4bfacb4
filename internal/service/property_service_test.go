package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"imovel-api/internal/domain"
	"imovel-api/internal/feature/property"
	"imovel-api/internal/repo"
)

func draft() *domain.Property {
	return &domain.Property{
		Title:       "Casa Nova",
		Description: "Casa recém construída",
		Type:        domain.TypeHouse,
		Operation:   domain.OperationSale,
		Price:       500000,
		Location:    domain.Location{City: "Carmo", Neighborhood: "Centro", Address: "Rua Principal, 10"},
		Details:     domain.Details{Bedrooms: 3, Bathrooms: 2, Garages: 1, Area: 150, Features: []string{"Piscina"}},
		Images:      []string{"https://example.com/cover.jpg"},
	}
}

func newSvc(t *testing.T, seed ...domain.Property) (*PropertyService, *repo.MemPropertyRepo) {
	t.Helper()
	mem := repo.NewMemPropertyRepo(seed...)
	return NewPropertyService(mem, nil), mem
}

func TestCreateAppliesDefaultsAndStamps(t *testing.T) {
	svc, _ := newSvc(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, domain.StatusAvailable, p.Status)
	require.False(t, p.Featured)
	require.Equal(t, now, p.CreatedAt)
	require.Equal(t, now, p.UpdatedAt)
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := newSvc(t)
	in := draft()
	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, in.Title, got.Title)
	require.Equal(t, in.Description, got.Description)
	require.Equal(t, in.Type, got.Type)
	require.Equal(t, in.Operation, got.Operation)
	require.Equal(t, in.Price, got.Price)
	require.Equal(t, in.Location, got.Location)
	require.Equal(t, in.Details, got.Details)
	require.Equal(t, in.Images, got.Images)
	require.NotEmpty(t, got.ID)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newSvc(t)
	cases := []struct {
		name   string
		mutate func(*domain.Property)
	}{
		{"missing title", func(p *domain.Property) { p.Title = "" }},
		{"missing description", func(p *domain.Property) { p.Description = "" }},
		{"missing type", func(p *domain.Property) { p.Type = "" }},
		{"unknown type", func(p *domain.Property) { p.Type = "castle" }},
		{"missing operation", func(p *domain.Property) { p.Operation = "" }},
		{"negative price", func(p *domain.Property) { p.Price = -1 }},
		{"missing city", func(p *domain.Property) { p.Location.City = "" }},
		{"missing neighborhood", func(p *domain.Property) { p.Location.Neighborhood = "" }},
		{"missing address", func(p *domain.Property) { p.Location.Address = "" }},
		{"negative area", func(p *domain.Property) { p.Details.Area = -10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := draft()
			tc.mutate(d)
			_, err := svc.Create(context.Background(), d)
			require.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestPublicVisibilityGate(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, draft())
	require.NoError(t, err)
	b, err := svc.Create(ctx, draft())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, b.ID, domain.StatusSold)
	require.NoError(t, err)

	list, err := svc.ListAvailable(ctx, property.Filters{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, a.ID, list[0].ID)

	// 存在但非 available：对公共面等同于不存在
	_, err = svc.GetPublic(ctx, b.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// 管理面不受限制
	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSold, got.Status)
}

func TestUpdateReplacesMutableFieldsOnly(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, draft())
	require.NoError(t, err)

	later := created.UpdatedAt.Add(time.Hour)
	svc.now = func() time.Time { return later }

	full := draft()
	full.Title = "Casa Reformada"
	full.Price = 600000
	updated, err := svc.Update(ctx, created.ID, full)
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "Casa Reformada", updated.Title)
	require.Equal(t, float64(600000), updated.Price)
	require.Equal(t, later, updated.UpdatedAt)
}

func TestUpdateMissingIDFails(t *testing.T) {
	svc, _ := newSvc(t)
	_, err := svc.Update(context.Background(), "nope", draft())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusTouchesOnlyStatusAndUpdatedAt(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, draft())
	require.NoError(t, err)

	later := created.UpdatedAt.Add(time.Hour)
	svc.now = func() time.Time { return later }

	after, err := svc.UpdateStatus(ctx, created.ID, domain.StatusSold)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSold, after.Status)
	require.Equal(t, later, after.UpdatedAt)

	// 其余字段逐一不变
	norm := func(p domain.Property) domain.Property {
		p.Status = ""
		p.UpdatedAt = time.Time{}
		return p
	}
	require.Equal(t, norm(*created), norm(*after))
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newSvc(t)
	created, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "demolished")
	require.True(t, domain.IsValidation(err))
}

func TestDeleteRemovesFromBothSurfaces(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, draft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetPublic(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// 删除不存在的 id 报 NotFound（非幂等，行为在此固定）
	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadOnlyFallbackRejectsWrites(t *testing.T) {
	mem := repo.NewMemPropertyRepo(repo.DemoProperties()...)
	mem.ReadOnly = true
	svc := NewPropertyService(mem, nil)
	ctx := context.Background()

	// 读没问题
	list, err := svc.ListAvailable(ctx, property.Filters{})
	require.NoError(t, err)
	require.NotEmpty(t, list)

	// 写一律 NotConfigured
	_, err = svc.Create(ctx, draft())
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = svc.UpdateStatus(ctx, list[0].ID, domain.StatusSold)
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	err = svc.Delete(ctx, list[0].ID)
	require.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestListAvailableNewestFirst(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return tick }
		p, err := svc.Create(ctx, draft())
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	list, err := svc.ListAvailable(ctx, property.Filters{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, ids[2], list[0].ID)
	require.Equal(t, ids[0], list[2].ID)
}

func TestServerSideFilterScenario(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	d := draft() // price 500000, 3 quartos, Carmo
	created, err := svc.Create(ctx, d)
	require.NoError(t, err)

	hit, err := svc.ListAvailable(ctx, property.Filters{MinPrice: 400000, MinBedrooms: 2, City: "Carmo"})
	require.NoError(t, err)
	require.Len(t, hit, 1)
	require.Equal(t, created.ID, hit[0].ID)

	miss, err := svc.ListAvailable(ctx, property.Filters{City: "OtherCity"})
	require.NoError(t, err)
	require.Empty(t, miss)
}

func TestStoreErrorSurfacesImmediately(t *testing.T) {
	svc := NewPropertyService(failingRepo{}, nil)
	_, err := svc.ListAll(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrNotFound))
}

type failingRepo struct{}

var errStoreDown = errors.New("store unreachable")

func (failingRepo) ListAvailable(context.Context) ([]domain.Property, error) {
	return nil, errStoreDown
}
func (failingRepo) ListAll(context.Context) ([]domain.Property, error) { return nil, errStoreDown }
func (failingRepo) FindByID(context.Context, string) (*domain.Property, error) {
	return nil, errStoreDown
}
func (failingRepo) Create(context.Context, *domain.Property) error { return errStoreDown }
func (failingRepo) Update(context.Context, *domain.Property) error { return errStoreDown }
func (failingRepo) UpdateStatus(context.Context, string, domain.Status, time.Time) (*domain.Property, error) {
	return nil, errStoreDown
}
func (failingRepo) Delete(context.Context, string) error { return errStoreDown }

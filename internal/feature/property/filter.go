package property

import "imovel-api/internal/domain"

// Filters 检索条件；零值字段视为未设置，不参与过滤
// （minPrice=0 等同于没给下限）
type Filters struct {
	Type        domain.PropertyType `form:"type" json:"type,omitempty"`
	Operation   domain.Operation    `form:"operation" json:"operation,omitempty"`
	City        string              `form:"city" json:"city,omitempty"`
	MinPrice    float64             `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice    float64             `form:"maxPrice" json:"maxPrice,omitempty"`
	MinBedrooms int                 `form:"minBedrooms" json:"minBedrooms,omitempty"`
	MinArea     float64             `form:"minArea" json:"minArea,omitempty"`
}

func (f Filters) Empty() bool { return f == Filters{} }

func (f Filters) Match(p *domain.Property) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Operation != "" && p.Operation != f.Operation {
		return false
	}
	if f.City != "" && p.Location.City != f.City {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinBedrooms > 0 && p.Details.Bedrooms < f.MinBedrooms {
		return false
	}
	if f.MinArea > 0 && p.Details.Area < f.MinArea {
		return false
	}
	return true
}

// Apply 纯函数：保序取子集，空条件恒等
func Apply(list []domain.Property, f Filters) []domain.Property {
	if f.Empty() {
		return list
	}
	out := make([]domain.Property, 0, len(list))
	for i := range list {
		if f.Match(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

package property

import (
	"time"

	"gorm.io/datatypes"

	"imovel-api/internal/domain"
)

// Model 行结构；location/details 打平成列，对齐托管库的表结构，
// features/images 存 JSON 列
type Model struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Title        string  `gorm:"size:255;not null"`
	Description  string  `gorm:"type:text;not null"`
	Type         string  `gorm:"size:16;not null;index"`
	Operation    string  `gorm:"size:8;not null;index"`
	Status       string  `gorm:"size:16;not null;default:available;index"`
	Price        float64 `gorm:"not null"`
	City         string  `gorm:"size:128;not null;index"`
	Neighborhood string  `gorm:"size:128;not null"`
	Address      string  `gorm:"size:255;not null"`
	Bedrooms     int     `gorm:"not null;default:0"`
	Bathrooms    int     `gorm:"not null;default:0"`
	Garages      int     `gorm:"not null;default:0"`
	Area         float64 `gorm:"not null;default:0"`
	Features     datatypes.JSONSlice[string]
	Images       datatypes.JSONSlice[string]
	Featured     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (Model) TableName() string { return "properties" }

func FromDomain(p *domain.Property) *Model {
	return &Model{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Type:         string(p.Type),
		Operation:    string(p.Operation),
		Status:       string(p.Status),
		Price:        p.Price,
		City:         p.Location.City,
		Neighborhood: p.Location.Neighborhood,
		Address:      p.Location.Address,
		Bedrooms:     p.Details.Bedrooms,
		Bathrooms:    p.Details.Bathrooms,
		Garages:      p.Details.Garages,
		Area:         p.Details.Area,
		Features:     datatypes.NewJSONSlice(p.Details.Features),
		Images:       datatypes.NewJSONSlice(p.Images),
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *Model) ToDomain() domain.Property {
	return domain.Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        domain.PropertyType(m.Type),
		Operation:   domain.Operation(m.Operation),
		Status:      domain.Status(m.Status),
		Price:       m.Price,
		Location: domain.Location{
			City:         m.City,
			Neighborhood: m.Neighborhood,
			Address:      m.Address,
		},
		Details: domain.Details{
			Bedrooms:  m.Bedrooms,
			Bathrooms: m.Bathrooms,
			Garages:   m.Garages,
			Area:      m.Area,
			Features:  []string(m.Features),
		},
		Images:    []string(m.Images),
		Featured:  m.Featured,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

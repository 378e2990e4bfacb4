package domain

import (
	"context"
	"time"
)

type PropertyType string

const (
	TypeApartment  PropertyType = "apartment"
	TypeHouse      PropertyType = "house"
	TypeCommercial PropertyType = "commercial"
	TypeLand       PropertyType = "land"
)

type Operation string

const (
	OperationRent Operation = "rent"
	OperationSale Operation = "sale"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusRented    Status = "rented"
	StatusSold      Status = "sold"
)

func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeApartment, TypeHouse, TypeCommercial, TypeLand:
		return true
	}
	return false
}

func ValidOperation(op Operation) bool {
	return op == OperationRent || op == OperationSale
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusRented, StatusSold:
		return true
	}
	return false
}

type Location struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
}

type Details struct {
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Garages   int      `json:"garages"`
	Area      float64  `json:"area"`
	Features  []string `json:"features"`
}

// Property 核心实体；images[0] 约定为封面图
type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	Operation   Operation    `json:"operation"`
	Status      Status       `json:"status"`
	Price       float64      `json:"price"`
	Location    Location     `json:"location"`
	Details     Details      `json:"details"`
	Images      []string     `json:"images"`
	Featured    bool         `json:"featured"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type PropertyRepository interface {
	ListAvailable(ctx context.Context) ([]Property, error)
	ListAll(ctx context.Context) ([]Property, error)
	FindByID(ctx context.Context, id string) (*Property, error)
	Create(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (*Property, error)
	Delete(ctx context.Context, id string) error
}

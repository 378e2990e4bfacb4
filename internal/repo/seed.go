package repo

import (
	"time"

	"imovel-api/internal/domain"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// DemoProperties 兜底模式的演示房源，也是 cmd/seed 的初始数据
func DemoProperties() []domain.Property {
	return []domain.Property{
		{
			ID:          "1",
			Title:       "Apartamento Térreo no Centro - 1 Quarto",
			Description: "Apartamento térreo localizado no coração de Carmo. Ideal para solteiros ou casais. Possui 1 quarto ventilado, sala de estar aconchegante, cozinha prática, banheiro social e uma charmosa área interna privativa.",
			Type:        domain.TypeApartment,
			Operation:   domain.OperationRent,
			Status:      domain.StatusAvailable,
			Price:       500,
			Location:    domain.Location{City: "Carmo", Neighborhood: "Centro", Address: "Centro, Carmo - RJ"},
			Details: domain.Details{
				Bedrooms: 1, Bathrooms: 1, Garages: 0, Area: 45,
				Features: []string{"Entrada Independente", "Área de Serviço", "Centro da Cidade"},
			},
			Images:    []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200"},
			Featured:  true,
			CreatedAt: day("2026-02-10"),
			UpdatedAt: day("2026-02-18"),
		},
		{
			ID:          "2",
			Title:       "Casa Duplex Moderna no Bairro Nobre",
			Description: "Espetacular casa duplex com acabamento de alto padrão. 3 suítes amplas, sendo uma com closet e hidromassagem. Sala em 3 ambientes com pé direito duplo, cozinha em ilha integrada à área gourmet e piscina.",
			Type:        domain.TypeHouse,
			Operation:   domain.OperationSale,
			Status:      domain.StatusAvailable,
			Price:       850000,
			Location:    domain.Location{City: "Carmo", Neighborhood: "Bairro Nobre", Address: "Rua Principal, Bairro Nobre - Carmo - RJ"},
			Details: domain.Details{
				Bedrooms: 3, Bathrooms: 4, Garages: 2, Area: 220,
				Features: []string{"Piscina", "Área Gourmet", "Suíte com Closet", "Segurança 24h"},
			},
			Images:    []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1200"},
			Featured:  true,
			CreatedAt: day("2026-02-12"),
			UpdatedAt: day("2026-02-18"),
		},
		{
			ID:          "3",
			Title:       "Loja Comercial Ampla em Ponto Estratégico",
			Description: "Excelente oportunidade para o seu negócio. Loja com 80m², vitrine ampla em vidro temperado, pé direito alto, mezanino para escritório e 2 banheiros. Localizada no fluxo principal de pedestres e veículos.",
			Type:        domain.TypeCommercial,
			Operation:   domain.OperationRent,
			Status:      domain.StatusAvailable,
			Price:       2500,
			Location:    domain.Location{City: "Carmo", Neighborhood: "Centro", Address: "Av. Brasil, Centro - Carmo - RJ"},
			Details: domain.Details{
				Bedrooms: 0, Bathrooms: 2, Garages: 0, Area: 80,
				Features: []string{"Mezanino", "Vitrine", "Ar Condicionado", "Ponto Nobre"},
			},
			Images:    []string{"https://images.unsplash.com/photo-1556740734-7f158223d58c?w=1200"},
			Featured:  true,
			CreatedAt: day("2026-02-14"),
			UpdatedAt: day("2026-02-18"),
		},
		{
			ID:          "4",
			Title:       "Apartamento Luxo Vista Panorâmica",
			Description: "Apartamento de alto luxo com vista definitiva para as montanhas. Varanda gourmet envidraçada, 2 quartos (1 suíte), móveis planejados em todos os cômodos e acabamento em porcelanato.",
			Type:        domain.TypeApartment,
			Operation:   domain.OperationSale,
			Status:      domain.StatusAvailable,
			Price:       420000,
			Location:    domain.Location{City: "Cantagalo", Neighborhood: "Centro", Address: "Rua das Flores, Cantagalo - RJ"},
			Details: domain.Details{
				Bedrooms: 2, Bathrooms: 2, Garages: 1, Area: 75,
				Features: []string{"Varanda Gourmet", "Móveis Planejados", "Vista Livre", "Elevador"},
			},
			Images:    []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200"},
			Featured:  false,
			CreatedAt: day("2026-02-15"),
			UpdatedAt: day("2026-02-18"),
		},
		{
			ID:          "5",
			Title:       "Casa de Campo com Pomar Formado",
			Description: "O refúgio perfeito para os finais de semana. Casa estilo rústico com varandão, fogão a lenha, diversas árvores frutíferas e pequeno riacho nos fundos. Terreno de 2.000m² totalmente cercado.",
			Type:        domain.TypeHouse,
			Operation:   domain.OperationSale,
			Status:      domain.StatusAvailable,
			Price:       350000,
			Location:    domain.Location{City: "Carmo", Neighborhood: "Zona Rural", Address: "Estrada da Batalha, Carmo - RJ"},
			Details: domain.Details{
				Bedrooms: 2, Bathrooms: 1, Garages: 5, Area: 120,
				Features: []string{"Fogão a Lenha", "Pomar", "Riacho", "Muita Natureza"},
			},
			Images:    []string{"https://images.unsplash.com/photo-1500382017468-9049fee74a62?w=1200"},
			Featured:  false,
			CreatedAt: day("2026-02-16"),
			UpdatedAt: day("2026-02-18"),
		},
	}
}

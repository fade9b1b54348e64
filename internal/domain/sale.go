package domain

import "time"

// OtherBrandsLabel agrupa vendas de marcas que não constam na configuração
const OtherBrandsLabel = "Outros"

type Sale struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Units      float64   `json:"units"`
	BrandID    string    `json:"brand_id"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RegisterSaleRequest é o corpo recebido para registrar uma venda
type RegisterSaleRequest struct {
	Date       *time.Time `json:"date"`
	Amount     float64    `json:"amount"`
	Units      float64    `json:"units"`
	BrandID    string     `json:"brand_id"`
	CategoryID string     `json:"category_id"`
	UserID     int        `json:"-"`
}

// SalesFilters filtra as vendas usadas nos totais por marca
type SalesFilters struct {
	CategoryID string
	BrandID    string
}

// BrandTotal é o total vendido por marca, usado pelos gráficos
type BrandTotal struct {
	BrandName string  `json:"brand_name"`
	Amount    float64 `json:"amount"`
	Units     float64 `json:"units"`
}

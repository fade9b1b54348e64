package domain

import "time"

// Category agrupa marcas
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Brand é a entidade cujo desempenho mensal é acompanhado
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	Goal       float64   `json:"goal"` // meta mensal padrão
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DashboardConfig é a resposta de configuração do painel
type DashboardConfig struct {
	Entities   []Brand    `json:"entities"`
	Categories []Category `json:"categories"`
}

// BrandsByCategory filtra as marcas de uma categoria. Categoria vazia não retorna marcas.
func (c *DashboardConfig) BrandsByCategory(categoryID string) []Brand {
	brands := make([]Brand, 0)
	if categoryID == "" {
		return brands
	}

	for _, brand := range c.Entities {
		if brand.CategoryID == categoryID {
			brands = append(brands, brand)
		}
	}
	return brands
}

// BrandByID busca uma marca pelo ID
func (c *DashboardConfig) BrandByID(id string) (*Brand, bool) {
	for i := range c.Entities {
		if c.Entities[i].ID == id {
			return &c.Entities[i], true
		}
	}
	return nil, false
}

// BrandRankingItem é a posição de uma marca no ranking mensal por score
type BrandRankingItem struct {
	BrandID      string  `json:"brand_id"`
	BrandName    string  `json:"brand_name"`
	Period       string  `json:"period"` // mm-yyyy
	ActualAmount float64 `json:"actual_amount"`
	GoalAmount   float64 `json:"goal_amount"`
	ScorePct     float64 `json:"score_pct"`
	VariancePct  float64 `json:"variance_pct"`
	Position     int     `json:"position"`
}

// BrandRankingResponse é a resposta do ranking mensal
type BrandRankingResponse struct {
	Period  string             `json:"period"`
	Ranking []BrandRankingItem `json:"ranking"`
}

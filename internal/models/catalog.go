package models

// Catalog types are read-only reference data owned by the upstream API.
// JSON keys follow the upstream wire format.

type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"nome"`
	Description     string  `json:"descricao,omitempty"`
	Price           float64 `json:"preco"`
	DurationMinutes int     `json:"duracao_minutos"`
	Category        string  `json:"categoria,omitempty"`
	Active          bool    `json:"ativo"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	Price       float64 `json:"preco"`
	StockCount  int     `json:"estoque"`
	Active      bool    `json:"ativo"`
}

type Plan struct {
	ID            string  `json:"id"`
	Name          string  `json:"nome"`
	IncludedItems string  `json:"itens_inclusos"`
	TotalValue    float64 `json:"valor_total"`
	OriginalValue float64 `json:"valor_original"`
	Savings       float64 `json:"economia"`
	ValidityDays  int     `json:"validade_dias"`
	Active        bool    `json:"ativo"`
}

type Professional struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Specialty    string `json:"especialidade,omitempty"`
	PhotoURL     string `json:"foto_url,omitempty"`
	Active       bool   `json:"ativo"`
	DisplayOrder int    `json:"ordem_exibicao,omitempty"`
}

// Catalog is the joint initial load for the selection screen.
type Catalog struct {
	Services      []Service      `json:"servicos"`
	Products      []Product      `json:"produtos"`
	Plans         []Plan         `json:"planos"`
	Professionals []Professional `json:"barbeiros"`
}

package dto

// ── DTOs do módulo de busca ──

// SearchResponse resultado da busca combinada.
// Termo em branco produz as duas listas vazias sem consultar o banco.
type SearchResponse struct {
	Query   string                  `json:"query"`
	Rentals []RentalResponse        `json:"rentals"`
	Items   []InventoryItemResponse `json:"items"`
}

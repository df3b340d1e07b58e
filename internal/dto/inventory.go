package dto

// ── DTOs do módulo de inventário ──

// CreateInventoryItemRequest criação de item
type CreateInventoryItemRequest struct {
	Nome       string `form:"nome"       json:"nome"       binding:"required"`
	Tipo       string `form:"tipo"       json:"tipo"       binding:"required"`
	Quantidade int    `form:"quantidade" json:"quantidade"`
	Descricao  string `form:"descricao"  json:"descricao"`
}

// UpdateInventoryItemRequest atualização de item.
// Substituição completa: os quatro campos mutáveis são sempre regravados.
type UpdateInventoryItemRequest struct {
	Nome       string `form:"nome"       json:"nome"       binding:"required"`
	Tipo       string `form:"tipo"       json:"tipo"       binding:"required"`
	Quantidade int    `form:"quantidade" json:"quantidade"`
	Descricao  string `form:"descricao"  json:"descricao"`
}

// InventoryItemResponse item do inventário
type InventoryItemResponse struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Tipo       string `json:"tipo"`
	Quantidade int    `json:"quantidade"`
	Descricao  string `json:"descricao,omitempty"`
}

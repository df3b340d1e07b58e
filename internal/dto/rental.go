package dto

// ── DTOs do módulo de locações ──

// CreateRentalRequest criação de locação.
// Data e Hora chegam separadas do formulário no formato de exibição
// (DD/MM/AAAA e HH:MM) e são combinadas pelo Service.
type CreateRentalRequest struct {
	Professor   string `form:"professor"   json:"professor"   binding:"required"`
	Materia     string `form:"materia"     json:"materia"     binding:"required"`
	Sala        string `form:"sala"        json:"sala"        binding:"required"`
	Turma       string `form:"turma"       json:"turma"       binding:"required"`
	Data        string `form:"data"        json:"data"        binding:"required"`
	Hora        string `form:"hora"        json:"hora"        binding:"required"`
	TempoUso    string `form:"tempo_uso"   json:"tempo_uso"   binding:"required"`
	Equipamento string `form:"equipamento" json:"equipamento" binding:"required"`
}

// RentalResponse locação com data/hora já no formato de exibição
type RentalResponse struct {
	ID          uint   `json:"id"`
	Professor   string `json:"professor"`
	Materia     string `json:"materia"`
	Sala        string `json:"sala"`
	Turma       string `json:"turma"`
	DataHora    string `json:"data_hora"`
	TempoUso    string `json:"tempo_uso"`
	Equipamento string `json:"equipamento"`
	Status      string `json:"status"`
}

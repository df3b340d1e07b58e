package model

// Status possíveis de uma locação. A transição é unidirecional:
// Em Uso → Devolvido, sem reabertura.
const (
	StatusEmUso     = "Em Uso"
	StatusDevolvido = "Devolvido"
)

// Rental locação de equipamento para uma aula — tabela rentals.
// Professor e equipamento são texto livre, sem chave estrangeira.
type Rental struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"              json:"id"`
	Professor string `gorm:"not null"                              json:"professor"`
	Materia   string `gorm:"not null"                              json:"materia"`
	Sala      string `gorm:"not null"                              json:"sala"`
	Turma     string `gorm:"not null"                              json:"turma"`
	// DataHora início do empréstimo no formato ordenável "2006-01-02 15:04:05"
	DataHora    string `gorm:"column:data_hora;not null"           json:"data_hora"`
	TempoUso    string `gorm:"column:tempo_uso;not null"           json:"tempo_uso"`
	Equipamento string `gorm:"not null"                            json:"equipamento"`
	Status      string `gorm:"not null;default:'Em Uso'"           json:"status"`
}

// TableName nome da tabela
func (Rental) TableName() string { return "rentals" }

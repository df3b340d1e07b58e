package model

// InventoryItem item do almoxarifado — tabela inventory.
// Quantidade é permissiva: nenhum limite de não-negatividade é imposto.
type InventoryItem struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome       string `gorm:"not null"                 json:"nome"`
	Tipo       string `gorm:"not null"                 json:"tipo"`
	Quantidade int    `gorm:"not null"                 json:"quantidade"`
	Descricao  string `gorm:""                         json:"descricao"`
}

// TableName nome da tabela
func (InventoryItem) TableName() string { return "inventory" }

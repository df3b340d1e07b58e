package model

// Teacher professor do quadro — tabela teachers.
// Registro somente de escrita: o sistema não edita nem remove professores.
type Teacher struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"          json:"id"`
	FirstName       string `gorm:"column:first_name;not null"        json:"first_name"`
	LastName        string `gorm:"column:last_name;not null"         json:"last_name"`
	Subject         string `gorm:"not null"                          json:"subject"`
	ExperienceYears int    `gorm:"column:experience_years;not null"  json:"experience_years"`
	Schedule        string `gorm:""                                  json:"schedule"`
}

// TableName nome da tabela
func (Teacher) TableName() string { return "teachers" }

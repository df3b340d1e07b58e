package dto

// ── DTOs do módulo de professores ──

// CreateTeacherRequest cadastro de professor
type CreateTeacherRequest struct {
	FirstName       string `form:"first_name"       json:"first_name"       binding:"required"`
	LastName        string `form:"last_name"        json:"last_name"        binding:"required"`
	Subject         string `form:"subject"          json:"subject"          binding:"required"`
	ExperienceYears int    `form:"experience_years" json:"experience_years"`
	Schedule        string `form:"schedule"         json:"schedule"`
}

// TeacherResponse professor cadastrado
type TeacherResponse struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Subject         string `json:"subject"`
	ExperienceYears int    `json:"experience_years"`
	Schedule        string `json:"schedule,omitempty"`
}

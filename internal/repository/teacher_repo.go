package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sandrogaltran08/cief/internal/model"
)

// TeacherRepository acesso a dados de professores.
// O quadro é somente de escrita: não há atualização nem remoção.
type TeacherRepository interface {
	List(ctx context.Context) ([]model.Teacher, error)
	Create(ctx context.Context, teacher *model.Teacher) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo cria uma instância de TeacherRepository
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

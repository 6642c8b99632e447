package db

import (
	"github.com/dfarina/communio/internal/models"
	"gorm.io/gorm"
)

type ClassificationRepository struct {
	database *gorm.DB
}

func NewClassificationRepository(database *gorm.DB) *ClassificationRepository {
	return &ClassificationRepository{database: database}
}

func (repo *ClassificationRepository) ListEtapas() ([]models.Etapa, error) {
	etapas := make([]models.Etapa, 0)
	if err := repo.database.Order("id").Find(&etapas).Error; err != nil {
		return nil, err
	}
	return etapas, nil
}

func (repo *ClassificationRepository) ListCarismas() ([]models.Carisma, error) {
	carismas := make([]models.Carisma, 0)
	if err := repo.database.Order("id").Find(&carismas).Error; err != nil {
		return nil, err
	}
	return carismas, nil
}

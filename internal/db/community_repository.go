package db

import (
	"github.com/dfarina/communio/internal/models"
	"gorm.io/gorm"
)

type CommunityRepository struct {
	database *gorm.DB
}

func NewCommunityRepository(database *gorm.DB) *CommunityRepository {
	return &CommunityRepository{database: database}
}

func (repo *CommunityRepository) Create(community *models.Comunidade) error {
	return repo.database.Create(community).Error
}

// List returns every community, newest first, with the etapa name joined in
// for display.
func (repo *CommunityRepository) List() ([]models.Comunidade, error) {
	communities := make([]models.Comunidade, 0)
	err := repo.database.Model(&models.Comunidade{}).
		Select("comunidades.*, etapas.nome AS etapa_nome").
		Joins("LEFT JOIN etapas ON etapas.id = comunidades.etapa_id").
		Order("comunidades.id DESC").
		Find(&communities).Error
	if err != nil {
		return nil, err
	}
	return communities, nil
}

func (repo *CommunityRepository) FindByID(communityID uint) (models.Comunidade, error) {
	var community models.Comunidade
	err := repo.database.Model(&models.Comunidade{}).
		Select("comunidades.*, etapas.nome AS etapa_nome").
		Joins("LEFT JOIN etapas ON etapas.id = comunidades.etapa_id").
		Where("comunidades.id = ?", communityID).
		First(&community).Error
	if err != nil {
		return models.Comunidade{}, err
	}
	return community, nil
}

// Replace overwrites every mutable field of the row. Callers must supply the
// complete record: omitted fields arrive zeroed and are stored zeroed.
func (repo *CommunityRepository) Replace(communityID uint, community *models.Comunidade) error {
	result := repo.database.Model(&models.Comunidade{}).Where("id = ?", communityID).Updates(map[string]any{
		"diocese":       community.Diocese,
		"bispo":         community.Bispo,
		"cidade":        community.Cidade,
		"paroquia":      community.Paroquia,
		"paroco":        community.Paroco,
		"vigario":       community.Vigario,
		"qtd_membros":   community.QtdMembros,
		"qtd_jovens":    community.QtdJovens,
		"etapa_id":      community.EtapaID,
		"data_fundacao": community.DataFundacao,
		"data_etapa":    community.DataEtapa,
		"levantados":    community.Levantados,
		"carismas":      community.Carismas,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is a no-op for ids that do not exist.
func (repo *CommunityRepository) Delete(communityID uint) error {
	return repo.database.Delete(&models.Comunidade{}, communityID).Error
}

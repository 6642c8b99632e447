package db

import "gorm.io/gorm"

type DioceseTotal struct {
	Diocese string `json:"diocese"`
	Total   int    `json:"total"`
}

type EtapaTotal struct {
	Etapa string `json:"etapa"`
	Total int    `json:"total"`
}

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) CountByDiocese() ([]DioceseTotal, error) {
	totals := make([]DioceseTotal, 0)
	err := repo.database.Raw(`
SELECT diocese, COUNT(*) AS total
FROM comunidades
GROUP BY diocese
ORDER BY total DESC, diocese`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (repo *ReportRepository) CountByEtapa() ([]EtapaTotal, error) {
	totals := make([]EtapaTotal, 0)
	err := repo.database.Raw(`
SELECT etapas.nome AS etapa, COUNT(comunidades.id) AS total
FROM comunidades
LEFT JOIN etapas ON etapas.id = comunidades.etapa_id
GROUP BY etapas.nome
ORDER BY total DESC, etapa`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

package services

import "github.com/dfarina/communio/internal/models"

type ReportCommunityRepository interface {
	List() ([]models.Comunidade, error)
}

type ReportCarismaRepository interface {
	ListCarismas() ([]models.Carisma, error)
}

type CarismaTotal struct {
	CarismaID uint   `json:"carisma_id"`
	Carisma   string `json:"carisma"`
	Total     int    `json:"total"`
}

type VocationEntry struct {
	ComunidadeID uint             `json:"comunidade_id"`
	Paroquia     string           `json:"paroquia"`
	Cidade       string           `json:"cidade"`
	Levantado    models.Levantado `json:"levantado"`
}

type ReportService struct {
	communities ReportCommunityRepository
	carismas    ReportCarismaRepository
}

func NewReportService(communities ReportCommunityRepository, carismas ReportCarismaRepository) *ReportService {
	return &ReportService{communities: communities, carismas: carismas}
}

// CarismaTotals tallies how often each carisma id appears across the embedded
// association lists of every community. Every carisma row is reported, zeros
// included. This is a full scan over decoded lists, which is fine at the data
// scale the system serves.
func (service *ReportService) CarismaTotals() ([]CarismaTotal, error) {
	carismas, err := service.carismas.ListCarismas()
	if err != nil {
		return nil, err
	}
	communities, err := service.communities.List()
	if err != nil {
		return nil, err
	}

	countsByID := make(map[uint]int, len(carismas))
	for _, community := range communities {
		for _, ref := range community.Carismas {
			countsByID[ref.CarismaID]++
		}
	}

	totals := make([]CarismaTotal, 0, len(carismas))
	for _, carisma := range carismas {
		totals = append(totals, CarismaTotal{
			CarismaID: carisma.ID,
			Carisma:   carisma.Nome,
			Total:     countsByID[carisma.ID],
		})
	}
	return totals, nil
}

// VocationEntries flattens every community's candidate list into one slice,
// each entry annotated with the community it came from.
func (service *ReportService) VocationEntries() ([]VocationEntry, error) {
	communities, err := service.communities.List()
	if err != nil {
		return nil, err
	}

	entries := make([]VocationEntry, 0)
	for _, community := range communities {
		for _, levantado := range community.Levantados {
			entries = append(entries, VocationEntry{
				ComunidadeID: community.ID,
				Paroquia:     community.Paroquia,
				Cidade:       community.Cidade,
				Levantado:    levantado,
			})
		}
	}
	return entries, nil
}

package api

import (
	"errors"
	"strings"

	"github.com/dfarina/communio/internal/db"
	"github.com/dfarina/communio/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	authService     *services.AuthService
	reportService   *services.ReportService
	users           *db.UserRepository
	communities     *db.CommunityRepository
	classifications *db.ClassificationRepository
	reports         *db.ReportRepository
}

// NewHandler wires repositories and services around the database handle. The
// signing secret is mandatory: starting without one would silently issue
// tokens anyone can forge.
func NewHandler(database *gorm.DB, secretKey string) (*Handler, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, errors.New("signing secret is required")
	}

	users := db.NewUserRepository(database)
	communities := db.NewCommunityRepository(database)
	classifications := db.NewClassificationRepository(database)
	reports := db.NewReportRepository(database)

	return &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		authService:     services.NewAuthService(users),
		reportService:   services.NewReportService(communities, classifications),
		users:           users,
		communities:     communities,
		classifications: classifications,
		reports:         reports,
	}, nil
}

package usecase

import (
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/match"
)

// MatchUC implements the match usecase
type MatchUC struct {
	cfg  *models.Config
	repo match.MatchRepo
}

// NewMatchUC creates a new match usecase
func NewMatchUC(cfg *models.Config, repo match.MatchRepo) *MatchUC {
	return &MatchUC{
		cfg:  cfg,
		repo: repo,
	}
}

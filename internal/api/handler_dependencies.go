package api

import (
	"github.com/lifeboard/lifeboard/internal/config"
	"github.com/lifeboard/lifeboard/internal/db"
	"github.com/lifeboard/lifeboard/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, cfg config.Config) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		cfg:          cfg,
		db:           database,
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
	}
}

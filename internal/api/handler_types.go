package api

import (
	"github.com/lifeboard/lifeboard/internal/config"
	"github.com/lifeboard/lifeboard/internal/db"
	"github.com/lifeboard/lifeboard/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	cfg          config.Config
	db           *gorm.DB
	repositories *db.Repositories
	authService  *services.AuthService
}

const contextUserKey = "current_user"

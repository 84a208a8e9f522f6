package handlers

import (
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/state"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService         *service.UserService
	searchService       *service.SearchService
	availabilityService *service.AvailabilityService
	profileService      *service.ProfileService
	stateManager        *state.Manager
	logger              *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	searchService *service.SearchService,
	availabilityService *service.AvailabilityService,
	profileService *service.ProfileService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:         userService,
		searchService:       searchService,
		availabilityService: availabilityService,
		profileService:      profileService,
		stateManager:        stateManager,
		logger:              logger,
	}
}

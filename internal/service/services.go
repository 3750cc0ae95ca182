package service

import (
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	PropertyService PropertyService
	SectionService  SectionService
	GuideService    GuideService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewGuideValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.Auth, logger),
		PropertyService: NewPropertyService(storages.PropertyRepository, validator, logger),
		SectionService:  NewSectionService(storages.SectionRepository, storages.PropertyRepository, validator, logger),
		GuideService:    NewGuideService(storages.PropertyRepository, storages.SectionRepository, logger),
	}
}

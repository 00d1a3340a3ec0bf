package container

import (
	"go.uber.org/zap"

	app "sensor-inspector/internal/application"
	"sensor-inspector/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, registry port.DetectorRegistry, renderer port.OverlayRenderer, logger *zap.Logger) *Container {
	userService := app.NewUserService(userRepo)
	inspectionService := app.NewInspectionService(userService, registry, renderer, logger)

	return &Container{
		UserService:       userService,
		InspectionService: inspectionService,
	}
}

package containers

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface for containers.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new container feature.
func NewFeature(service *Service) *Feature {
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "containers"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

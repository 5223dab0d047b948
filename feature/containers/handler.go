package containers

import (
	"errors"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for containers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the container routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/containers")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:name", h.HandleShow)
	group.Post("/:name/deposit", h.HandleDeposit)
}

// HandleList returns every container.
// @Summary List Containers
// @Description List all containers with their contents.
// @Tags containers
// @Produce json
// @Success 200 {array} models.Container "Containers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /containers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list containers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(list)
}

// HandleShow returns a single container.
// @Summary Show Container
// @Description Get a container and its contents by name.
// @Tags containers
// @Produce json
// @Param name path string true "Container name"
// @Success 200 {object} models.Container "Container"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /containers/{name} [get]
func (h *Handler) HandleShow(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	container, err := h.service.Show(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(container)
}

// HandleCreate creates a container.
// @Summary Create Container
// @Description Create an empty container. Omitted fields use the configured inventory defaults; zero slots creates a slotless container.
// @Tags containers
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Container"
// @Success 201 {object} models.Container "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /containers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	container, err := h.service.Create(c.Context(), req)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(container)
}

// HandleDeposit inserts a stack into a container.
// @Summary Deposit Stack
// @Description Insert an item stack into a container. The container accepts at most its rate limit and free capacity.
// @Tags containers
// @Accept json
// @Produce json
// @Param name path string true "Container name"
// @Param request body itemstack.Stack true "Stack"
// @Success 200 {object} DepositResult "Deposit result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /containers/{name}/deposit [post]
func (h *Handler) HandleDeposit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var stack itemstack.Stack
	if err := c.BodyParser(&stack); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.service.Deposit(c.Context(), c.Params("name"), stack)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalid):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrExists):
		status = fiber.StatusConflict
	default:
		l.Error("Container request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

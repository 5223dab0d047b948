package transfer

import (
	"errors"

	"ingredient-manager/core/logger"
	"ingredient-manager/core/middleware/rayid"
	engine "ingredient-manager/core/transfer"
	"ingredient-manager/feature/containers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultHistoryLimit is the journal page size when no limit is given.
const DefaultHistoryLimit = 50

// Handler handles HTTP requests for transfers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the transfer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/transfers")
	group.Post("/", h.HandleTransfer)
	group.Get("/journal", h.HandleJournal)
}

// HandleTransfer moves ingredients between two containers.
// @Summary Run Transfer
// @Description Move item stacks between two containers. With simulate=true nothing is persisted and the response reports what would move.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body Request true "Transfer request"
// @Success 200 {object} Result "Transfer result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Container Not Found"
// @Failure 409 {object} map[string]string "Storage Protocol Violation"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transfers [post]
func (h *Handler) HandleTransfer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	req.RayID = rayid.Get(c)

	result, err := h.service.Execute(c.Context(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			status = fiber.StatusBadRequest
		case errors.Is(err, containers.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, engine.ErrProtocolViolation):
			status = fiber.StatusConflict
		default:
			l.Error("Transfer failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleJournal lists recent committed transfers.
// @Summary Transfer Journal
// @Description List the most recent committed transfers, newest first.
// @Tags transfers
// @Produce json
// @Param limit query int false "Maximum number of records (default 50)"
// @Success 200 {array} journal.Record "Journal records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transfers/journal [get]
func (h *Handler) HandleJournal(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", DefaultHistoryLimit)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be positive",
		})
	}

	records, err := h.service.History(c.Context(), limit)
	if err != nil {
		l.Error("Failed to read journal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(records)
}

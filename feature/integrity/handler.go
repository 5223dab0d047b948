package integrity

import (
	"ingredient-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the integrity endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/server", h.HandleServerCheck)
	group.Get("/contents", h.HandleContentsCheck)
}

// section renders one check of the combined report.
func section(report any, err error) any {
	if err != nil {
		return fiber.Map{"status": "error", "error": err.Error()}
	}
	return report
}

// HandleIntegrityCheck runs every check and reports them side by side. A
// failing check does not fail the request.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Server, Contents).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Running all integrity checks")
	ctx := c.Context()

	var structure any
	if missing, err := h.service.CheckStructure(ctx); err != nil {
		structure = section(nil, err)
	} else {
		structure = fiber.Map{"status": "ok", "missing": missing}
	}
	server, serverErr := h.service.CheckServer()
	contents, contentsErr := h.service.CheckContents(ctx)

	return c.JSON(fiber.Map{
		"structure": structure,
		"server":    section(server, serverErr),
		"contents":  section(contents, contentsErr),
	})
}

// HandleStructureCheck checks and optionally fixes the journal bucket layout.
// @Summary Check Structure
// @Description Checks that the journal bucket and its folders exist. Optionally creates what is missing.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} checks.StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Structure(c.Context(), c.QueryBool("fix"))
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["missing"] = report.Missing
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	if report.Status == "fixed" {
		l.Info("Created missing folders", zap.Strings("fixed", report.Fixed))
	} else if len(report.Missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleServerCheck checks database schema integrity.
// @Summary Check Server Schema
// @Description Checks if the database schema matches the container models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckServer()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleContentsCheck audits persisted container contents.
// @Summary Check Container Contents
// @Description Verifies that every container's persisted contents respect its capacity and slot layout.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ContentsReport "Contents Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/contents [get]
func (h *Handler) HandleContentsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckContents(c.Context())
	if err != nil {
		l.Error("Contents check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Container contents break their limits", zap.Int("containers", len(report.Problems)))
	}
	return c.JSON(report)
}

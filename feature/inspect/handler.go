package inspect

import (
	"errors"
	"fmt"
	"strings"

	"scene-inspector/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bundle inspection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inspect routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inspect")
	group.Get("/", h.HandleInspect)
	group.Post("/", h.HandleInspectUpload)
	group.Get("/bundles", h.HandleBundles)
	group.Get("/history", h.HandleHistory)
}

// HandleInspect inspects a stored bundle.
// @Summary Inspect Stored Bundle
// @Description Fetches a bundle from object storage and returns its structural report.
// @Tags inspect
// @Produce json
// @Param object query string true "Object key of the bundle"
// @Param sections query string false "Comma-separated sections (scenes,objects,animations,skins,lights,materials,meshes,textures,images); empty selects all"
// @Param bounds query bool false "Compute per-attribute bounds"
// @Success 200 {object} inspect.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Storage or parse failure"
// @Router /inspect [get]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	object := c.Query("object")
	if object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object parameter"})
	}
	opts, err := parseSections(c.Query("sections"), c.QueryBool("bounds"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Inspecting bundle", zap.String("object", object))

	report, err := h.service.Inspect(c.Context(), object, opts)
	if err != nil {
		l.Error("Inspection failed", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleInspectUpload inspects a bundle sent in the request body.
// @Summary Inspect Uploaded Bundle
// @Description Parses the request body as a glTF or GLB bundle and returns its structural report.
// @Tags inspect
// @Accept octet-stream
// @Produce json
// @Param sections query string false "Comma-separated sections; empty selects all"
// @Param bounds query bool false "Compute per-attribute bounds"
// @Success 200 {object} inspect.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unreadable bundle"
// @Router /inspect [post]
func (h *Handler) HandleInspectUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payload := c.Body()
	if len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty request body"})
	}
	opts, err := parseSections(c.Query("sections"), c.QueryBool("bounds"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Inspecting uploaded bundle", zap.Int("bytes", len(payload)))

	report, err := h.service.InspectPayload(c.Context(), payload, opts)
	if err != nil {
		l.Warn("Uploaded bundle rejected", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleBundles lists inspectable bundles.
// @Summary List Bundles
// @Description Lists the glTF/GLB objects in the configured bucket.
// @Tags inspect
// @Produce json
// @Success 200 {object} map[string]interface{} "Bundle list"
// @Failure 502 {object} map[string]string "Storage failure"
// @Router /inspect/bundles [get]
func (h *Handler) HandleBundles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	bundles, err := h.service.Bundles(c.Context())
	if err != nil {
		l.Error("Bundle listing failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"bundles": bundles, "count": len(bundles)})
}

// HandleHistory lists archived report runs.
// @Summary Report Run History
// @Description Lists recent archived report runs, newest first. Requires a configured database.
// @Tags inspect
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50, capped at 500)"
// @Success 200 {object} map[string]interface{} "Run list"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /inspect/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	runs, err := h.service.History(c.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrNoDatabase) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"runs": runs, "count": len(runs)})
}

// parseSections builds report options from the sections query value.
// An empty value selects every section.
func parseSections(sections string, bounds bool) (Options, error) {
	opts := Options{Bounds: bounds}
	if strings.TrimSpace(sections) == "" {
		opts.Info = true
		return opts, nil
	}

	for _, name := range strings.Split(sections, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "":
		case "info":
			opts.Info = true
		case "scenes":
			opts.Scenes = true
		case "objects":
			opts.Objects = true
		case "animations":
			opts.Animations = true
		case "skins":
			opts.Skins = true
		case "lights":
			opts.Lights = true
		case "materials":
			opts.Materials = true
		case "meshes":
			opts.Meshes = true
		case "textures":
			opts.Textures = true
		case "images":
			opts.Images = true
		default:
			return Options{}, fmt.Errorf("unknown section %q", strings.TrimSpace(name))
		}
	}
	return opts, nil
}

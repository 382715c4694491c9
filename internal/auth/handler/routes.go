package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/patrykJ113/edicom-api/internal/auth/dto"
	"github.com/patrykJ113/edicom-api/internal/i18n"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppOptions struct {
	CORSAllowOrigins string
	// Gatherer backs GET /metrics. The route is not mounted when nil.
	Gatherer prometheus.Gatherer
	// AccessLog receives one line per request. Disabled when nil.
	AccessLog io.Writer
}

// NewApp builds the fiber application with the middleware chain and every
// route mounted.
func NewApp(h *AuthHandler, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "edicom-api",
		ErrorHandler: h.errorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: opts.AccessLog}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSAllowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    fiber.HeaderAuthorization,
	}))
	app.Use(h.bundle.Middleware())

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	RegisterRoutes(app, h)

	return app
}

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/", h.Hello)

	auth := app.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/register", h.Register)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/verify", h.RequireSession, h.Verify)

	app.Use(h.NotFound)
}

// errorHandler renders errors that escape a handler, including recovered panics.
func (h *AuthHandler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	if status == fiber.StatusNotFound {
		return h.NotFound(c)
	}
	if status >= fiber.StatusInternalServerError {
		h.logger.Error(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: h.bundle.T(c, i18n.ServerError)})
}

package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/patrykJ113/edicom-api/internal/auth/dto"
	"github.com/patrykJ113/edicom-api/internal/auth/service"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
	"github.com/patrykJ113/edicom-api/internal/i18n"
	"github.com/patrykJ113/edicom-api/internal/logging"
	"github.com/patrykJ113/edicom-api/internal/metrics"
)

const (
	RefreshTokenCookie = "refreshToken"
	bearerPrefix       = "Bearer "

	flowRegister = "register"
	flowLogin    = "login"
	flowRefresh  = "refresh"
	flowVerify   = "verify"
)

type AuthHandler struct {
	userService *service.UserService
	bundle      *i18n.Bundle
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// NewAuthHandler wires the HTTP layer. logger and m may be nil.
func NewAuthHandler(userService *service.UserService, bundle *i18n.Bundle, logger logging.Logger, m *metrics.Metrics) *AuthHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &AuthHandler{
		userService: userService,
		bundle:      bundle,
		logger:      logger,
		metrics:     m,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, flowRegister, autherror.ErrInvalidInputs)
	}

	pair, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return h.fail(c, flowRegister, err)
	}

	h.setTokens(c, pair)
	return h.succeed(c, flowRegister, fiber.StatusCreated, i18n.RegisteredSuccessfully)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, flowLogin, autherror.ErrInvalidInputs)
	}

	pair, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return h.fail(c, flowLogin, err)
	}

	h.setTokens(c, pair)
	return h.succeed(c, flowLogin, fiber.StatusOK, i18n.LoginSuccessful)
}

// Refresh rotates the pair identified by the refreshToken cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	input := dto.RefreshInput{RefreshToken: utils.CopyString(c.Cookies(RefreshTokenCookie))}

	pair, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return h.fail(c, flowRefresh, err)
	}

	h.setTokens(c, pair)
	h.metrics.Observe(flowRefresh, fiber.StatusOK)
	return c.Status(fiber.StatusOK).Send(nil)
}

// RequireSession lets the request through when the bearer access token is
// valid, or when the refreshToken cookie can be rotated. In the second case
// the new pair is written to the response before the next handler runs.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	input := dto.VerifyInput{
		AccessToken:  bearerToken(c.Get(fiber.HeaderAuthorization)),
		RefreshToken: utils.CopyString(c.Cookies(RefreshTokenCookie)),
	}

	pair, err := h.userService.Verify(c.UserContext(), input)
	if err != nil {
		return h.fail(c, flowVerify, err)
	}
	if pair != nil {
		h.setTokens(c, pair)
	}

	return c.Next()
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return h.succeed(c, flowVerify, fiber.StatusOK, i18n.Authorized)
}

func (h *AuthHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: h.bundle.T(c, i18n.Hello)})
}

func (h *AuthHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: h.bundle.T(c, i18n.NotFound)})
}

// setTokens publishes the pair: the access token in the Authorization header
// and the refresh token in an HTTP-only cookie.
func (h *AuthHandler) setTokens(c *fiber.Ctx, pair *dto.TokenPair) {
	c.Set(fiber.HeaderAuthorization, bearerPrefix+pair.AccessToken)
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.userService.RefreshTokenExpiry().Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) succeed(c *fiber.Ctx, flow string, status int, key string) error {
	h.metrics.Observe(flow, status)
	return c.Status(status).JSON(dto.MessageResponse{Message: h.bundle.T(c, key)})
}

func (h *AuthHandler) fail(c *fiber.Ctx, flow string, err error) error {
	status, key := statusFor(flow, err)
	if status >= fiber.StatusInternalServerError {
		h.logger.Error(c.UserContext(), flow+" failed", "flow", flow, "error", err)
	}

	h.metrics.Observe(flow, status)
	return c.Status(status).JSON(dto.ErrorResponse{Error: h.bundle.T(c, key)})
}

// statusFor maps a service error to the response status and message key of
// the given flow.
func statusFor(flow string, err error) (int, string) {
	kind := autherror.Classify(err)

	switch flow {
	case flowRegister:
		switch kind {
		case autherror.KindValidation:
			return fiber.StatusBadRequest, i18n.InputsInvalid
		case autherror.KindConflict:
			return fiber.StatusConflict, i18n.EmailIsTaken
		}
		return fiber.StatusInternalServerError, i18n.RegisterError
	case flowLogin:
		switch kind {
		case autherror.KindValidation:
			return fiber.StatusBadRequest, i18n.InputsInvalid
		case autherror.KindCredentials:
			return fiber.StatusUnauthorized, i18n.InvalidCredentials
		case autherror.KindNotFound:
			return fiber.StatusNotFound, i18n.AccountNotFound
		}
		return fiber.StatusInternalServerError, i18n.LoginError
	case flowRefresh:
		switch kind {
		case autherror.KindToken:
			return fiber.StatusUnauthorized, i18n.TokenInvalid
		case autherror.KindMismatch, autherror.KindNotFound:
			return fiber.StatusUnauthorized, i18n.TokenMismatch
		}
		return fiber.StatusInternalServerError, i18n.RefreshError
	case flowVerify:
		switch kind {
		case autherror.KindToken, autherror.KindMismatch, autherror.KindNotFound:
			return fiber.StatusUnauthorized, i18n.Unauthorized
		}
		return fiber.StatusInternalServerError, i18n.ServerError
	}

	return fiber.StatusInternalServerError, i18n.ServerError
}

func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

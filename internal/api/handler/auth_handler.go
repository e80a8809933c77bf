package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fcg-platform/users-svc/internal/api/metrics"
	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/validation"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterUserDTO  true  "Registration payload"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/authentication/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterUserDTO
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			metrics.RegistrationsTotal.WithLabelValues("invalid_payload").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Errors: verr.Result.Errors})
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationsTotal.WithLabelValues("email_taken").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrEmailTaken.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, registerResponse{ID: id.Hex()})
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginUserDTO  true  "Login credentials"
// @Success      200   {object}  dto.AuthenticationToken
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/authentication/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginUserDTO
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			metrics.LoginsTotal.WithLabelValues("invalid_payload").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Errors: verr.Result.Errors})
		case errors.Is(err, domain.ErrInvalidLogin):
			// Unknown email: plain bad request, no account enumeration.
			metrics.LoginsTotal.WithLabelValues("invalid_login").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidLogin.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, token)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/validation"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user as a shallow projection.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserProjection
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by its identifier.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id (24 hex chars)"
// @Success      200  {object}  dto.UserProjection
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// Create registers a regular user on behalf of an administrator.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserDTO  true  "User payload"
// @Success      201   {object}  dto.UserProjection
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserDTO
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Create(c.Request().Context(), req)
	if err != nil {
		return h.mapCreateError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// CreateAdmin registers a user with the admin role.
//
// @Summary      Create an admin user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserAdminDTO  true  "Admin payload"
// @Success      201   {object}  dto.UserProjection
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users/admin [post]
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req dto.CreateUserAdminDTO
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		return h.mapCreateError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update applies a partial update to an existing user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Param        id    path  string             true  "User id (24 hex chars)"
// @Param        body  body  updateUserRequest  true  "Fields to change; empty fields are left untouched"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	existing, err := h.userService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}

	if err := h.userService.Update(ctx, id, req.toDTO()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user. Deleting an absent user returns 404.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id (24 hex chars)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	ctx := c.Request().Context()
	existing, err := h.userService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Find returns the users matching the combined filter fields.
//
// @Summary      Filter users
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      filterUsersRequest  true  "Filter; set fields are combined"
// @Success      200   {array}   dto.UserProjection
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users/find [post]
func (h *UserHandler) Find(c echo.Context) error {
	var req filterUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter, err := req.toDTO()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	users, err := h.userService.Find(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetAdmin returns the first user holding the admin role.
//
// @Summary      Get the admin user
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserProjection
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/users/admin [get]
func (h *UserHandler) GetAdmin(c echo.Context) error {
	admin, err := h.userService.GetAdmin(c.Request().Context())
	if err != nil {
		return err
	}
	if admin == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "admin not found"})
	}
	return c.JSON(http.StatusOK, dto.UserProjection{ID: admin.ID, Name: admin.Name, Email: admin.Email})
}

func (h *UserHandler) mapCreateError(c echo.Context, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Errors: verr.Result.Errors})
	}
	return err
}

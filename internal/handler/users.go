package handler

import (
	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserHandler serves person profile reads and edits. The identity being
// read or edited always comes from the request body.
type UserHandler struct {
	Handler
	users *repository.UserRepository
}

func NewUserHandler(h Handler, users *repository.UserRepository) *UserHandler {
	return &UserHandler{Handler: h, users: users}
}

// GetUserRequest is the POST /user/GetUser payload.
type GetUserRequest struct {
	Username string `json:"username" validate:"required"`
}

func (r *GetUserRequest) Validate() error { return validation.Struct(r) }

// GetUser returns the person's profile fields. The password column is
// projected away by the routine and never reaches the wire.
func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (database.Rows, error) {
	return h.users.GetByName(c.Request().Context(), req.Username)
}

// EditUserRequest is the POST /user/EditUser payload. Field names follow
// the wire format consumed by existing clients (lowercase, no separator).
type EditUserRequest struct {
	Username   string `json:"username" validate:"required"`
	FirstName  string `json:"firstname" validate:"required"`
	LastName   string `json:"lastname" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Occupation string `json:"occupation"`
}

func (r *EditUserRequest) Validate() error { return validation.Struct(r) }

// EditUser overwrites the person's profile fields (full replace). The
// password and role are not editable here.
func (h *UserHandler) EditUser(c echo.Context, req *EditUserRequest) (database.Rows, error) {
	return h.users.EditByName(c.Request().Context(),
		req.Username, req.FirstName, req.LastName, req.Email, req.Occupation)
}

package handler

import (
	"errors"

	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/errs"
	"github.com/opendirectory/providerdir/internal/service"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves credential verification and account creation.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(h Handler, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: h, auth: auth}
}

// LoginRequest is the POST /users/login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validation.Struct(r) }

// Login verifies a username/password pair. A mismatch and an unknown
// username are indistinguishable to the client: both come back as the same
// 401.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*service.LoginResult, error) {
	result, err := h.auth.Verify(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpErr := errs.NewUnauthorizedError("Invalid username or password", true)
			httpErr.Code = "INVALID_CREDENTIALS"
			return nil, httpErr
		}
		return nil, err
	}

	return result, nil
}

// AddUserRequest is the POST /users/AddUser payload. Validation checks
// presence only; value constraints belong to the database, and payloads
// existing clients send must keep reaching the routine untouched.
type AddUserRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Occupation string `json:"occupation"`
	RoleType   string `json:"roleType" validate:"required"`
}

func (r *AddUserRequest) Validate() error { return validation.Struct(r) }

// AddUser creates an account. The password is hashed in the service layer;
// a duplicate username surfaces through the database error mapping as a 400.
func (h *AuthHandler) AddUser(c echo.Context, req *AddUserRequest) (database.Rows, error) {
	return h.auth.CreateUser(c.Request().Context(), service.CreateUserParams{
		Username:   req.Username,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Occupation: req.Occupation,
		RoleType:   req.RoleType,
	})
}

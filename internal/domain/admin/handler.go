package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorportal/internal/logger"
	"mentorportal/internal/pkg/response"
	"mentorportal/internal/pkg/validator"
)

const (
	msgMissingFields      = "Username and password are required"
	msgAdminExists        = "Admin already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgAdminCreated       = "Admin created successfully"
	msgServerError        = "Server error"
)

type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, logger *logger.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type CreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Create godoc
// @Summary Create admin
// @Description Register a new admin account with a hashed password
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	_, err := h.service.CreateAdmin(c.Request.Context(), CreateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": msgAdminCreated})
}

// Login godoc
// @Summary Admin login
// @Description Verify admin credentials and return the public profile
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	profile, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"admin": profile})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		response.Error(c, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, ErrAdminExists):
		response.Error(c, http.StatusBadRequest, msgAdminExists)
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		_ = c.Error(err)
		h.logger.Error("admin request failed",
			"path", c.Request.URL.Path,
			"error", err.Error())

		msg := err.Error()
		if msg == "" {
			msg = msgServerError
		}
		response.Error(c, http.StatusInternalServerError, msg)
	}
}

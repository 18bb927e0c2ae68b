package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// @Summary      Register
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input body entity.RegisterInput true "Email, name and password"
// @Success      201 {object} entity.UserResp
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input entity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, "AuthHandler.Register", err)
		return
	}
	c.JSON(http.StatusCreated, user.Resp())
}

// @Summary      Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input body entity.LoginInput true "Credentials"
// @Success      200 {object} entity.LoginResponse
// @Failure      401 {object} map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input entity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, "AuthHandler.Login", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var input entity.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		respondError(c, "AuthHandler.Refresh", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authService.Profile(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, "AuthHandler.Profile", err)
		return
	}
	c.JSON(http.StatusOK, user.Resp())
}

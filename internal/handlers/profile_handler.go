package handlers

import (
	"net/http"

	"sponsorly_backend/internal/services"
	"sponsorly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes ожидает группу, уже защищенную AuthMiddleware
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/profile", h.GetMyProfile)
	rg.POST("/auth/profile", h.GetProfile)
	rg.PUT("/auth/profile", h.UpdateProfile)
}

// GetMyProfile godoc
// @Summary Профиль текущего пользователя
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetProfile godoc
// @Summary Профиль пользователя по email
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GetProfileRequest true "Email пользователя"
// @Success 200 {object} models.User
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/auth/profile [post]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var req dto.GetProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Обновить свой профиль
// @Description Меняются только поля профиля. Email, пароль и роль игнорируются.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Изменяемые поля"
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/auth/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    user,
	})
}

package handlers

import (
	"net/http"

	"sponsorly_backend/internal/middleware"
	"sponsorly_backend/internal/services"
	"sponsorly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	*BaseHandler
	discoveryService services.DiscoveryService
}

func NewDiscoveryHandler(base *BaseHandler, discoveryService services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{
		BaseHandler:      base,
		discoveryService: discoveryService,
	}
}

func (h *DiscoveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/discover", h.Discover)
	rg.POST("/auth/discover-same", h.DiscoverSame)
}

// Discover godoc
// @Summary Подборка пользователей для главной страницы
// @Description Без role в теле берется роль из токена.
// @Tags discovery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DiscoverRequest false "Роль"
// @Success 200 {object} dto.DiscoverResponse
// @Router /api/auth/discover [post]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	var req dto.DiscoverRequest
	if c.Request.ContentLength != 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	role := req.Role
	if role == "" {
		role = string(middleware.GetUserRole(c))
	}

	users, err := h.discoveryService.Discover(c.Request.Context(), role, middleware.GetUserEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiscoverResponse{Users: users})
}

// DiscoverSame godoc
// @Summary Постраничный список пользователей по роли
// @Description role=all отдает все роли. Без email исключается сам пользователь.
// @Tags discovery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DiscoverSameRequest true "Фильтр и пагинация"
// @Success 200 {object} dto.DiscoverPage
// @Router /api/auth/discover-same [post]
func (h *DiscoveryHandler) DiscoverSame(c *gin.Context) {
	var req dto.DiscoverSameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	email := req.Email
	if email == "" {
		email = middleware.GetUserEmail(c)
	}

	page, err := h.discoveryService.DiscoverSame(c.Request.Context(), req.Role, email, req.Page, req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

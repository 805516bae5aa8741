package handlers

import (
	"net/http"

	"sponsorly_backend/internal/services"
	"sponsorly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	*BaseHandler
	supportService services.SupportService
}

func NewSupportHandler(base *BaseHandler, supportService services.SupportService) *SupportHandler {
	return &SupportHandler{
		BaseHandler:    base,
		supportService: supportService,
	}
}

// RegisterRoutes: создать обращение может кто угодно, список - только владелец
func (h *SupportHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/support/tickets", h.CreateTicket)
	protected.GET("/support/tickets", h.ListMyTickets)
}

// CreateTicket godoc
// @Summary Обращение в поддержку
// @Tags support
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Обращение"
// @Success 201 {object} models.SupportTicket
// @Router /api/support/tickets [post]
func (h *SupportHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.CreateTicket(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// ListMyTickets godoc
// @Summary Обращения текущего пользователя
// @Tags support
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/support/tickets [get]
func (h *SupportHandler) ListMyTickets(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	tickets, err := h.supportService.ListTickets(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

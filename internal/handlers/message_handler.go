package handlers

import (
	"net/http"

	"talentboard/internal/middleware"
	"talentboard/internal/services"
	"talentboard/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

// RegisterRoutes registers the message routes.
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("", h.SendMessage)
		messages.PATCH("/:messageId/viewed", h.MarkViewed)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.messageService.Send(db, companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MessageHandler) MarkViewed(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeCompanyID(c); !ok {
		return
	}

	messageID := c.Param("messageId")

	db := h.GetDB(c)

	if err := h.messageService.MarkViewed(db, messageID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": "Message marked as viewed",
	})
}

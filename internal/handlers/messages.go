package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resp, err := h.messageService.Conversations(userID)
	if err != nil {
		respondMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetThread returns the history with :userId and marks it read
func (h *MessageHandler) GetThread(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resp, err := h.messageService.Thread(userID, c.Param("userId"), utils.GetPaginationParams(c))
	if err != nil {
		respondMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SendMessageRequest struct {
		ReceiverID string `json:"receiver_id" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}

	var req SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(userID, services.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		respondMessageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecipientNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrMessageToSelf):
		apierrors.BadRequest(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}

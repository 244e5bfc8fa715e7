package dto

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ConversationDTO is a derived conversation seen from one participant
type ConversationDTO struct {
	models.Conversation
	With UserSummaryDTO `json:"with"`
}

type ConversationListResponse struct {
	Conversations []ConversationDTO `json:"conversations"`
	Unread        int               `json:"unread"`
}

// ThreadResponse is the message history between the reader and one user
type ThreadResponse struct {
	With       UserSummaryDTO           `json:"with"`
	Messages   []models.Message         `json:"messages"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

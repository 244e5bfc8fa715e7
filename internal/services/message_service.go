package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrMessageToSelf     = errors.New("cannot send a message to yourself")
)

// MessageService derives conversations and delivers messages
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Conversations groups the user's messages by counterpart, most recently
// active first.
func (s *MessageService) Conversations(userID string) (*dto.ConversationListResponse, error) {
	messages, err := s.messageRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	conversations := groupConversations(userID, messages)

	others := make([]string, 0, len(conversations))
	for _, c := range conversations {
		others = append(others, counterpart(c.Participants, userID))
	}
	users, err := s.userRepo.FindByIDs(others)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participants: %w", err)
	}

	out := &dto.ConversationListResponse{Conversations: make([]dto.ConversationDTO, 0, len(conversations))}
	for _, c := range conversations {
		item := dto.ConversationDTO{Conversation: c}
		if u, ok := users[counterpart(c.Participants, userID)]; ok {
			item.With = dto.ToUserSummaryDTO(u)
		} else {
			item.With = dto.UserSummaryDTO{ID: counterpart(c.Participants, userID)}
		}
		out.Unread += c.Unread
		out.Conversations = append(out.Conversations, item)
	}
	return out, nil
}

// groupConversations derives one conversation per unordered participant
// pair. messages must be oldest first.
func groupConversations(userID string, messages []models.Message) []models.Conversation {
	byKey := make(map[string]*models.Conversation)
	var order []string

	for i := range messages {
		m := messages[i]
		key := models.ConversationKey(m.SenderID, m.ReceiverID)
		conv, ok := byKey[key]
		if !ok {
			conv = &models.Conversation{
				ID:           key,
				Participants: []string{m.SenderID, m.ReceiverID},
			}
			byKey[key] = conv
			order = append(order, key)
		}
		conv.LastMessage = &m
		conv.UpdatedAt = m.CreatedAt
		if m.ReceiverID == userID && !m.Read {
			conv.Unread++
		}
	}

	out := make([]models.Conversation, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return query.SortStable(out, func(a, b models.Conversation) bool {
		return a.UpdatedAt.Before(b.UpdatedAt)
	}, query.Descending)
}

func counterpart(participants []string, userID string) string {
	for _, p := range participants {
		if p != userID {
			return p
		}
	}
	return userID
}

func (s *MessageService) findRecipient(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Thread returns a page of the history with otherID and marks what the
// reader received as read.
func (s *MessageService) Thread(userID, otherID string, params utils.PaginationParams) (*dto.ThreadResponse, error) {
	other, err := s.findRecipient(otherID)
	if err != nil {
		return nil, err
	}

	messages, total, err := s.messageRepo.ListThread(userID, otherID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread: %w", err)
	}
	if _, err := s.messageRepo.MarkThreadRead(userID, otherID); err != nil {
		return nil, fmt.Errorf("failed to mark thread read: %w", err)
	}

	return &dto.ThreadResponse{
		With:       dto.ToUserSummaryDTO(*other),
		Messages:   messages,
		Pagination: utils.PaginationResponse{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// SendMessageInput represents a new message
type SendMessageInput struct {
	ReceiverID string `validate:"required"`
	Content    string `validate:"required,max=5000"`
}

func (s *MessageService) Send(senderID string, input SendMessageInput) (*models.Message, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.ReceiverID == senderID {
		return nil, ErrMessageToSelf
	}
	if _, err := s.findRecipient(input.ReceiverID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:         utils.NewID(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return message, nil
}

package services

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models/chat"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

// previewLength bounds the denormalized last-message preview stored on
// the conversation.
const previewLength = 100

type ChatService interface {
	GetOrCreateConversation(userID, participantID string) (*dto.ConversationResponse, error)
	GetUserConversations(userID string) ([]dto.ConversationResponse, error)
	GetMessages(conversationID, userID string) ([]dto.MessageResponse, error)
	SendMessage(conversationID, userID, content string) (*dto.MessageResponse, error)
}

type ChatServiceImpl struct {
	chatRepo repositories.ChatRepository
}

func NewChatService(chatRepo repositories.ChatRepository) ChatService {
	return &ChatServiceImpl{chatRepo: chatRepo}
}

// GetOrCreateConversation is idempotent per participant pair: the ids are
// sorted before lookup, so either participant creating "the" conversation
// lands on the same row.
func (s *ChatServiceImpl) GetOrCreateConversation(userID, participantID string) (*dto.ConversationResponse, error) {
	if participantID == "" {
		return nil, apperrors.ErrParticipantRequired
	}

	participantIDs := []string{userID, participantID}
	sort.Strings(participantIDs)

	existing, err := s.chatRepo.FindConversationByParticipants(participantIDs)
	if err == nil {
		return conversationResponse(existing)
	}
	if !apperrors.Is(err, repositories.ErrConversationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	key, err := json.Marshal(participantIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	conversation := &chat.Conversation{ParticipantIDs: key}
	if err := s.chatRepo.CreateConversation(conversation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return conversationResponse(conversation)
}

func (s *ChatServiceImpl) GetUserConversations(userID string) ([]dto.ConversationResponse, error) {
	conversations, err := s.chatRepo.FindUserConversations(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		resp, err := conversationResponse(&conversations[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *ChatServiceImpl) GetMessages(conversationID, userID string) ([]dto.MessageResponse, error) {
	if _, err := s.chatRepo.FindConversationForUser(conversationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.chatRepo.FindMessages(conversationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, messageResponse(&m))
	}
	return responses, nil
}

func (s *ChatServiceImpl) SendMessage(conversationID, userID, content string) (*dto.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrContentRequired
	}

	if _, err := s.chatRepo.FindConversationForUser(conversationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	message := &chat.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        content,
	}

	if err := s.chatRepo.CreateMessage(message, TruncatePreview(content)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := messageResponse(message)
	return &resp, nil
}

// TruncatePreview caps the conversation preview at previewLength runes.
func TruncatePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

func conversationResponse(c *chat.Conversation) (*dto.ConversationResponse, error) {
	var participantIDs []string
	if err := json.Unmarshal(c.ParticipantIDs, &participantIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ConversationResponse{
		ID:             c.ID,
		ParticipantIDs: participantIDs,
		LastMessage:    c.LastMessage,
		LastMessageAt:  c.LastMessageAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func messageResponse(m *chat.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

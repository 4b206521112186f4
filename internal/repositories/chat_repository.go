package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models/chat"

	"gorm.io/gorm"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ChatRepository interface {
	FindConversationByParticipants(participantIDs []string) (*chat.Conversation, error)
	FindUserConversations(userID string) ([]chat.Conversation, error)
	FindConversationForUser(conversationID, userID string) (*chat.Conversation, error)
	CreateConversation(conversation *chat.Conversation) error
	CreateMessage(message *chat.Message, preview string) error
	FindMessages(conversationID string) ([]chat.Message, error)
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

// FindConversationByParticipants matches on exact jsonb equality, so the
// caller must pass the ids already sorted.
func (r *ChatRepositoryImpl) FindConversationByParticipants(participantIDs []string) (*chat.Conversation, error) {
	key, err := json.Marshal(participantIDs)
	if err != nil {
		return nil, err
	}

	var conversation chat.Conversation
	err = r.db.First(&conversation, "participant_ids = ?", string(key)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *ChatRepositoryImpl) FindUserConversations(userID string) ([]chat.Conversation, error) {
	member, err := json.Marshal([]string{userID})
	if err != nil {
		return nil, err
	}

	var conversations []chat.Conversation
	err = r.db.
		Where("participant_ids @> ?", string(member)).
		Order("last_message_at DESC NULLS LAST, created_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *ChatRepositoryImpl) FindConversationForUser(conversationID, userID string) (*chat.Conversation, error) {
	member, err := json.Marshal([]string{userID})
	if err != nil {
		return nil, err
	}

	var conversation chat.Conversation
	err = r.db.First(&conversation, "id = ? AND participant_ids @> ?", conversationID, string(member)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *ChatRepositoryImpl) CreateConversation(conversation *chat.Conversation) error {
	return r.db.Create(conversation).Error
}

// CreateMessage inserts the message and refreshes the conversation's
// denormalized preview in one transaction, so concurrent sends cannot
// leave the preview pointing at an older message than the insert.
func (r *ChatRepositoryImpl) CreateMessage(message *chat.Message, preview string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&chat.Conversation{}).
			Where("id = ?", message.ConversationID).
			Updates(map[string]interface{}{
				"last_message":    preview,
				"last_message_at": now,
				"updated_at":      now,
			}).Error
	})
}

func (r *ChatRepositoryImpl) FindMessages(conversationID string) ([]chat.Message, error) {
	var messages []chat.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

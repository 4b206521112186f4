package chat

import (
	"time"

	"gorm.io/datatypes"
)

// Conversation is keyed by its sorted participant pair: creation always
// sorts the ids before lookup/insert, so the same pair maps to the same
// row regardless of who initiates.
type Conversation struct {
	ID             string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ParticipantIDs datatypes.JSON `gorm:"type:jsonb;not null"`
	LastMessage    *string        // preview, truncated to 100 chars
	LastMessageAt  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

func (Conversation) TableName() string {
	return "chat.conversations"
}

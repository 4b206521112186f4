package dto

import "time"

type CreateConversationRequest struct {
	ParticipantID string `json:"participantId"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type ConversationResponse struct {
	ID             string     `json:"id"`
	ParticipantIDs []string   `json:"participantIds"`
	LastMessage    *string    `json:"lastMessage"`
	LastMessageAt  *time.Time `json:"lastMessageAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

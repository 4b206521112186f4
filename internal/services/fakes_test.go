package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models/chat"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
)

// In-memory repository fakes. They reproduce the not-found conventions
// of the real implementations so service logic is exercised unchanged.

type fakeUserRepo struct {
	users  map[string]*models.User // by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByProviderID(providerID string) (*models.User, error) {
	for _, u := range r.users {
		if u.ProviderID == providerID && providerID != "" {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) LinkProvider(userID string, provider models.AuthProvider, providerID, profileImage string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u.AuthProvider = provider
	u.ProviderID = providerID
	if profileImage != "" {
		u.ProfileImage = profileImage
	}
	copied := *u
	return &copied, nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session // by token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(session *models.Session) error {
	copied := *session
	r.sessions[session.Token] = &copied
	return nil
}

func (r *fakeSessionRepo) FindByToken(token string) (*models.Session, error) {
	if s, ok := r.sessions[token]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repositories.ErrSessionNotFound
}

func (r *fakeSessionRepo) DeleteByToken(token string) error {
	delete(r.sessions, token)
	return nil
}

// fakeEmailProvider records recipients under a lock: the welcome email
// is sent from a goroutine.
type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []string // recipient emails
	err  error
}

func (p *fakeEmailProvider) SendWelcome(to, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return p.err
}

func (p *fakeEmailProvider) recipients() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.sent...)
}

type fakeChatRepo struct {
	conversations map[string]*chat.Conversation // by id
	messages      map[string][]chat.Message     // by conversation id
	nextID        int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		conversations: make(map[string]*chat.Conversation),
		messages:      make(map[string][]chat.Message),
	}
}

func (r *fakeChatRepo) FindConversationByParticipants(participantIDs []string) (*chat.Conversation, error) {
	key, _ := json.Marshal(participantIDs)
	for _, c := range r.conversations {
		if string(c.ParticipantIDs) == string(key) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrConversationNotFound
}

func (r *fakeChatRepo) FindUserConversations(userID string) ([]chat.Conversation, error) {
	var out []chat.Conversation
	for _, c := range r.conversations {
		if conversationHasParticipant(c, userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) FindConversationForUser(conversationID, userID string) (*chat.Conversation, error) {
	c, ok := r.conversations[conversationID]
	if !ok || !conversationHasParticipant(c, userID) {
		return nil, repositories.ErrConversationNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeChatRepo) CreateConversation(conversation *chat.Conversation) error {
	r.nextID++
	conversation.ID = fmt.Sprintf("conv-%d", r.nextID)
	conversation.CreatedAt = time.Now()
	copied := *conversation
	r.conversations[conversation.ID] = &copied
	return nil
}

func (r *fakeChatRepo) CreateMessage(message *chat.Message, preview string) error {
	c, ok := r.conversations[message.ConversationID]
	if !ok {
		return repositories.ErrConversationNotFound
	}
	r.nextID++
	message.ID = fmt.Sprintf("msg-%d", r.nextID)
	message.CreatedAt = time.Now()
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], *message)

	now := message.CreatedAt
	c.LastMessage = &preview
	c.LastMessageAt = &now
	c.UpdatedAt = now
	return nil
}

func (r *fakeChatRepo) FindMessages(conversationID string) ([]chat.Message, error) {
	return r.messages[conversationID], nil
}

func conversationHasParticipant(c *chat.Conversation, userID string) bool {
	var ids []string
	if err := json.Unmarshal(c.ParticipantIDs, &ids); err != nil {
		return false
	}
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}

type fakeReservationRepo struct {
	created []*models.Reservation
}

func (r *fakeReservationRepo) Create(reservation *models.Reservation) error {
	reservation.ID = fmt.Sprintf("resa-%d", len(r.created)+1)
	r.created = append(r.created, reservation)
	return nil
}

func (r *fakeReservationRepo) FindByID(id string) (*models.Reservation, error) {
	for _, resa := range r.created {
		if resa.ID == id {
			return resa, nil
		}
	}
	return nil, repositories.ErrReservationNotFound
}

func (r *fakeReservationRepo) FindByUser(userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, resa := range r.created {
		if resa.UserID == userID {
			out = append(out, *resa)
		}
	}
	return out, nil
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteService struct {
	quotes []models.Quote
}

func (s *fakeQuoteService) CreateQuote(userID string, req *dto.CreateQuoteRequest) (*models.Quote, error) {
	quote := models.Quote{
		BaseModel:    models.BaseModel{ID: "quote-1"},
		UserID:       userID,
		VehicleBrand: req.VehicleBrand,
		ServiceType:  req.ServiceType,
		Description:  req.Description,
		Status:       models.StatusPending,
	}
	s.quotes = append(s.quotes, quote)
	return &quote, nil
}

func (s *fakeQuoteService) GetUserQuotes(userID string) ([]models.Quote, error) {
	var out []models.Quote
	for _, q := range s.quotes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func TestQuotes_RequireAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, "GET", "/api/quotes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Non authentifié", decodeBody(t, rec)["message"])

	rec = env.doJSON(t, "POST", "/api/quotes", "token-inconnu", map[string]string{"serviceType": "Équilibrage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Session expirée", decodeBody(t, rec)["message"])
}

func TestCreateQuote_OwnerStampedFromSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.authService.addUser("client@test.fr", "motdepasse123", models.UserRoleClient)
	token := env.authService.openSession(user)

	// A forged userId in the body is silently dropped: the request DTO
	// has no such field.
	rec := env.doJSON(t, "POST", "/api/quotes", token, map[string]string{
		"userId":       "victime",
		"serviceType":  "Réparation de jantes",
		"vehicleBrand": "Renault",
		"description":  "Jante rayée",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, user.ID, body["userId"])
	assert.Equal(t, "pending", body["status"])
}

func TestCreateQuote_ValidationMessage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.authService.addUser("client@test.fr", "motdepasse123", models.UserRoleClient)
	token := env.authService.openSession(user)

	rec := env.doJSON(t, "POST", "/api/quotes", token, map[string]string{
		"vehicleBrand": "Renault",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "serviceType : Ce champ est requis", decodeBody(t, rec)["message"])
}

func TestGetUserQuotes_OnlyOwn(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	alice := env.authService.addUser("alice@test.fr", "motdepasse123", models.UserRoleClient)
	bob := env.authService.addUser("bob@test.fr", "motdepasse123", models.UserRoleClient)
	aliceToken := env.authService.openSession(alice)
	bobToken := env.authService.openSession(bob)

	rec := env.doJSON(t, "POST", "/api/quotes", aliceToken, map[string]string{"serviceType": "Équilibrage"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, "GET", "/api/quotes", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var quotes []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quotes))
	assert.Empty(t, quotes)
}

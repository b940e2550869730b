package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestGenerateToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(primitive.NewObjectID(), "uid-1", "ada@example.com", "user", secret)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestPasswordResetTokenRoundTrip(t *testing.T) {
	secret := []byte("reset-secret")
	userID := primitive.NewObjectID()

	token, err := GeneratePasswordResetToken(userID, secret)
	require.NoError(t, err)

	parsedID, err := ValidatePasswordResetToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestPasswordResetTokenWrongSecret(t *testing.T) {
	token, err := GeneratePasswordResetToken(primitive.NewObjectID(), []byte("right-secret"))
	require.NoError(t, err)

	_, err = ValidatePasswordResetToken(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusNotFound, "task not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "task not found", body["message"])
}

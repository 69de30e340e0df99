package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeMessageHidesInternalDetail(t *testing.T) {
	err := E(CodeInternal, "ChatService.Ask", "failed to record message", fmt.Errorf("pq: connection refused"))
	assert.Equal(t, "internal server error", SafeMessage(err))

	err = E(CodeInvalidArgument, "ChatService.Ask", "message is required", nil)
	assert.Equal(t, "message is required", SafeMessage(err))
}

func TestHTTPStatusByCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(E(CodeInvalidArgument, "op", "m", nil)))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(E(CodeUnauthorized, "op", "m", nil)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(E(CodeNotFound, "op", "m", nil)))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(E(CodeUnavailable, "op", "m", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("anything else")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("lookup: %w", ErrNotFound)))
}

func TestIsCodeUnwraps(t *testing.T) {
	inner := E(CodeNotFound, "Repo.Get", "user not found", ErrNotFound)
	wrapped := fmt.Errorf("outer: %w", inner)
	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(wrapped, CodeInternal))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestNormalizeQuestion(t *testing.T) {
	assert.Equal(t, "what are your hours?", NormalizeQuestion("  What  ARE your\tHours? "))
	assert.Equal(t, "", NormalizeQuestion("   "))
}

func TestTokensStripPunctuation(t *testing.T) {
	assert.Equal(t, []string{"do", "you", "charge", "setup", "fees"}, Tokens("Do you charge setup fees?"))
}

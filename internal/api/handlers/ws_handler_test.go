package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginCheckerUnrestricted(t *testing.T) {
	check := originChecker("")

	req := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	assert.True(t, check(req))
}

func TestOriginCheckerRestricted(t *testing.T) {
	check := originChecker("https://site.example")

	req := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
	req.Header.Set("Origin", "https://site.example")
	assert.True(t, check(req))

	req.Header.Set("Origin", "HTTPS://SITE.EXAMPLE")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://other.example")
	assert.False(t, check(req))

	// non-browser clients send no Origin header
	req.Header.Del("Origin")
	assert.True(t, check(req))
}

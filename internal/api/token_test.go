package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMissingAuthorizationHeader(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/api/comunidades", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Valida", "valida@example.com", "SenhaForte1")

	for _, header := range []string{
		token,
		"Basic " + token,
		"Bearer",
		"Bearer ",
	} {
		request := httptest.NewRequest(http.MethodGet, "/api/comunidades", nil)
		request.Header.Set("Authorization", header)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: expected status 401, got %d", header, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	app, _ := newTestApp(t)
	token, user := registerTestUser(t, app, "Expira", "expira@example.com", "SenhaForte1")

	// A freshly issued token is good for the full window.
	response := performJSON(t, app, http.MethodGet, "/api/comunidades", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected fresh token to be accepted, got %d", response.StatusCode)
	}
	response.Body.Close()

	expiredClaims := authClaims{
		UserID: uint(user["id"].(float64)),
		Email:  "expira@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-authTokenTTL)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	expiredResponse := performJSON(t, app, http.MethodGet, "/api/comunidades", expiredToken, nil)
	if expiredResponse.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected expired token to be rejected, got %d", expiredResponse.StatusCode)
	}
	expiredResponse.Body.Close()
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Alguem", "alguem@example.com", "SenhaForte1")

	forgedClaims := authClaims{
		UserID:  1,
		Email:   "alguem@example.com",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	forgedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims).SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	response := performJSON(t, app, http.MethodGet, "/api/comunidades", forgedToken, nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected forged token to be rejected, got %d", response.StatusCode)
	}
	response.Body.Close()
}

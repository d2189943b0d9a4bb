package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

func TestRegisterIssuesTokenPair(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)
	if pair.User.ID == 0 {
		t.Fatal("registered user has no id")
	}

	response := doRequest(t, app, http.MethodGet, "/auth/me", pair.AccessToken, nil)
	envelope := expectStatus(t, response, http.StatusOK)

	var me models.User
	decodeData(t, envelope, &me)
	if me.ID != pair.User.ID || me.Email != pair.User.Email {
		t.Fatalf("me = %+v, want user %d (%s)", me, pair.User.ID, pair.User.Email)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    pair.User.Email,
		"password": "another-password",
	})
	envelope := expectStatus(t, response, http.StatusConflict)
	if envelope.Success {
		t.Fatal("conflict response must not report success")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	// Registering again with different casing hits the same account.
	response := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    "  " + upperFirst(pair.User.Email) + "  ",
		"password": "another-password",
	})
	expectStatus(t, response, http.StatusConflict)
}

func upperFirst(value string) string {
	if value == "" {
		return value
	}
	first := value[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	return string(first) + value[1:]
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	response := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": "incomplete@example.com",
	})
	expectStatus(t, response, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    pair.User.Email,
		"password": "not-the-password",
	})
	envelope := expectStatus(t, response, http.StatusUnauthorized)
	if envelope.Message != "Invalid credentials" {
		t.Fatalf("message = %q", envelope.Message)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	response := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestLoginSucceeds(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    pair.User.Email,
		"password": "correct-horse-battery",
	})
	envelope := expectStatus(t, response, http.StatusOK)

	var fresh tokenPair
	decodeData(t, envelope, &fresh)
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatal("login response is missing tokens")
	}
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/auth/refresh", "", fiber.Map{
		"refreshToken": pair.RefreshToken,
	})
	envelope := expectStatus(t, response, http.StatusOK)

	var payload struct {
		AccessToken string `json:"accessToken"`
	}
	decodeData(t, envelope, &payload)
	if payload.AccessToken == "" {
		t.Fatal("refresh response is missing the access token")
	}

	me := doRequest(t, app, http.MethodGet, "/auth/me", payload.AccessToken, nil)
	expectStatus(t, me, http.StatusOK)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	// Access tokens are signed with a different secret and must not pass
	// as refresh tokens.
	response := doRequest(t, app, http.MethodPost, "/auth/refresh", "", fiber.Map{
		"refreshToken": pair.AccessToken,
	})
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	paths := []string{"/auth/me", "/goals", "/habits", "/tasks", "/finances/transactions", "/bucketlist"}
	for _, path := range paths {
		response := doRequest(t, app, http.MethodGet, path, "", nil)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s without token: status %d, want 401", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	t.Parallel()
	app, handler := newTestApp(t)

	pair := registerTestUser(t, app)

	expired, err := buildToken(&models.User{ID: pair.User.ID, Email: pair.User.Email}, handler.cfg.AccessSecret, -time.Minute, "")
	if err != nil {
		t.Fatalf("build expired token: %v", err)
	}

	response := doRequest(t, app, http.MethodGet, "/auth/me", expired, nil)
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	pair := registerTestUser(t, app)

	forged, err := buildToken(&models.User{ID: pair.User.ID, Email: pair.User.Email}, []byte("some-other-secret"), time.Hour, "")
	if err != nil {
		t.Fatalf("build forged token: %v", err)
	}

	response := doRequest(t, app, http.MethodGet, "/auth/me", forged, nil)
	expectStatus(t, response, http.StatusUnauthorized)
}

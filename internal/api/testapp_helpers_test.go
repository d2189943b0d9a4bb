package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/config"
	"github.com/lifeboard/lifeboard/internal/db"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		Environment:     "test",
		DBPath:          filepath.Join(t.TempDir(), "lifeboard-test.db"),
		AccessSecret:    []byte("test-access-secret"),
		RefreshSecret:   []byte("test-refresh-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	cfg := testConfig(t)
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	handler := NewHandler(database, cfg)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeEnvelope(t *testing.T, response *http.Response) testEnvelope {
	t.Helper()
	defer response.Body.Close()

	var envelope testEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return envelope
}

func decodeData(t *testing.T, envelope testEnvelope, target any) {
	t.Helper()
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("decode envelope data: %v", err)
	}
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	} `json:"user"`
}

var testUserSequence atomic.Int64

// registerTestUser signs up a fresh user and returns its token pair. Each
// call uses a distinct email so tests can create several isolated users
// against the same app.
func registerTestUser(t *testing.T, app *fiber.App) tokenPair {
	t.Helper()

	email := fmt.Sprintf("user%d@example.com", testUserSequence.Add(1))

	response := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    email,
		"password": "correct-horse-battery",
		"fullName": "Test User",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	envelope := decodeEnvelope(t, response)
	var pair tokenPair
	decodeData(t, envelope, &pair)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("register response is missing tokens")
	}
	return pair
}

func expectStatus(t *testing.T, response *http.Response, want int) testEnvelope {
	t.Helper()
	if response.StatusCode != want {
		envelope := decodeEnvelope(t, response)
		t.Fatalf("status = %d, want %d (message %q)", response.StatusCode, want, envelope.Message)
	}
	return decodeEnvelope(t, response)
}

package manifold

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://api.example.test", "test-key")

		if c.baseURL != "https://api.example.test" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "https://api.example.test")
		}
		if c.apiKey != "test-key" {
			t.Errorf("apiKey = %q, want %q", c.apiKey, "test-key")
		}
		if c.userTimeout != 20*time.Second {
			t.Errorf("userTimeout = %v, want 20s", c.userTimeout)
		}
		if c.marketTimeout != 15*time.Second {
			t.Errorf("marketTimeout = %v, want 15s", c.marketTimeout)
		}
		if c.tradeTimeout != 30*time.Second {
			t.Errorf("tradeTimeout = %v, want 30s", c.tradeTimeout)
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with timeouts option", func(t *testing.T) {
		c := NewClient("https://api.example.test", "", WithTimeouts(time.Second, 2*time.Second, 3*time.Second))
		if c.userTimeout != time.Second {
			t.Errorf("userTimeout = %v, want 1s", c.userTimeout)
		}
		if c.marketTimeout != 2*time.Second {
			t.Errorf("marketTimeout = %v, want 2s", c.marketTimeout)
		}
		if c.tradeTimeout != 3*time.Second {
			t.Errorf("tradeTimeout = %v, want 3s", c.tradeTimeout)
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://api.example.test", "", WithHTTPClient(custom))
		if c.httpClient != custom {
			t.Error("custom HTTP client not set")
		}
	})
}

func TestGetUserByHandle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v0/user/somebody" {
				t.Errorf("path = %q, want /v0/user/somebody", r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"id":"U1","username":"somebody","name":"Some Body","balance":1000}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "test-key")
		user, err := c.GetUserByHandle(context.Background(), "somebody")
		if err != nil {
			t.Fatalf("GetUserByHandle failed: %v", err)
		}

		if user.ID != "U1" {
			t.Errorf("ID = %q, want U1", user.ID)
		}
		if user.Username != "somebody" {
			t.Errorf("Username = %q, want somebody", user.Username)
		}
		// User lookups are unauthenticated
		if gotAuth != "" {
			t.Errorf("Authorization = %q, want empty", gotAuth)
		}
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"User not found"}`, http.StatusNotFound)
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		_, err := c.GetUserByHandle(context.Background(), "nobody")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		_, err := c.GetUserByHandle(context.Background(), "somebody")
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, ErrUserNotFound) {
			t.Error("500 should not map to ErrUserNotFound")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "")
		if _, err := c.GetUserByHandle(context.Background(), "somebody"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Key test-key" {
			t.Errorf("Authorization = %q, want %q", got, "Key test-key")
		}
		w.Write([]byte(`{"id":"U9","username":"botself","balance":250.5}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key")
	user, err := c.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe failed: %v", err)
	}
	if user.ID != "U9" {
		t.Errorf("ID = %q, want U9", user.ID)
	}
	if user.Balance != 250.5 {
		t.Errorf("Balance = %v, want 250.5", user.Balance)
	}
}

func TestGetMarket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v0/market/m1" {
				t.Errorf("path = %q, want /v0/market/m1", r.URL.Path)
			}
			w.Write([]byte(`{"id":"m1","creatorId":"U1","question":"Will X?","url":"https://example.test/m1","outcomeType":"BINARY","prob":0.4}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		market, err := c.GetMarket(context.Background(), "m1")
		if err != nil {
			t.Fatalf("GetMarket failed: %v", err)
		}

		if market.Prob != 0.4 {
			t.Errorf("Prob = %v, want 0.4", market.Prob)
		}
		if market.OutcomeType != "BINARY" {
			t.Errorf("OutcomeType = %q, want BINARY", market.OutcomeType)
		}
	})

	t.Run("non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer server.Close()

		c := NewClient(server.URL, "")
		_, err := c.GetMarket(context.Background(), "m1")

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("err = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusBadGateway {
			t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
		}
	})
}

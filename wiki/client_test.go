package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

// newTestClient returns a client pointed at a test server running the
// given handler, with rate limiting effectively disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithBaseURL(server.URL),
		WithRateLimiter(rate.NewLimiter(rate.Inf, 1)),
	}, opts...)
	return NewClient(opts...)
}

func TestAPIErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":"invalidtitle","info":"Bad title."}}`)
	})

	_, err := client.Article(context.Background(), "|||")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != "invalidtitle" {
		t.Errorf("Code = %q, want %q", apiErr.Code, "invalidtitle")
	}
}

func TestHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Article(context.Background(), "Go")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", httpErr.StatusCode)
	}
}

func TestRetryOn429(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"query":{"pages":{"1":{"pageid":1,"ns":0,"title":"Go","extract":"text"}}}}`)
	})

	article, err := client.Article(context.Background(), "Go")
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if article.Text != "text" {
		t.Errorf("Text = %q, want %q", article.Text, "text")
	}
}

func TestRetryOnMaxlag(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			fmt.Fprint(w, `{"error":{"code":"maxlag","info":"Waiting for a database server."}}`)
			return
		}
		fmt.Fprint(w, `{"query":{"pages":{"1":{"pageid":1,"ns":0,"title":"Go","extract":"text"}}}}`)
	})

	if _, err := client.Article(context.Background(), "Go"); err != nil {
		t.Fatalf("Article: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetriesExhausted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Article(context.Background(), "Go")
	if !IsRateLimited(err) {
		t.Fatalf("expected rate-limited error, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{}}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Article(ctx, "Go")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestUserAgentHeader(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"query":{"pages":{"1":{"pageid":1,"ns":0,"title":"Go","extract":""}}}}`)
	}, WithUserAgent("corpus-test/0.1"))

	if _, err := client.Article(context.Background(), "Go"); err != nil {
		t.Fatalf("Article: %v", err)
	}
	if got != "corpus-test/0.1" {
		t.Errorf("User-Agent = %q, want %q", got, "corpus-test/0.1")
	}
}

func TestEndpointLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "https://en.wikipedia.org/w/api.php"},
		{"de", "https://de.wikipedia.org/w/api.php"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c := NewClient(WithLanguage(tt.lang))
			if got := c.endpoint(); got != tt.want {
				t.Errorf("endpoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

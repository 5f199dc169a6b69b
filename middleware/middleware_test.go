// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/models"
	"github.com/danielhkuo/listwarden/testutil"
)

func TestWithLogging(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"NotFound", http.StatusNotFound, "not found"},
		{"Unavailable", http.StatusServiceUnavailable, `{"error":"Service Unavailable"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "health",
			statusCode: http.StatusOK,
			data:       models.HealthResponse{Status: "ok", Lists: map[string]int{"banned": 2}},
			expected:   `{"status":"ok","lists":{"banned":2}}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusServiceUnavailable,
			data:       models.ErrorResponse{Error: "Service Unavailable", Message: "store unreadable"},
			expected:   `{"error":"Service Unavailable","message":"store unreadable"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusServiceUnavailable, "store unreadable")

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "Service Unavailable" {
		t.Errorf("Expected error 'Service Unavailable', got '%s'", resp.Error)
	}
	if resp.Message != "store unreadable" {
		t.Errorf("Expected message 'store unreadable', got '%s'", resp.Message)
	}
}

func TestWithCommandLogging(t *testing.T) {
	ch := testutil.NewFakeChannel()
	req := chat.NewRequest("echo", "hi", chat.Member{UserID: "1"}, ch, nil)

	called := false
	handler := WithCommandLogging("echo", func(ctx context.Context, req *chat.Request) error {
		called = true
		return Reply(ctx, req.Channel, req.Rest)
	})

	if err := handler(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !called {
		t.Error("Expected handler to be called")
	}
	if got := ch.Messages(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("Expected one reply 'hi', got %v", got)
	}
}

func TestWithCommandLogging_Failure(t *testing.T) {
	ch := testutil.NewFakeChannel()
	req := chat.NewRequest("add", "banned x", chat.Member{UserID: "1"}, ch, nil)

	boom := errors.New("disk full")
	handler := WithCommandLogging("add", func(ctx context.Context, req *chat.Request) error {
		return boom
	})

	err := handler(context.Background(), req)
	if !errors.Is(err, boom) {
		t.Errorf("Expected the handler error, got: %v", err)
	}
	if ch.LastMessage() != FailureReply {
		t.Errorf("Expected failure reply, got '%s'", ch.LastMessage())
	}
}

func TestWithCommandLogging_Panic(t *testing.T) {
	ch := testutil.NewFakeChannel()
	req := chat.NewRequest("list", "", chat.Member{UserID: "1"}, ch, nil)

	handler := WithCommandLogging("list", func(ctx context.Context, req *chat.Request) error {
		var doc models.Document
		doc["banned"] = models.ListEntry{}
		return nil
	})

	err := handler(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "panic in list") {
		t.Errorf("Expected panic to become an error, got: %v", err)
	}
	if ch.LastMessage() != FailureReply {
		t.Errorf("Expected failure reply, got '%s'", ch.LastMessage())
	}
}

func TestChunk(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		size  int
		want  []string
	}{
		{"empty", "", 5, nil},
		{"short", "abc", 5, []string{"abc"}},
		{"exact", "abcde", 5, []string{"abcde"}},
		{"split", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"runes not bytes", "🚫🚫🚫", 2, []string{"🚫🚫", "🚫"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Chunk(tc.input, tc.size)
			if len(got) != len(tc.want) {
				t.Fatalf("Chunk() = %q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Chunk()[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestReplyChunked(t *testing.T) {
	ch := testutil.NewFakeChannel()
	long := strings.Repeat("• Aditya Lee Sin\n", 300)

	if err := ReplyChunked(context.Background(), ch, long); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	msgs := ch.Messages()
	if len(msgs) < 2 {
		t.Fatalf("Expected several messages, got %d", len(msgs))
	}
	if strings.Join(msgs, "") != long {
		t.Error("Chunks do not reassemble to the original text")
	}
	for _, m := range msgs {
		if n := utf8.RuneCountInString(m); n > MessageLimit {
			t.Errorf("Chunk has %d runes, limit is %d", n, MessageLimit)
		}
	}
}

package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srvURL string) *GeminiClient {
	c := NewGeminiClient(srvURL, "test-model", "test-key")
	return c
}

func TestInterpretFunctionCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`{"candidates": [{"content": {"parts": [
			{"functionCall": {"name": "addTimer", "args": {"hours": 0, "minutes": 5, "seconds": 0, "label": "tea"}}},
			{"functionCall": {"name": "controlStopwatch", "args": {"action": "start"}}}
		]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Interpret(context.Background(), "5 minute tea timer and start the stopwatch")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if len(got.Calls) != 2 || got.Text != "" {
		t.Fatalf("result = %+v, want two calls and no text", got)
	}
	timer, ok := got.Calls[0].(AddTimerCall)
	if !ok || timer.Minutes != 5 || timer.Label != "tea" {
		t.Errorf("first call = %+v", got.Calls[0])
	}
	sw, ok := got.Calls[1].(ControlStopwatchCall)
	if !ok || sw.Action != "start" {
		t.Errorf("second call = %+v", got.Calls[1])
	}
}

func TestInterpretTextReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "I can only manage reminders, alarms and timers."}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Interpret(context.Background(), "what's the weather")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if len(got.Calls) != 0 || got.Text == "" {
		t.Fatalf("result = %+v, want text only", got)
	}
}

func TestInterpretUnknownOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [{"content": {"parts": [
			{"functionCall": {"name": "deleteEverything", "args": {}}}
		]}}]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Interpret(context.Background(), "do it"); err == nil {
		t.Fatalf("unknown operation accepted")
	}
}

func TestInterpretEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Interpret(context.Background(), "hello"); err == nil {
		t.Fatalf("empty candidate list accepted")
	}
}

func TestInterpretServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Interpret(context.Background(), "hello"); err == nil {
		t.Fatalf("non-2xx status accepted")
	}
}

func TestInterpretNoAPIKey(t *testing.T) {
	c := NewGeminiClient("http://localhost:0", "m", "")
	if _, err := c.Interpret(context.Background(), "hello"); err == nil {
		t.Fatalf("missing API key accepted")
	}
}

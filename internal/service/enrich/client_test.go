package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer key-123" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Model != "test-model" || len(body.Messages) != 2 || body.Messages[0].Role != "system" {
			t.Fatalf("unexpected request %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"title\":\"Ship it\"}  "}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL+"/openai/v1/", " key-123 ", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	got, err := client.Complete(context.Background(), Completion{Model: "test-model", System: "sys", User: "user"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != `{"title":"Ship it"}` {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestCompleteMapsStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		client, err := NewClient(srv.URL, "key", nil)
		if err != nil {
			t.Fatalf("new client: %v", err)
		}
		_, err = client.Complete(context.Background(), Completion{})
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()
	client, err := NewClient(srv.URL, "key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Complete(context.Background(), Completion{}); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestNewClientValidates(t *testing.T) {
	if _, err := NewClient("", "key", nil); err == nil {
		t.Fatal("expected base url error")
	}
	if _, err := NewClient("https://api.example.com", " ", nil); err == nil {
		t.Fatal("expected api key error")
	}
}

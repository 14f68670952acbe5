package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newRelayRouter(client Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	r := gin.New()
	r.Any("/api/chat", RelayHandler(client, log))
	return r
}

func TestRelay_RejectsNonPost(t *testing.T) {
	router := newRelayRouter(&fakeClient{reply: "hola"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("expected Allow: POST, got %q", allow)
	}
}

func TestRelay_RejectsMissingFields(t *testing.T) {
	router := newRelayRouter(&fakeClient{reply: "hola"})

	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no messages", `{"systemInstruction":"eres un asistente"}`},
		{"blank instruction", `{"messages":[{"sender":"user","text":"hola"}],"systemInstruction":"  "}`},
		{"not json", `menus por favor`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRelay_ForwardsConversation(t *testing.T) {
	client := &fakeClient{reply: "¡Órale va!"}
	router := newRelayRouter(client)

	body := `{"messages":[{"sender":"user","text":"quiero una torta"}],"systemInstruction":"eres un asistente"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Reply != "¡Órale va!" {
		t.Errorf("unexpected reply: %q", resp.Reply)
	}

	if len(client.lastSent) != 1 || client.lastSent[0].Text != "quiero una torta" {
		t.Errorf("conversation not forwarded: %+v", client.lastSent)
	}
	if client.instruction != "eres un asistente" {
		t.Errorf("instruction not forwarded: %q", client.instruction)
	}
}

func TestRelay_ModelFailure(t *testing.T) {
	router := newRelayRouter(&fakeClient{err: context.DeadlineExceeded})

	body := `{"messages":[{"sender":"user","text":"hola"}],"systemInstruction":"eres un asistente"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to get response from AI") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestRelay_NilClient(t *testing.T) {
	router := newRelayRouter(nil)

	body := `{"messages":[],"systemInstruction":"eres un asistente"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

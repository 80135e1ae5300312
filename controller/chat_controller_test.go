package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/service"

	"github.com/gin-gonic/gin"
)

func newChatRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	chatSvc, err := service.NewChatService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create chat service: %v", err)
	}

	r := gin.New()
	api := r.Group("/api")
	NewChatController(chatSvc).RegisterRoutes(api)
	NewHealthController().RegisterRoutes(api)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newChatRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSaveMessageValidation(t *testing.T) {
	r := newChatRouter(t)

	// Missing content must be rejected before anything touches the disk.
	body, _ := json.Marshal(model.SaveMessageRequest{
		Username:  "alice",
		SessionID: "s1",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing content, got %d", w.Code)
	}

	var resp model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Success {
		t.Error("validation failure must not report success")
	}
}

func TestSaveMessageRoundTrip(t *testing.T) {
	r := newChatRouter(t)

	body, _ := json.Marshal(model.SaveMessageRequest{
		Username:  "alice",
		SessionID: "s1",
		Content:   "hello",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/chat/history/alice/s1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data model.ChatHistoryResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.Session.MessageCount != 1 || len(resp.Data.Messages) != 1 {
		t.Fatalf("expected one stored message, got %+v", resp.Data)
	}
	if resp.Data.Messages[0].Content != "hello" {
		t.Errorf("unexpected message content: %+v", resp.Data.Messages[0])
	}
}

func TestDeleteMissingSessionReturns404(t *testing.T) {
	r := newChatRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/chat/session/alice/nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

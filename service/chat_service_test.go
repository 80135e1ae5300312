package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
)

func newTestChatService(t *testing.T) ChatService {
	t.Helper()
	svc, err := NewChatService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create chat service: %v", err)
	}
	return svc
}

func TestChatSessionLifecycle(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, err := svc.CreateSession("alice")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	sessions, err := svc.UserSessions("alice")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != sessionID {
		t.Fatalf("expected the created session, got %+v", sessions)
	}
	if sessions[0].MessageCount != 0 {
		t.Errorf("fresh session should have no messages, got %d", sessions[0].MessageCount)
	}

	if err := svc.DeleteSession("alice", sessionID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	sessions, err = svc.UserSessions("alice")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions after delete, got %+v", sessions)
	}

	err = svc.DeleteSession("alice", sessionID)
	if !errors.Is(err, customerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestChatMessagesRoundTrip(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, err := svc.CreateSession("bob")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	saved, err := svc.SaveTextMessage("bob", sessionID, "hello world")
	if err != nil {
		t.Fatalf("save message: %v", err)
	}
	if saved.MessageID == "" || saved.MessageType != "text" {
		t.Fatalf("unexpected save result: %+v", saved)
	}
	if _, err := os.Stat(saved.FilePath); err != nil {
		t.Fatalf("message file missing: %v", err)
	}

	if _, err := svc.SaveImage("bob", sessionID, []byte{0xFF, 0xD8}, ".jpg"); err != nil {
		t.Fatalf("save image: %v", err)
	}

	messages, err := svc.SessionMessages("bob", sessionID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	// Text messages come first, then images.
	if messages[0].Type != "text" || messages[0].Content != "hello world" {
		t.Errorf("unexpected first message: %+v", messages[0])
	}
	if messages[1].Type != "image" || messages[1].Path == "" {
		t.Errorf("unexpected second message: %+v", messages[1])
	}

	path, err := svc.FilePath("bob", sessionID, messages[0].File)
	if err != nil {
		t.Fatalf("file path: %v", err)
	}
	if filepath.Base(path) != messages[0].File {
		t.Errorf("unexpected file path %s", path)
	}

	_, err = svc.FilePath("bob", sessionID, "missing.txt")
	if !errors.Is(err, customerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for missing file, got %v", err)
	}
}

func TestChatRejectsBadImageType(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, err := svc.CreateSession("carol")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	_, err = svc.SaveImage("carol", sessionID, []byte("gif"), ".gif")
	if !errors.Is(err, customerrors.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestChatRejectsPathTraversal(t *testing.T) {
	svc := newTestChatService(t)

	bad := []struct{ username, session string }{
		{"../evil", "s1"},
		{"alice", "../s1"},
		{"alice/..", "s1"},
		{"", "s1"},
		{"alice", ".."},
	}
	for _, tc := range bad {
		if _, err := svc.SaveTextMessage(tc.username, tc.session, "x"); !errors.Is(err, customerrors.ErrInvalidPathComponent) {
			t.Errorf("username=%q session=%q: expected ErrInvalidPathComponent, got %v", tc.username, tc.session, err)
		}
	}

	if _, err := svc.FilePath("alice", "s1", "../secret"); !errors.Is(err, customerrors.ErrInvalidPathComponent) {
		t.Errorf("expected ErrInvalidPathComponent for filename traversal, got %v", err)
	}
}

func TestChatUnknownUserHasNoSessions(t *testing.T) {
	svc := newTestChatService(t)

	sessions, err := svc.UserSessions("nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty list, got %+v", sessions)
	}
}

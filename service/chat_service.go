package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const chatTimestampLayout = "2006-01-02_15:04:05"

type ChatService interface {
	CreateSession(username string) (string, error)
	UserSessions(username string) ([]model.ChatSession, error)
	SaveTextMessage(username, sessionID, content string) (*model.ChatUploadResponse, error)
	SaveImage(username, sessionID string, data []byte, ext string) (*model.ChatUploadResponse, error)
	SessionMessages(username, sessionID string) ([]model.ChatMessage, error)
	DeleteSession(username, sessionID string) error
	FilePath(username, sessionID, filename string) (string, error)
}

// ChatServiceImpl stores chat history on the local filesystem, one directory
// per {username}/{session}, text messages as message_<id>.txt and images as
// image_<id>.<ext>.
type ChatServiceImpl struct {
	basePath string
}

func NewChatService(basePath string) (ChatService, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chat history dir: %w", err)
	}
	log.Info().Str("path", basePath).Msg("Chat history base path ready")
	return &ChatServiceImpl{basePath: basePath}, nil
}

func (s *ChatServiceImpl) CreateSession(username string) (string, error) {
	sessionID := uuid.NewString()
	if _, err := s.sessionDir(username, sessionID, true); err != nil {
		return "", err
	}
	log.Info().Str("username", username).Str("session", sessionID).Msg("Created chat session")
	return sessionID, nil
}

func (s *ChatServiceImpl) UserSessions(username string) ([]model.ChatSession, error) {
	if err := checkPathComponent(username); err != nil {
		return nil, err
	}

	userDir := filepath.Join(s.basePath, username)
	entries, err := os.ReadDir(userDir)
	if os.IsNotExist(err) {
		return []model.ChatSession{}, nil
	}
	if err != nil {
		return nil, err
	}

	sessions := make([]model.ChatSession, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		messages, err := s.SessionMessages(username, e.Name())
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, model.ChatSession{
			ID:           e.Name(),
			Username:     username,
			MessageCount: len(messages),
		})
	}
	return sessions, nil
}

func (s *ChatServiceImpl) SaveTextMessage(username, sessionID, content string) (*model.ChatUploadResponse, error) {
	dir, err := s.sessionDir(username, sessionID, true)
	if err != nil {
		return nil, err
	}

	messageID := uuid.NewString()
	path := filepath.Join(dir, "message_"+messageID+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}

	log.Info().Str("username", username).Str("session", sessionID).Msg("Saved text message")
	return &model.ChatUploadResponse{
		MessageID:   messageID,
		Username:    username,
		FilePath:    path,
		Timestamp:   time.Now().Format(chatTimestampLayout),
		MessageType: "text",
	}, nil
}

func (s *ChatServiceImpl) SaveImage(username, sessionID string, data []byte, ext string) (*model.ChatUploadResponse, error) {
	if ext != ".jpg" && ext != ".png" {
		return nil, customerrors.ErrUnsupportedFileType
	}

	dir, err := s.sessionDir(username, sessionID, true)
	if err != nil {
		return nil, err
	}

	messageID := uuid.NewString()
	path := filepath.Join(dir, "image_"+messageID+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	log.Info().Str("username", username).Str("session", sessionID).Msg("Saved image message")
	return &model.ChatUploadResponse{
		MessageID:   messageID,
		Username:    username,
		FilePath:    path,
		Timestamp:   time.Now().Format(chatTimestampLayout),
		MessageType: "image",
	}, nil
}

// SessionMessages lists the stored messages of a session, text first then
// images, each group in filename order.
func (s *ChatServiceImpl) SessionMessages(username, sessionID string) ([]model.ChatMessage, error) {
	dir, err := s.sessionDir(username, sessionID, false)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []model.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	var texts, images []string
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "message_") && strings.HasSuffix(name, ".txt"):
			texts = append(texts, name)
		case strings.HasPrefix(name, "image_"):
			images = append(images, name)
		}
	}
	sort.Strings(texts)
	sort.Strings(images)

	messages := make([]model.ChatMessage, 0, len(texts)+len(images))
	for _, name := range texts {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		messages = append(messages, model.ChatMessage{
			Type:    "text",
			Content: string(content),
			File:    name,
		})
	}
	for _, name := range images {
		messages = append(messages, model.ChatMessage{
			Type: "image",
			File: name,
			Path: filepath.Join(dir, name),
		})
	}
	return messages, nil
}

func (s *ChatServiceImpl) DeleteSession(username, sessionID string) error {
	dir, err := s.sessionDir(username, sessionID, false)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return customerrors.ErrSessionNotFound
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	log.Info().Str("username", username).Str("session", sessionID).Msg("Deleted chat session")
	return nil
}

// FilePath resolves a stored file for download, refusing anything that would
// step outside the session directory.
func (s *ChatServiceImpl) FilePath(username, sessionID, filename string) (string, error) {
	if err := checkPathComponent(filename); err != nil {
		return "", err
	}
	dir, err := s.sessionDir(username, sessionID, false)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", customerrors.ErrSessionNotFound
	}
	return path, nil
}

func (s *ChatServiceImpl) sessionDir(username, sessionID string, create bool) (string, error) {
	if err := checkPathComponent(username); err != nil {
		return "", err
	}
	if err := checkPathComponent(sessionID); err != nil {
		return "", err
	}

	dir := filepath.Join(s.basePath, username, sessionID)
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create session dir: %w", err)
		}
	}
	return dir, nil
}

func checkPathComponent(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return customerrors.ErrInvalidPathComponent
	}
	return nil
}

package model

// --- CHAT HISTORY ---

// ChatMessage is one stored message inside a session directory.
type ChatMessage struct {
	ID        string `json:"message_id,omitempty"`
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	File      string `json:"file"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatSession summarises one session directory of a user.
type ChatSession struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	MessageCount int    `json:"message_count"`
}

// ChatHistoryResponse bundles a session with its ordered messages.
type ChatHistoryResponse struct {
	Session  ChatSession   `json:"session"`
	Messages []ChatMessage `json:"messages"`
}

// ChatUploadResponse is returned after a message or image is stored.
type ChatUploadResponse struct {
	MessageID   string `json:"message_id"`
	Username    string `json:"username"`
	FilePath    string `json:"file_path"`
	Timestamp   string `json:"timestamp"`
	MessageType string `json:"message_type"`
}

// SaveMessageRequest is the payload from the dashboard chat widget.
type SaveMessageRequest struct {
	Username    string `json:"username"`
	SessionID   string `json:"session_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

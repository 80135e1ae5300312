package controller

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/service"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/validator"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(cs service.ChatService) *ChatController {
	return &ChatController{
		chatService: cs,
	}
}

// RegisterRoutes sets up the route group for chat history management.
func (ctrl *ChatController) RegisterRoutes(router *gin.RouterGroup) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("/session", ctrl.createSession)
		chatGroup.GET("/sessions/:username", ctrl.getUserSessions)
		chatGroup.POST("/message", ctrl.saveMessage)
		chatGroup.POST("/upload/:username/:session_id", ctrl.uploadImage)
		chatGroup.GET("/history/:username/:session_id", ctrl.getHistory)
		chatGroup.GET("/file/:username/:session_id/:filename", ctrl.getFile)
		chatGroup.DELETE("/session/:username/:session_id", ctrl.deleteSession)
	}
}

// createSession starts a new chat session for a user.
// @Summary      Create chat session
// @Tags         Chat
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Success      200       {object}  model.Response{data=model.ChatSession}
// @Failure      400       {object}  model.Response
// @Router       /chat/session [post]
func (ctrl *ChatController) createSession(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Username parameter is required",
		})
		return
	}

	sessionID, err := ctrl.chatService.CreateSession(username)
	if err != nil {
		ctrl.handleChatError(c, "Failed to create chat session", err)
		return
	}

	handleSuccess(c, "Session created", model.ChatSession{
		ID:           sessionID,
		Username:     username,
		MessageCount: 0,
	})
}

// getUserSessions lists all chat sessions of a user.
// @Summary      List chat sessions
// @Tags         Chat
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  model.Response{data=[]model.ChatSession}
// @Failure      500       {object}  model.Response
// @Router       /chat/sessions/{username} [get]
func (ctrl *ChatController) getUserSessions(c *gin.Context) {
	sessions, err := ctrl.chatService.UserSessions(c.Param("username"))
	if err != nil {
		ctrl.handleChatError(c, "Failed to list sessions", err)
		return
	}
	handleSuccess(c, "Fetch Success", sessions)
}

// saveMessage stores a text chat message.
// @Summary      Save chat message
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      model.SaveMessageRequest  true  "Message to store"
// @Success      200      {object}  model.Response{data=model.ChatUploadResponse}
// @Failure      400      {object}  model.Response
// @Router       /chat/message [post]
func (ctrl *ChatController) saveMessage(c *gin.Context) {
	var req model.SaveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid message payload", err)
		return
	}
	if req.MessageType == "" {
		req.MessageType = "text"
	}

	if issues := validator.SaveMessageSchema.Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid message payload",
			Error:   validator.FirstIssue(issues),
		})
		return
	}

	if req.MessageType != "text" {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Images must go through the upload endpoint",
		})
		return
	}

	result, err := ctrl.chatService.SaveTextMessage(req.Username, req.SessionID, req.Content)
	if err != nil {
		ctrl.handleChatError(c, "Failed to save message", err)
		return
	}
	handleSuccess(c, "Message saved", result)
}

// uploadImage stores an image for a chat session.
// @Summary      Upload chat image
// @Description  Accepts a multipart jpeg/png upload, stored as image_<id>.<ext> in the session directory.
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        username    path      string  true  "Username"
// @Param        session_id  path      string  true  "Chat session ID"
// @Param        file        formData  file    true  "Image file"
// @Success      200         {object}  model.Response{data=model.ChatUploadResponse}
// @Failure      400         {object}  model.Response
// @Router       /chat/upload/{username}/{session_id} [post]
func (ctrl *ChatController) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "File is required",
		})
		return
	}

	ext, ok := imageExt(fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if !ok {
		handleError(c, http.StatusBadRequest, "Invalid file type, only jpeg/png allowed",
			customerrors.ErrUnsupportedFileType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to open file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to read file", err)
		return
	}

	result, err := ctrl.chatService.SaveImage(c.Param("username"), c.Param("session_id"), data, ext)
	if err != nil {
		ctrl.handleChatError(c, "Failed to upload image", err)
		return
	}
	handleSuccess(c, "Image uploaded", result)
}

// getHistory returns a session and all of its messages.
// @Summary      Get chat history
// @Tags         Chat
// @Produce      json
// @Param        username    path      string  true  "Username"
// @Param        session_id  path      string  true  "Chat session ID"
// @Success      200         {object}  model.Response{data=model.ChatHistoryResponse}
// @Failure      500         {object}  model.Response
// @Router       /chat/history/{username}/{session_id} [get]
func (ctrl *ChatController) getHistory(c *gin.Context) {
	username := c.Param("username")
	sessionID := c.Param("session_id")

	messages, err := ctrl.chatService.SessionMessages(username, sessionID)
	if err != nil {
		ctrl.handleChatError(c, "Failed to retrieve chat history", err)
		return
	}

	handleSuccess(c, "Fetch Success", model.ChatHistoryResponse{
		Session: model.ChatSession{
			ID:           sessionID,
			Username:     username,
			MessageCount: len(messages),
		},
		Messages: messages,
	})
}

// getFile downloads a stored chat file.
// @Summary      Download chat file
// @Tags         Chat
// @Produce      octet-stream
// @Param        username    path  string  true  "Username"
// @Param        session_id  path  string  true  "Chat session ID"
// @Param        filename    path  string  true  "Stored filename"
// @Success      200  {file}    file
// @Failure      404  {object}  model.Response
// @Router       /chat/file/{username}/{session_id}/{filename} [get]
func (ctrl *ChatController) getFile(c *gin.Context) {
	path, err := ctrl.chatService.FilePath(c.Param("username"), c.Param("session_id"), c.Param("filename"))
	if err != nil {
		if errors.Is(err, customerrors.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, model.Response{
				Success: false,
				Message: "File not found",
			})
			return
		}
		ctrl.handleChatError(c, "Failed to retrieve file", err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// deleteSession removes a chat session and everything in it.
// @Summary      Delete chat session
// @Tags         Chat
// @Produce      json
// @Param        username    path      string  true  "Username"
// @Param        session_id  path      string  true  "Chat session ID"
// @Success      200  {object}  model.Response
// @Failure      404  {object}  model.Response
// @Router       /chat/session/{username}/{session_id} [delete]
func (ctrl *ChatController) deleteSession(c *gin.Context) {
	err := ctrl.chatService.DeleteSession(c.Param("username"), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, customerrors.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, model.Response{
				Success: false,
				Message: "Session not found",
			})
			return
		}
		ctrl.handleChatError(c, "Failed to delete session", err)
		return
	}
	handleSuccess(c, "Session deleted", nil)
}

// handleChatError maps service errors onto HTTP statuses.
func (ctrl *ChatController) handleChatError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, customerrors.ErrInvalidPathComponent),
		errors.Is(err, customerrors.ErrUnsupportedFileType):
		status = http.StatusBadRequest
	case errors.Is(err, customerrors.ErrSessionNotFound):
		status = http.StatusNotFound
	}
	handleError(c, status, message, err)
}

func imageExt(contentType, filename string) (string, bool) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	}
	// Some browsers omit the part content type; fall back to the extension.
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return ".jpg", true
	case ".png":
		return ".png", true
	}
	return "", false
}

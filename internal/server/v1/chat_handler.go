package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/internal/chat"
	"github.com/nulzo/assist-router/internal/command"
	"github.com/nulzo/assist-router/internal/server/validator"
	"github.com/nulzo/assist-router/pkg/api"
)

// ChatHandler accepts free-form assistant input and returns the routed
// result, including what the parser made of the input.
type ChatHandler struct {
	service *chat.Service
	parser  *command.Parser
}

func NewChatHandler(service *chat.Service, parser *command.Parser) *ChatHandler {
	return &ChatHandler{service: service, parser: parser}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	result, err := h.service.Send(c.Request.Context(), req.SessionID, req.Input)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to process chat input", err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCommands returns the prefix command table so frontends can offer
// completion without hardcoding the list.
func (h *ChatHandler) ListCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   h.parser.Commands(),
		"help":   h.parser.Help(),
	})
}

package api

import (
	"net/http"

	reqdto "service-desk/internal/handler/dto/request"
	resdto "service-desk/internal/handler/dto/response"
	"service-desk/internal/handler/httperr"
	"service-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat      usecase.ChatUseCase
	agentMode string
}

func NewChatHandler(chat usecase.ChatUseCase, agentMode string) *ChatHandler {
	return &ChatHandler{chat: chat, agentMode: agentMode}
}

// @Summary Health check
// @Description Report liveness and whether a remote agent is configured
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:      "ok",
		AgentLoaded: h.chat.AgentLoaded(),
		AgentMode:   h.agentMode,
	})
}

// @Summary Chat
// @Description Answer one service desk message. Failures surface as an apologetic reply, never as an error status.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Chat request"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.chat.Chat(c.Request.Context(), req.Message, req.SessionState())
	c.Set("intent", res.Intent)
	c.JSON(http.StatusOK, resdto.FromChatResult(res))
}

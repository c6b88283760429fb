package api

import (
	"net/http"

	reqdto "service-desk/internal/handler/dto/request"
	resdto "service-desk/internal/handler/dto/response"
	"service-desk/internal/handler/httperr"
	"service-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssistHandler exposes the single-message helpers: ticket intake from free
// text and the troubleshooting advisor.
type AssistHandler struct {
	intake   usecase.IntakeUseCase
	diagnose func(string) usecase.Diagnosis
}

func NewAssistHandler(intake usecase.IntakeUseCase) *AssistHandler {
	return &AssistHandler{intake: intake, diagnose: usecase.Diagnose}
}

// @Summary Repair intake
// @Description Extract customer name, phone and device from a message and file a ticket once all are present
// @Tags assist
// @Accept json
// @Produce json
// @Param request body reqdto.MessageRequest true "Message"
// @Success 200 {object} resdto.IntakeResponse
// @Success 201 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Router /api/intake [post]
func (h *AssistHandler) Intake(c *gin.Context) {
	var req reqdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.intake.Process(req.Message)
	status := http.StatusOK
	if res.Status == usecase.IntakeTicketCreated {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromIntakeResult(res))
}

// @Summary Troubleshoot
// @Description Suggest first-line fixes for the device and symptoms named in a message
// @Tags assist
// @Accept json
// @Produce json
// @Param request body reqdto.MessageRequest true "Message"
// @Success 200 {object} resdto.DiagnosisResponse
// @Failure 400 {object} map[string]string
// @Router /api/troubleshoot [post]
func (h *AssistHandler) Troubleshoot(c *gin.Context) {
	var req reqdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiagnosis(h.diagnose(req.Message)))
}

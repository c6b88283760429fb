package api

import (
	"net/http"

	reqdto "service-desk/internal/handler/dto/request"
	resdto "service-desk/internal/handler/dto/response"
	"service-desk/internal/handler/httperr"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary Create ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTicketRequest true "Ticket"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Router /api/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req reqdto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, err := h.cmds.CreateTicket(req.ToCommand())
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTicket(t))
}

// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param status query string false "Ticket status"
// @Success 200 {array} resdto.TicketResponse
// @Router /api/tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromTickets(h.q.ListTickets(c.Query("status"))))
}

// @Summary Ticket status
// @Description Exact id match first, then a partial match on the id
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} map[string]string
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	found, err := h.q.GetTicket(c.Param("id"))
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketLookup(found))
}

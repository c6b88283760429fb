package api

import (
	"net/http"
	"strconv"

	"service-desk/internal/domain/inventory"
	reqdto "service-desk/internal/handler/dto/request"
	resdto "service-desk/internal/handler/dto/response"
	"service-desk/internal/handler/httperr"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary List inventory
// @Description List items, optionally narrowed by substring search, tag or status
// @Tags inventory
// @Produce json
// @Param q query string false "Substring search"
// @Param tag query string false "Tag"
// @Param status query string false "available or allocated"
// @Success 200 {array} resdto.InventoryItemResponse
// @Router /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items := h.q.ListItems(queries.InventoryFilters{
		Query:  c.Query("q"),
		Tag:    c.Query("tag"),
		Status: inventory.Status(c.Query("status")),
	})
	c.JSON(http.StatusOK, resdto.FromInventoryItems(items))
}

// @Summary Ranked lookup
// @Description Score items against the query terms, best match first
// @Tags inventory
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Maximum results"
// @Success 200 {object} resdto.LookupResponse
// @Failure 400 {object} map[string]string
// @Router /api/inventory/lookup [get]
func (h *InventoryHandler) Lookup(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	query := c.Query("q")
	matches, err := h.q.Lookup(query, limit)
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLookup(query, matches))
}

// @Summary Inventory summary
// @Description Counts by status and by model
// @Tags inventory
// @Produce json
// @Success 200 {object} resdto.InventorySummaryResponse
// @Router /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromInventorySummary(h.q.Summary()))
}

// @Summary Add item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInventoryItemRequest true "Item"
// @Success 201 {object} resdto.InventoryItemResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	added, err := h.cmds.AddItem(item)
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInventoryItem(added))
}

// @Summary Get item
// @Tags inventory
// @Produce json
// @Param serial path string true "Serial"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{serial} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.q.GetItem(c.Param("serial"))
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryItem(item))
}

// @Summary Update item
// @Description Partial update; the serial cannot change
// @Tags inventory
// @Accept json
// @Produce json
// @Param serial path string true "Serial"
// @Param request body reqdto.UpdateInventoryItemRequest true "Fields to change"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{serial} [patch]
func (h *InventoryHandler) Update(c *gin.Context) {
	var req reqdto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := h.cmds.UpdateItem(c.Param("serial"), req.ToPatch())
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryItem(item))
}

// @Summary Remove item
// @Tags inventory
// @Produce json
// @Param serial path string true "Serial"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{serial} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	item, err := h.cmds.RemoveItem(c.Param("serial"))
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryItem(item))
}

// @Summary Allocate item
// @Tags inventory
// @Accept json
// @Produce json
// @Param serial path string true "Serial"
// @Param request body reqdto.AllocateRequest true "Allocation"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/inventory/{serial}/allocate [post]
func (h *InventoryHandler) Allocate(c *gin.Context) {
	var req reqdto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := h.cmds.Allocate(c.Param("serial"), req.User, req.Reason)
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryItem(item))
}

// @Summary Release item
// @Tags inventory
// @Produce json
// @Param serial path string true "Serial"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{serial}/release [post]
func (h *InventoryHandler) Release(c *gin.Context) {
	item, err := h.cmds.Release(c.Param("serial"))
	if err != nil {
		httperr.AbortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryItem(item))
}

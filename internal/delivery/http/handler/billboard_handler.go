package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type BillboardHandler struct {
	billboardService *service.BillboardService
}

func NewBillboardHandler(billboardService *service.BillboardService) *BillboardHandler {
	return &BillboardHandler{billboardService: billboardService}
}

// @Summary      Create Billboard
// @Tags         Billboards
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        storeId path string true "Store ID"
// @Param        input body entity.CreateBillboardInput true "Label and image URL"
// @Success      201 {object} entity.Billboard
// @Failure      400 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Router       /{storeId}/billboards [post]
func (h *BillboardHandler) Create(c *gin.Context) {
	var input entity.CreateBillboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	billboard, err := h.billboardService.Create(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "BillboardHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, billboard)
}

func (h *BillboardHandler) List(c *gin.Context) {
	billboards, err := h.billboardService.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "BillboardHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, billboards)
}

func (h *BillboardHandler) Get(c *gin.Context) {
	billboard, err := h.billboardService.Get(c.Request.Context(), c.Param("storeId"), c.Param("billboardId"))
	if err != nil {
		respondError(c, "BillboardHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, billboard)
}

func (h *BillboardHandler) Update(c *gin.Context) {
	var input entity.UpdateBillboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	billboard, err := h.billboardService.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("billboardId"), input)
	if err != nil {
		respondError(c, "BillboardHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, billboard)
}

func (h *BillboardHandler) Delete(c *gin.Context) {
	billboard, err := h.billboardService.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("billboardId"))
	if err != nil {
		respondError(c, "BillboardHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, billboard)
}

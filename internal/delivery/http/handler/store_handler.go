package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeService *service.StoreService
}

func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// @Summary      Create Store
// @Tags         Stores
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        input body entity.CreateStoreInput true "Store name"
// @Success      201 {object} entity.Store
// @Failure      400 {object} map[string]interface{}
// @Router       /stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var input entity.CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		respondError(c, "StoreHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, "StoreHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.storeService.Get(c.Request.Context(), userID(c), c.Param("storeId"))
	if err != nil {
		respondError(c, "StoreHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) Update(c *gin.Context) {
	var input entity.UpdateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "StoreHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.storeService.Delete(c.Request.Context(), userID(c), c.Param("storeId")); err != nil {
		respondError(c, "StoreHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "store deleted"})
}

package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var input entity.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "OrderHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), userID(c), c.Param("storeId"))
	if err != nil {
		respondError(c, "OrderHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("orderId"))
	if err != nil {
		respondError(c, "OrderHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var input entity.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("orderId"), input)
	if err != nil {
		respondError(c, "OrderHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	order, err := h.orderService.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("orderId"))
	if err != nil {
		respondError(c, "OrderHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

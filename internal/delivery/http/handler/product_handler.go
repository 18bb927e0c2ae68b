package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// @Summary      Create Product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        storeId path string true "Store ID"
// @Param        input body entity.CreateProductInput true "Product fields; promoPrice must be below price, variant promo prices below their own variant price"
// @Success      201 {object} entity.Product
// @Failure      400 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Router       /{storeId}/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var input entity.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "ProductHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	var filter entity.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "detail": err.Error()})
		return
	}

	products, err := h.productService.List(c.Request.Context(), c.Param("storeId"), filter)
	if err != nil {
		respondError(c, "ProductHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("storeId"), c.Param("productId"))
	if err != nil {
		respondError(c, "ProductHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var input entity.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("productId"), input)
	if err != nil {
		respondError(c, "ProductHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.productService.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("productId"))
	if err != nil {
		respondError(c, "ProductHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

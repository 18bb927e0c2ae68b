package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input entity.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "CategoryHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "CategoryHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("storeId"), c.Param("categoryId"))
	if err != nil {
		respondError(c, "CategoryHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var input entity.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("categoryId"), input)
	if err != nil {
		respondError(c, "CategoryHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	category, err := h.categoryService.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("categoryId"))
	if err != nil {
		respondError(c, "CategoryHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

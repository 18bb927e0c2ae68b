package handler

import (
	"net/http"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
)

// AttributeHandler serves both /sizes and /colors; the instances differ in the
// service's backing collection and in the id route parameter name.
type AttributeHandler struct {
	attributeService *service.AttributeService
	idParam          string
}

func NewSizeHandler(attributeService *service.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService, idParam: "sizeId"}
}

func NewColorHandler(attributeService *service.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService, idParam: "colorId"}
}

func (h *AttributeHandler) Create(c *gin.Context) {
	var input entity.CreateAttributeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	attribute, err := h.attributeService.Create(c.Request.Context(), userID(c), c.Param("storeId"), input)
	if err != nil {
		respondError(c, "AttributeHandler.Create", err)
		return
	}
	c.JSON(http.StatusCreated, attribute)
}

func (h *AttributeHandler) List(c *gin.Context) {
	attributes, err := h.attributeService.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondError(c, "AttributeHandler.List", err)
		return
	}
	c.JSON(http.StatusOK, attributes)
}

func (h *AttributeHandler) Get(c *gin.Context) {
	attribute, err := h.attributeService.Get(c.Request.Context(), c.Param("storeId"), c.Param(h.idParam))
	if err != nil {
		respondError(c, "AttributeHandler.Get", err)
		return
	}
	c.JSON(http.StatusOK, attribute)
}

func (h *AttributeHandler) Update(c *gin.Context) {
	var input entity.UpdateAttributeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	attribute, err := h.attributeService.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param(h.idParam), input)
	if err != nil {
		respondError(c, "AttributeHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, attribute)
}

func (h *AttributeHandler) Delete(c *gin.Context) {
	attribute, err := h.attributeService.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param(h.idParam))
	if err != nil {
		respondError(c, "AttributeHandler.Delete", err)
		return
	}
	c.JSON(http.StatusOK, attribute)
}

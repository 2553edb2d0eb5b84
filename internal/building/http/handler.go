package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/building"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/request"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
)

type Handler struct {
	service building.Service
}

func NewHandler(service building.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBuildingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), building.CreateRequest{
		Name:        body.Name,
		Code:        body.Code,
		Address:     body.Address,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBuildingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid building id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toBuildingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBuildingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), building.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]BuildingResponse, 0, len(items))
	for _, b := range items {
		result = append(result, toBuildingResponse(b))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(result, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid building id"})
		return
	}

	var body UpdateBuildingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, building.UpdateRequest{
		Name:        body.Name,
		Code:        body.Code,
		Address:     body.Address,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toBuildingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid building id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

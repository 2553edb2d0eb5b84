package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/facility"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/request"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		TypeID:     body.TypeID,
		BuildingID: body.BuildingID,
		Name:       body.Name,
		Capacity:   body.Capacity,
		PhotoURL:   body.PhotoURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFacilityResponse(f))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toFacilityResponse(f))
}

func (h *Handler) List(c *gin.Context) {
	var req ListFacilitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), facility.Filter{
		BuildingID: req.BuildingID,
		TypeID:     req.TypeID,
		Keyword:    req.Keyword,
		OnlyActive: req.OnlyActive,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]FacilityResponse, 0, len(items))
	for _, f := range items {
		result = append(result, toFacilityResponse(f))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(result, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	var body UpdateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, facility.UpdateRequest{
		TypeID:     body.TypeID,
		BuildingID: body.BuildingID,
		Name:       body.Name,
		Capacity:   body.Capacity,
		PhotoURL:   body.PhotoURL,
		IsActive:   body.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toFacilityResponse(f))
}

func (h *Handler) SetMaintenance(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	var body SetMaintenanceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.SetMaintenance(c.Request.Context(), uri.ID, facility.MaintenanceRequest{
		Until:  body.Until,
		Reason: body.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toFacilityResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/facilitytype"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/request"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
)

type Handler struct {
	service facilitytype.Service
}

func NewHandler(service facilitytype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFacilityTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ft, err := h.service.Create(c.Request.Context(), facilitytype.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFacilityTypeResponse(ft))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility type id"})
		return
	}

	ft, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toFacilityTypeResponse(ft))
}

func (h *Handler) List(c *gin.Context) {
	var req ListFacilityTypesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), facilitytype.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]FacilityTypeResponse, 0, len(items))
	for _, ft := range items {
		result = append(result, toFacilityTypeResponse(ft))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(result, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility type id"})
		return
	}

	var body UpdateFacilityTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ft, err := h.service.Update(c.Request.Context(), uri.ID, facilitytype.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toFacilityTypeResponse(ft))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility type id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

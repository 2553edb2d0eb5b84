package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/request"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/timerange"
	"github.com/dimaskresna/campus-booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		RequesterID: auth.GetUserID(c),
		FacilityID:  body.FacilityID,
		Date:        body.Date,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Purpose:     body.Purpose,
		Attendees:   body.Attendees,
		ProposalURL: body.ProposalURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		FacilityID: req.FacilityID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	if req.Status != "" {
		status, err := reservation.ParseStatus(req.Status)
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.Status = status
	}

	if req.DateFrom != "" {
		t, err := time.ParseInLocation(timerange.DateLayout, req.DateFrom, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
			return
		}
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, err := time.ParseInLocation(timerange.DateLayout, req.DateTo, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
			return
		}
		end := t.AddDate(0, 0, 1)
		filter.DateTo = &end
	}

	// Non-admin callers only see their own reservations.
	if !auth.IsAdmin(c) {
		filter.RequesterID = auth.GetUserID(c)
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]ReservationResponse, 0, len(items))
	for _, res := range items {
		result = append(result, toReservationResponse(res))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(result, req.Page, req.PageSize, total))
}

func (h *Handler) Edit(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	var body EditReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Edit(c.Request.Context(), uri.ID, reservation.EditRequest{
		Date:        body.Date,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Purpose:     body.Purpose,
		Attendees:   body.Attendees,
		ProposalURL: body.ProposalURL,
	}, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	status, err := reservation.ParseStatus(body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Decide(c.Request.Context(), uri.ID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *Handler) Availability(c *gin.Context) {
	var uri struct {
		FacilityID int64 `uri:"facilityId" binding:"required,min=1"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.service.Availability(c.Request.Context(), uri.FacilityID, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		FacilityID: uri.FacilityID,
		Date:       req.Date,
		Slots:      toSlotResponses(slots),
	})
}

package http

import (
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/reservation"
)

type CreateReservationRequest struct {
	FacilityID  int64  `json:"facility_id" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Purpose     string `json:"purpose" binding:"required"`
	Attendees   int    `json:"attendees" binding:"required,min=1"`
	ProposalURL string `json:"proposal_url"`
}

type EditReservationRequest struct {
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Purpose     *string `json:"purpose"`
	Attendees   *int    `json:"attendees" binding:"omitempty,min=1"`
	ProposalURL *string `json:"proposal_url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListReservationsRequest struct {
	FacilityID int64  `form:"facility_id"`
	Status     string `form:"status"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type AvailabilityRequest struct {
	Date string `form:"date" binding:"required"`
}

type ReservationResponse struct {
	ID            int64     `json:"id"`
	FacilityID    int64     `json:"facility_id"`
	FacilityName  string    `json:"facility_name"`
	RequesterID   int64     `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Purpose       string    `json:"purpose"`
	Attendees     int       `json:"attendees"`
	ProposalURL   string    `json:"proposal_url,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SlotResponse struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Available  bool   `json:"available"`
	OccupiedBy string `json:"occupied_by,omitempty"`
}

type AvailabilityResponse struct {
	FacilityID int64          `json:"facility_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func toReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		FacilityID:    r.FacilityID,
		FacilityName:  r.FacilityName,
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		Purpose:       r.Purpose,
		Attendees:     r.Attendees,
		ProposalURL:   r.ProposalURL,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toSlotResponses(slots []reservation.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			Start:      s.Start,
			End:        s.End,
			Available:  s.Available,
			OccupiedBy: s.OccupiedBy,
		})
	}
	return result
}

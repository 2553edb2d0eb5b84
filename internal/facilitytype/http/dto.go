package http

import (
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/facilitytype"
)

type CreateFacilityTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateFacilityTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ListFacilityTypesRequest struct {
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type FacilityTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFacilityTypeResponse(ft *facilitytype.FacilityType) FacilityTypeResponse {
	return FacilityTypeResponse{
		ID:          ft.ID,
		Name:        ft.Name,
		Description: ft.Description,
		CreatedAt:   ft.CreatedAt,
	}
}

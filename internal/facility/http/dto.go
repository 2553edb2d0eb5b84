package http

import (
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/facility"
)

type CreateFacilityRequest struct {
	TypeID     int64  `json:"facility_type_id" binding:"required,min=1"`
	BuildingID int64  `json:"building_id" binding:"required,min=1"`
	Name       string `json:"name" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	PhotoURL   string `json:"photo_url"`
}

type UpdateFacilityRequest struct {
	TypeID     *int64  `json:"facility_type_id" binding:"omitempty,min=1"`
	BuildingID *int64  `json:"building_id" binding:"omitempty,min=1"`
	Name       *string `json:"name"`
	Capacity   *int    `json:"capacity" binding:"omitempty,min=1"`
	PhotoURL   *string `json:"photo_url"`
	IsActive   *bool   `json:"is_active"`
}

type SetMaintenanceRequest struct {
	Until  *time.Time `json:"until"`
	Reason *string    `json:"reason"`
}

type ListFacilitiesRequest struct {
	BuildingID int64  `form:"building_id"`
	TypeID     int64  `form:"facility_type_id"`
	Keyword    string `form:"keyword"`
	OnlyActive bool   `form:"only_active"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type FacilityResponse struct {
	ID                int64      `json:"id"`
	TypeID            int64      `json:"facility_type_id"`
	TypeName          string     `json:"facility_type_name"`
	BuildingID        int64      `json:"building_id"`
	BuildingName      string     `json:"building_name"`
	Name              string     `json:"name"`
	Capacity          int        `json:"capacity"`
	PhotoURL          string     `json:"photo_url"`
	IsActive          bool       `json:"is_active"`
	MaintenanceUntil  *time.Time `json:"maintenance_until,omitempty"`
	MaintenanceReason *string    `json:"maintenance_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:                f.ID,
		TypeID:            f.TypeID,
		TypeName:          f.TypeName,
		BuildingID:        f.BuildingID,
		BuildingName:      f.BuildingName,
		Name:              f.Name,
		Capacity:          f.Capacity,
		PhotoURL:          f.PhotoURL,
		IsActive:          f.IsActive,
		MaintenanceUntil:  f.MaintenanceUntil,
		MaintenanceReason: f.MaintenanceReason,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

package http

import (
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/building"
)

type CreateBuildingRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type UpdateBuildingRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

type ListBuildingsRequest struct {
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type BuildingResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBuildingResponse(b *building.Building) BuildingResponse {
	return BuildingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Code:        b.Code,
		Address:     b.Address,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

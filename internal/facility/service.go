package facility

import (
	"context"
	"strings"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/clock"
)

type CreateRequest struct {
	TypeID     int64
	BuildingID int64
	Name       string
	Capacity   int
	PhotoURL   string
}

type UpdateRequest struct {
	TypeID     *int64
	BuildingID *int64
	Name       *string
	Capacity   *int
	PhotoURL   *string
	IsActive   *bool
}

// MaintenanceRequest schedules or clears a maintenance window.
// A nil Until clears the window.
type MaintenanceRequest struct {
	Until  *time.Time
	Reason *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error)
	SetMaintenance(ctx context.Context, id int64, req MaintenanceRequest) (*Facility, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	clk  clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clk: clk}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	f := &Facility{
		TypeID:     req.TypeID,
		BuildingID: req.BuildingID,
		Name:       name,
		Capacity:   req.Capacity,
		PhotoURL:   req.PhotoURL,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, f.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeID != nil {
		f.TypeID = *req.TypeID
	}
	if req.BuildingID != nil {
		f.BuildingID = *req.BuildingID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		f.Name = name
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		f.Capacity = *req.Capacity
	}
	if req.PhotoURL != nil {
		f.PhotoURL = *req.PhotoURL
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) SetMaintenance(ctx context.Context, id int64, req MaintenanceRequest) (*Facility, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Until != nil && !req.Until.After(s.clk.Now()) {
		return nil, ErrInvalidWindow
	}

	reason := req.Reason
	if req.Until == nil {
		reason = nil
	}

	if err := s.repo.SetMaintenance(ctx, id, req.Until, reason); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package reservation

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/facility"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/clock"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/timerange"
)

// FacilityDirectory is the slice of the facility catalog the admission
// checks need.
type FacilityDirectory interface {
	GetByID(ctx context.Context, id int64) (*facility.Facility, error)
}

// Notifier delivers lifecycle messages to requesters. Failures are logged
// and swallowed: a reservation outcome never depends on delivery.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message string) error
}

type CreateRequest struct {
	RequesterID int64
	FacilityID  int64
	Date        string
	StartTime   string
	EndTime     string
	Purpose     string
	Attendees   int
	ProposalURL string
}

type EditRequest struct {
	Date        *string
	StartTime   *string
	EndTime     *string
	Purpose     *string
	Attendees   *int
	ProposalURL *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id, viewerID int64, viewerIsAdmin bool) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Edit(ctx context.Context, id int64, req EditRequest, requesterID int64) (*Reservation, error)
	Cancel(ctx context.Context, id, requesterID int64) (*Reservation, error)
	Decide(ctx context.Context, id int64, next Status) (*Reservation, error)
	Availability(ctx context.Context, facilityID int64, date string) ([]Slot, error)
}

type service struct {
	repo         Repository
	facilities   FacilityDirectory
	notifier     Notifier
	clk          clock.Clock
	loc          *time.Location
	leadTimeDays int
}

func NewService(repo Repository, facilities FacilityDirectory, notifier Notifier, clk clock.Clock, loc *time.Location, leadTimeDays int) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{
		repo:         repo,
		facilities:   facilities,
		notifier:     notifier,
		clk:          clk,
		loc:          loc,
		leadTimeDays: leadTimeDays,
	}
}

// admit runs the full validation sequence for a submission or edit and
// returns the parsed range. Each failure is terminal; later checks are not
// evaluated.
func (s *service) admit(ctx context.Context, facilityID int64, date, start, end, purpose string, attendees int) (timerange.TimeRange, error) {
	rng, err := timerange.New(date, start, end)
	if err != nil {
		return timerange.TimeRange{}, apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}
	if len(strings.TrimSpace(purpose)) < minPurposeLength {
		return timerange.TimeRange{}, ErrPurposeTooShort
	}
	if attendees < 1 {
		return timerange.TimeRange{}, ErrInvalidAttendees
	}

	f, err := s.facilities.GetByID(ctx, facilityID)
	if err != nil {
		return timerange.TimeRange{}, err
	}
	if !f.IsActive {
		return timerange.TimeRange{}, ErrFacilityInactive
	}

	if attendees > f.Capacity {
		return timerange.TimeRange{}, apperror.Wrapf(ErrCapacityExceeded, http.StatusBadRequest,
			"attendees exceed facility capacity: requested %d, capacity %d", attendees, f.Capacity)
	}

	now := s.clk.Now().In(s.loc)

	if f.UnderMaintenance(now) {
		reason := "scheduled maintenance"
		if f.MaintenanceReason != nil && *f.MaintenanceReason != "" {
			reason = *f.MaintenanceReason
		}
		return timerange.TimeRange{}, apperror.Wrapf(ErrMaintenance, http.StatusBadRequest,
			"facility is under maintenance until %s: %s",
			f.MaintenanceUntil.In(s.loc).Format(timerange.DateLayout), reason)
	}

	if days := daysUntil(now, rng.StartTime(s.loc)); days < s.leadTimeDays {
		return timerange.TimeRange{}, apperror.Wrapf(ErrLeadTime, http.StatusBadRequest,
			"booking date must be at least %d days ahead, got %d", s.leadTimeDays, days)
	}

	return rng, nil
}

// daysUntil counts whole calendar days between now and the booking date,
// ignoring time of day on both sides. Both dates are rebuilt in UTC so
// the count is exact across DST transitions in the service location.
func daysUntil(now, target time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today) / (24 * time.Hour))
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	rng, err := s.admit(ctx, req.FacilityID, req.Date, req.StartTime, req.EndTime, req.Purpose, req.Attendees)
	if err != nil {
		return nil, err
	}

	res := &Reservation{
		FacilityID:  req.FacilityID,
		RequesterID: req.RequesterID,
		Purpose:     strings.TrimSpace(req.Purpose),
		Attendees:   req.Attendees,
		ProposalURL: req.ProposalURL,
		StartTime:   rng.StartTime(s.loc),
		EndTime:     rng.EndTime(s.loc),
		Status:      StatusPending,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.notify(ctx, res.RequesterID, "Reservation submitted",
		fmt.Sprintf("Your reservation request for %s is pending approval.", rng))

	return s.repo.GetByID(ctx, res.ID)
}

func (s *service) GetByID(ctx context.Context, id, viewerID int64, viewerIsAdmin bool) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewerIsAdmin && res.RequesterID != viewerID {
		return nil, ErrPermissionDenied
	}
	return res, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Edit(ctx context.Context, id int64, req EditRequest, requesterID int64) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RequesterID != requesterID {
		return nil, ErrPermissionDenied
	}
	if res.Status != StatusPending {
		return nil, ErrNotEditable
	}

	current := timerange.FromTimes(res.StartTime, res.EndTime, s.loc)
	date, start, end := current.Date, current.Start, current.End
	if req.Date != nil {
		date = *req.Date
	}
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	purpose := res.Purpose
	if req.Purpose != nil {
		purpose = *req.Purpose
	}
	attendees := res.Attendees
	if req.Attendees != nil {
		attendees = *req.Attendees
	}
	if req.ProposalURL != nil {
		res.ProposalURL = *req.ProposalURL
	}

	// Edits are treated like new submissions: the whole sequence runs
	// again, with the lead-time rule applied to the new requested date.
	rng, err := s.admit(ctx, res.FacilityID, date, start, end, purpose, attendees)
	if err != nil {
		return nil, err
	}

	res.Purpose = strings.TrimSpace(purpose)
	res.Attendees = attendees
	res.StartTime = rng.StartTime(s.loc)
	res.EndTime = rng.EndTime(s.loc)

	if err := s.repo.Reschedule(ctx, res); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id, requesterID int64) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RequesterID != requesterID {
		return nil, ErrPermissionDenied
	}
	if !res.Status.CanTransitionTo(StatusCanceled) {
		return nil, apperror.Wrapf(ErrInvalidTransition, http.StatusConflict,
			"cannot cancel a reservation in status %q", res.Status)
	}
	if !s.clk.Now().In(s.loc).Before(res.EndTime) {
		return nil, ErrAlreadyEnded
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCanceled); err != nil {
		return nil, err
	}

	res.Status = StatusCanceled
	return res, nil
}

// Decide applies an admin approval or rejection.
func (s *service) Decide(ctx context.Context, id int64, next Status) (*Reservation, error) {
	if next != StatusApproved && next != StatusRejected {
		return nil, apperror.Wrapf(ErrInvalidTransition, http.StatusConflict,
			"admins may only set status to %q or %q", StatusApproved, StatusRejected)
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransitionTo(next) {
		return nil, apperror.Wrapf(ErrInvalidTransition, http.StatusConflict,
			"cannot move reservation from %q to %q", res.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	res.Status = next

	rng := timerange.FromTimes(res.StartTime, res.EndTime, s.loc)
	switch next {
	case StatusApproved:
		s.notify(ctx, res.RequesterID, "Reservation approved",
			fmt.Sprintf("Your reservation for %s on %s has been approved.", res.FacilityName, rng))
	case StatusRejected:
		s.notify(ctx, res.RequesterID, "Reservation rejected",
			fmt.Sprintf("Your reservation for %s on %s has been rejected.", res.FacilityName, rng))
	}

	return res, nil
}

func (s *service) Availability(ctx context.Context, facilityID int64, date string) ([]Slot, error) {
	if _, err := time.Parse(timerange.DateLayout, date); err != nil {
		return nil, apperror.Wrap(timerange.ErrInvalidDate, http.StatusBadRequest, timerange.ErrInvalidDate.Error())
	}
	if _, err := s.facilities.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}

	dayStart, _ := time.ParseInLocation(timerange.DateLayout, date, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	active, err := s.repo.FindActiveByFacilityRange(ctx, facilityID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return BuildSlotGrid(date, active, s.loc), nil
}

func (s *service) notify(ctx context.Context, userID int64, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, title, message); err != nil {
		log.Printf("reservation: notify user %d failed: %v", userID, err)
	}
}

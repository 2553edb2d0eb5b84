package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts a new pending reservation. The conflict check and the
	// insert run in one serializable transaction so that of two racing
	// submissions for an overlapping range, exactly one commits.
	Create(ctx context.Context, r *Reservation) error

	// Reschedule rewrites the time range, purpose, attendees and proposal
	// of an existing reservation under the same serializable conflict
	// discipline, ignoring the reservation's own row.
	Reschedule(ctx context.Context, r *Reservation) error

	GetByID(ctx context.Context, id int64) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// FindActiveByFacilityRange returns pending/approved reservations for
	// the facility whose time range intersects [start, end).
	FindActiveByFacilityRange(ctx context.Context, facilityID int64, start, end time.Time) ([]*Reservation, error)

	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// mapWriteError translates storage-level failures on the insert/update path
// into business errors. A serialization failure or exclusion violation means
// a racing reservation won the slot; an FK violation means the facility is
// gone.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.ExclusionViolation:
			return ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return ErrFacilityNotFound
		}
	}
	return nil
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	conflict, err := hasActiveOverlap(ctx, tx, res.FacilityID, res.StartTime, res.EndTime, 0)
	if err != nil {
		return err
	}
	if conflict {
		return ErrConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("facility_id", "requester_id", "purpose", "attendees", "proposal_url", "start_time", "end_time", "status").
		Values(res.FacilityID, res.RequesterID, res.Purpose, res.Attendees, res.ProposalURL, res.StartTime, res.EndTime, res.Status).
		Suffix("RETURNING reservation_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("commit create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Reschedule(ctx context.Context, res *Reservation) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin reschedule tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	conflict, err := hasActiveOverlap(ctx, tx, res.FacilityID, res.StartTime, res.EndTime, res.ID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("purpose", res.Purpose).
		Set("attendees", res.Attendees).
		Set("proposal_url", res.ProposalURL).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"reservation_id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reschedule query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("reschedule reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("commit reschedule failed: %w", err)
	}
	return nil
}

// hasActiveOverlap reports whether any pending/approved reservation for the
// facility intersects [start, end). Intervals are half-open, so back-to-back
// reservations do not collide.
func hasActiveOverlap(ctx context.Context, tx pgx.Tx, facilityID int64, start, end time.Time, excludeID int64) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID > 0 {
		sub = sub.Where(squirrel.NotEq{"reservation_id": excludeID})
	}

	sql, args, err := sub.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

const reservationSelectColumns = `
	r.reservation_id, r.facility_id, f.name, r.requester_id, u.full_name,
	r.purpose, r.attendees, r.proposal_url, r.start_time, r.end_time,
	r.status, r.created_at, r.updated_at`

func scanReservation(row pgx.Row, res *Reservation, extra ...any) error {
	dest := []any{
		&res.ID, &res.FacilityID, &res.FacilityName, &res.RequesterID, &res.RequesterName,
		&res.Purpose, &res.Attendees, &res.ProposalURL, &res.StartTime, &res.EndTime,
		&res.Status, &res.CreatedAt, &res.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	query := `
		SELECT` + reservationSelectColumns + `
		FROM public.reservations r
		JOIN public.facilities f ON f.facility_id = r.facility_id
		JOIN public.users u ON u.user_id = r.requester_id
		WHERE r.reservation_id = $1
	`
	var res Reservation
	if err := scanReservation(r.pool.QueryRow(ctx, query, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

// listQuery builds the filtered listing query. Date bounds form a
// half-open window: DateFrom is inclusive against end_time, DateTo is an
// exclusive upper bound against start_time (handlers pass next-day
// midnight for an inclusive date_to parameter).
func listQuery(filter Filter) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.reservation_id", "r.facility_id", "f.name", "r.requester_id", "u.full_name",
		"r.purpose", "r.attendees", "r.proposal_url", "r.start_time", "r.end_time",
		"r.status", "r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations r").
		Join("public.facilities f ON f.facility_id = r.facility_id").
		Join("public.users u ON u.user_id = r.requester_id")

	if filter.RequesterID > 0 {
		query = query.Where(squirrel.Eq{"r.requester_id": filter.RequesterID})
	}
	if filter.FacilityID > 0 {
		query = query.Where(squirrel.Eq{"r.facility_id": filter.FacilityID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.end_time": filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.Lt{"r.start_time": filter.DateTo})
	}

	query = query.OrderBy("r.start_time DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	return query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	sql, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := scanReservation(rows, &res, &total); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, total, nil
}

func (r *pgxRepository) FindActiveByFacilityRange(ctx context.Context, facilityID int64, start, end time.Time) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.reservation_id", "r.facility_id", "f.name", "r.requester_id", "u.full_name",
		"r.purpose", "r.attendees", "r.proposal_url", "r.start_time", "r.end_time",
		"r.status", "r.created_at", "r.updated_at",
	).
		From("public.reservations r").
		Join("public.facilities f ON f.facility_id = r.facility_id").
		Join("public.users u ON u.user_id = r.requester_id").
		Where(squirrel.Eq{"r.facility_id": facilityID}).
		Where(squirrel.Eq{"r.status": activeStatuses}).
		Where(squirrel.Lt{"r.start_time": end}).
		Where(squirrel.Gt{"r.end_time": start}).
		OrderBy("r.start_time ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find active reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find active reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		var res Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"reservation_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package facility

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
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id int64) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, f *Facility) error
	SetMaintenance(ctx context.Context, id int64, until *time.Time, reason *string) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func mapFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "facilities_building_id_fkey":
			return ErrInvalidBuilding
		case "facilities_facility_type_id_fkey":
			return ErrInvalidType
		}
	}
	return nil
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.facilities").
		Columns("facility_type_id", "building_id", "name", "capacity", "photo_url", "is_active").
		Values(f.TypeID, f.BuildingID, f.Name, f.Capacity, f.PhotoURL, f.IsActive).
		Suffix("RETURNING facility_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create facility query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if mapped := mapFKViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

const facilitySelectColumns = `
	f.facility_id, f.facility_type_id, f.building_id, f.name, f.capacity,
	f.photo_url, f.is_active, f.maintenance_until, f.maintenance_reason,
	f.created_at, f.updated_at, ft.name AS type_name, b.name AS building_name`

func scanFacility(row pgx.Row, f *Facility, extra ...any) error {
	dest := []any{
		&f.ID, &f.TypeID, &f.BuildingID, &f.Name, &f.Capacity,
		&f.PhotoURL, &f.IsActive, &f.MaintenanceUntil, &f.MaintenanceReason,
		&f.CreatedAt, &f.UpdatedAt, &f.TypeName, &f.BuildingName,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Facility, error) {
	query := `
		SELECT` + facilitySelectColumns + `
		FROM public.facilities f
		JOIN public.facility_types ft ON ft.facility_type_id = f.facility_type_id
		JOIN public.buildings b ON b.building_id = f.building_id
		WHERE f.facility_id = $1
	`
	var f Facility
	if err := scanFacility(r.pool.QueryRow(ctx, query, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"f.facility_id", "f.facility_type_id", "f.building_id", "f.name", "f.capacity",
		"f.photo_url", "f.is_active", "f.maintenance_until", "f.maintenance_reason",
		"f.created_at", "f.updated_at", "ft.name AS type_name", "b.name AS building_name",
		"count(*) OVER() AS total_count",
	).
		From("public.facilities f").
		Join("public.facility_types ft ON ft.facility_type_id = f.facility_type_id").
		Join("public.buildings b ON b.building_id = f.building_id")

	if filter.BuildingID > 0 {
		query = query.Where(squirrel.Eq{"f.building_id": filter.BuildingID})
	}
	if filter.TypeID > 0 {
		query = query.Where(squirrel.Eq{"f.facility_type_id": filter.TypeID})
	}
	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"f.name": "%" + filter.Keyword + "%"})
	}
	if filter.OnlyActive {
		query = query.Where(squirrel.Eq{"f.is_active": true})
	}

	query = query.OrderBy("b.name ASC", "f.name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list facilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Facility
	var total int

	for rows.Next() {
		var f Facility
		if err := scanFacility(rows, &f, &total); err != nil {
			return nil, 0, fmt.Errorf("scan facility failed: %w", err)
		}
		result = append(result, &f)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("facility_type_id", f.TypeID).
		Set("building_id", f.BuildingID).
		Set("name", f.Name).
		Set("capacity", f.Capacity).
		Set("photo_url", f.PhotoURL).
		Set("is_active", f.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"facility_id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if mapped := mapFKViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetMaintenance(ctx context.Context, id int64, until *time.Time, reason *string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("maintenance_until", until).
		Set("maintenance_reason", reason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"facility_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set maintenance query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set maintenance failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.facilities").
		Where(squirrel.Eq{"facility_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

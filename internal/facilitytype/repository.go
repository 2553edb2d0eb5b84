package facilitytype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, ft *FacilityType) error
	GetByID(ctx context.Context, id int64) (*FacilityType, error)
	List(ctx context.Context, filter Filter) ([]*FacilityType, int, error)
	Update(ctx context.Context, ft *FacilityType) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ft *FacilityType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.facility_types").
		Columns("name", "description").
		Values(ft.Name, ft.Description).
		Suffix("RETURNING facility_type_id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create facility type query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ft.ID, &ft.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("create facility type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*FacilityType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("facility_type_id", "name", "description", "created_at").
		From("public.facility_types").
		Where(squirrel.Eq{"facility_type_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get facility type query failed: %w", err)
	}

	var ft FacilityType
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&ft.ID, &ft.Name, &ft.Description, &ft.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility type failed: %w", err)
	}
	return &ft, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*FacilityType, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"facility_type_id", "name", "description", "created_at",
		"count(*) OVER() as total_count",
	).From("public.facility_types")

	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Keyword + "%"})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list facility types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facility types failed: %w", err)
	}
	defer rows.Close()

	var result []*FacilityType
	var total int

	for rows.Next() {
		var ft FacilityType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Description, &ft.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan facility type failed: %w", err)
		}
		result = append(result, &ft)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, ft *FacilityType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facility_types").
		Set("name", ft.Name).
		Set("description", ft.Description).
		Where(squirrel.Eq{"facility_type_id": ft.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update facility type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("update facility type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.facility_types").
		Where(squirrel.Eq{"facility_type_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete facility type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete facility type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package building

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Building) error
	GetByID(ctx context.Context, id int64) (*Building, error)
	List(ctx context.Context, filter Filter) ([]*Building, int, error)
	Update(ctx context.Context, b *Building) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Building) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.buildings").
		Columns("name", "code", "address", "description").
		Values(b.Name, b.Code, b.Address, b.Description).
		Suffix("RETURNING building_id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create building query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create building failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Building, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("building_id", "name", "code", "address", "description", "created_at").
		From("public.buildings").
		Where(squirrel.Eq{"building_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get building query failed: %w", err)
	}

	var b Building
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.Name, &b.Code, &b.Address, &b.Description, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get building failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Building, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"building_id", "name", "code", "address", "description", "created_at",
		"count(*) OVER() as total_count",
	).From("public.buildings")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
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
		return nil, 0, fmt.Errorf("build list buildings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list buildings failed: %w", err)
	}
	defer rows.Close()

	var result []*Building
	var total int

	for rows.Next() {
		var b Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Address, &b.Description, &b.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan building failed: %w", err)
		}
		result = append(result, &b)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Building) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.buildings").
		Set("name", b.Name).
		Set("code", b.Code).
		Set("address", b.Address).
		Set("description", b.Description).
		Where(squirrel.Eq{"building_id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update building query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update building failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.buildings").
		Where(squirrel.Eq{"building_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete building query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete building failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package categories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floracart/floracart/internal/platform/httpx"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, category Category) error
	Delete(ctx context.Context, id int64) error
	Recount(ctx context.Context, slug string) error
	RecountAll(ctx context.Context) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const categoryColumns = `id, name, name_localized, slug, item_count, image_url, created_at, updated_at`

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.NameLocalized, &c.Slug, &c.ItemCount, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, httpx.ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

// ListAll returns every category; the storefront shows them unpaginated.
func (r *repository) ListAll(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameLocalized, &c.Slug, &c.ItemCount, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	return scanCategory(row)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	return scanCategory(row)
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	now := time.Now()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, name_localized, slug, item_count, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, 0, $4, $5, $5)
		 RETURNING `+categoryColumns,
		category.Name, category.NameLocalized, category.Slug, category.ImageURL, now)
	created, err := scanCategory(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Category{}, fmt.Errorf("slug %q: %w", category.Slug, httpx.ErrDuplicate)
		}
		return Category{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, category Category) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE categories SET name = $1, name_localized = $2, slug = $3, image_url = $4, updated_at = $5 WHERE id = $6`,
		category.Name, category.NameLocalized, category.Slug, category.ImageURL, time.Now(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %q: %w", category.Slug, httpx.ErrDuplicate)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Recount replaces the cached item count with the authoritative COUNT(*).
func (r *repository) Recount(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE categories
		 SET item_count = (SELECT COUNT(*) FROM products WHERE products.category_slug = categories.slug),
		     updated_at = $1
		 WHERE slug = $2`, time.Now(), slug)
	return err
}

func (r *repository) RecountAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE categories
		 SET item_count = (SELECT COUNT(*) FROM products WHERE products.category_slug = categories.slug),
		     updated_at = $1`, time.Now())
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floracart/floracart/internal/platform/db"
	"github.com/floracart/floracart/internal/platform/httpx"
)

// ListRequest describes one page-limited catalog query.
type ListRequest struct {
	CategorySlug string
	After        *Cursor
	Limit        int
}

type Repository interface {
	Get(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, req ListRequest) ([]Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = `id, name, name_localized, price, description, category_slug, images, specifications, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p     Product
		specs []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.NameLocalized, &p.Price, &p.Description, &p.CategorySlug, &p.Images, &specs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, httpx.ErrNotFound
		}
		return Product{}, err
	}
	p.Specifications = map[string]string{}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return Product{}, fmt.Errorf("decode specifications for product %d: %w", p.ID, err)
		}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// List runs a keyset-paginated query ordered by (created_at DESC, id DESC).
func (r *repository) List(ctx context.Context, req ListRequest) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if req.CategorySlug != "" {
		argCount++
		query += ` AND category_slug = $` + strconv.Itoa(argCount)
		args = append(args, req.CategorySlug)
	}

	if req.After != nil {
		query += ` AND (created_at, id) < ($` + strconv.Itoa(argCount+1) + `, $` + strconv.Itoa(argCount+2) + `)`
		args = append(args, req.After.CreatedAt, req.After.ID)
		argCount += 2
	}

	query += ` ORDER BY created_at DESC, id DESC`

	argCount++
	query += ` LIMIT $` + strconv.Itoa(argCount)
	args = append(args, req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create inserts the product and bumps the referenced category's item count
// in the same transaction. A missing category row is tolerated; dangling
// slugs are allowed by the data model.
func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	specs, err := json.Marshal(product.Specifications)
	if err != nil {
		return Product{}, fmt.Errorf("encode specifications: %w", err)
	}

	var created Product
	err = db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		now := time.Now()
		row := tx.QueryRow(ctx,
			`INSERT INTO products (name, name_localized, price, description, category_slug, images, specifications, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			 RETURNING `+productColumns,
			product.Name, product.NameLocalized, product.Price, product.Description, product.CategorySlug, product.Images, specs, now)
		p, err := scanProduct(row)
		if err != nil {
			return err
		}
		created = p

		_, err = tx.Exec(ctx,
			`UPDATE categories SET item_count = item_count + 1, updated_at = $1 WHERE slug = $2`,
			now, product.CategorySlug)
		return err
	})
	if err != nil {
		return Product{}, err
	}
	return created, nil
}

// Update rewrites the product in place. When the category slug changes the
// old and new counters are both adjusted within the transaction.
func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	specs, err := json.Marshal(product.Specifications)
	if err != nil {
		return fmt.Errorf("encode specifications: %w", err)
	}

	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var oldSlug string
		if err := tx.QueryRow(ctx, `SELECT category_slug FROM products WHERE id = $1 FOR UPDATE`, id).Scan(&oldSlug); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return httpx.ErrNotFound
			}
			return err
		}

		now := time.Now()
		_, err := tx.Exec(ctx,
			`UPDATE products SET name = $1, name_localized = $2, price = $3, description = $4,
			 category_slug = $5, images = $6, specifications = $7, updated_at = $8 WHERE id = $9`,
			product.Name, product.NameLocalized, product.Price, product.Description,
			product.CategorySlug, product.Images, specs, now, id)
		if err != nil {
			return err
		}

		if oldSlug != product.CategorySlug {
			if _, err := tx.Exec(ctx,
				`UPDATE categories SET item_count = GREATEST(item_count - 1, 0), updated_at = $1 WHERE slug = $2`,
				now, oldSlug); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`UPDATE categories SET item_count = item_count + 1, updated_at = $1 WHERE slug = $2`,
				now, product.CategorySlug); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the product and decrements its category's item count in
// the same transaction, exactly once per successful delete.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var slug string
		if err := tx.QueryRow(ctx, `DELETE FROM products WHERE id = $1 RETURNING category_slug`, id).Scan(&slug); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return httpx.ErrNotFound
			}
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE categories SET item_count = GREATEST(item_count - 1, 0), updated_at = $1 WHERE slug = $2`,
			time.Now(), slug)
		return err
	})
}

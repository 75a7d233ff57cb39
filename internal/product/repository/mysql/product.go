package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mall-backend/internal/model"
	"mall-backend/internal/product/repository"
)

const productColumns = "id, name, price, image, images, description"

func scanProduct(scan func(dest ...any) error) (model.Product, error) {
	var p model.Product
	var image, images, description sql.NullString
	if err := scan(&p.ID, &p.Name, &p.Price, &image, &images, &description); err != nil {
		return model.Product{}, err
	}
	p.Image = image.String
	p.Images = decodeImages(images.String)
	p.Description = description.String
	return p, nil
}

// CreateProduct inserts a new catalog row.
func (r *implRepository) CreateProduct(ctx context.Context, p model.Product) error {
	const query = `
		INSERT INTO products (id, name, price, image, images, description)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Price, p.Image, encodeImages(p.Images), p.Description)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProduct"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// GetProduct retrieves a single product by ID.
// Returns zero-value Product (ID == "") when not found, do NOT return error for not-found.
func (r *implRepository) GetProduct(ctx context.Context, id string) (model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = ? LIMIT 1", productColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return model.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProduct"), err)
		return model.Product{}, repository.ErrFailedToGet
	}
	return p, nil
}

// UpdateProduct overwrites all mutable columns of an existing row.
func (r *implRepository) UpdateProduct(ctx context.Context, p model.Product) error {
	const query = `
		UPDATE products
		SET name = ?, price = ?, image = ?, images = ?, description = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Image, encodeImages(p.Images), p.Description, p.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProduct"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

// DeleteProduct removes a catalog row.
func (r *implRepository) DeleteProduct(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProduct"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// ListAll returns the full catalog in natural order.
func (r *implRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products", productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAll"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		products = append(products, p)
	}
	return products, nil
}

// SearchByKeywords returns items whose name or description contains any
// keyword. LIKE on the default collation is case-insensitive for ASCII and a
// plain substring match for CJK text.
func (r *implRepository) SearchByKeywords(ctx context.Context, keywords []string) ([]model.Product, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(keywords)*2)
	args := make([]any, 0, len(keywords)*2)
	for _, kw := range keywords {
		pattern := "%" + kw + "%"
		conds = append(conds, "name LIKE ?", "description LIKE ?")
		args = append(args, pattern, pattern)
	}

	query := fmt.Sprintf("SELECT %s FROM products WHERE %s",
		productColumns, strings.Join(conds, " OR "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchByKeywords"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		products = append(products, p)
	}
	return products, nil
}

package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"mall-backend/internal/cart/repository"
	"mall-backend/internal/model"
)

const cartJoinedColumns = `
	c.id, c.user_id, c.product_id, c.quantity, c.updated_at,
	p.id, p.name, p.price, p.image, p.images, p.description`

func scanCartItem(scan func(dest ...any) error) (model.CartItem, error) {
	var item model.CartItem
	var pID, pName, pImage, pImages, pDescription sql.NullString
	var pPrice sql.NullFloat64
	err := scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.UpdatedAt,
		&pID, &pName, &pPrice, &pImage, &pImages, &pDescription,
	)
	if err != nil {
		return model.CartItem{}, err
	}
	item.Product = model.Product{
		ID:          pID.String,
		Name:        pName.String,
		Price:       pPrice.Float64,
		Image:       pImage.String,
		Description: pDescription.String,
	}
	if pImages.String != "" {
		var images []string
		if json.Unmarshal([]byte(pImages.String), &images) == nil {
			item.Product.Images = images
		}
	}
	return item, nil
}

// ListByUser returns the user's cart joined with the catalog, oldest first.
// A LEFT JOIN keeps lines whose product was deleted out-of-band visible so
// the usecase can still render them.
func (r *implRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT` + cartJoinedColumns + `
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.user_id = ?
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByUser"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		item, err := scanCartItem(rows.Scan)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID returns zero-value CartItem (ID == 0) when not found.
func (r *implRepository) GetByID(ctx context.Context, id int64, userID int64) (model.CartItem, error) {
	query := `
		SELECT` + cartJoinedColumns + `
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.id = ? AND c.user_id = ?
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	item, err := scanCartItem(row.Scan)
	if err == sql.ErrNoRows {
		return model.CartItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return model.CartItem{}, repository.ErrFailedToGet
	}
	return item, nil
}

// GetByProduct returns the user's line for a product, zero-value when absent.
func (r *implRepository) GetByProduct(ctx context.Context, userID int64, productID string) (model.CartItem, error) {
	query := `
		SELECT` + cartJoinedColumns + `
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.user_id = ? AND c.product_id = ?
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, userID, productID)
	item, err := scanCartItem(row.Scan)
	if err == sql.ErrNoRows {
		return model.CartItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByProduct"), err)
		return model.CartItem{}, repository.ErrFailedToGet
	}
	return item, nil
}

func (r *implRepository) Insert(ctx context.Context, userID int64, productID string, quantity int) error {
	const query = `
		INSERT INTO cart_items (user_id, product_id, quantity, updated_at)
		VALUES (?, ?, ?, NOW())`

	if _, err := r.db.ExecContext(ctx, query, userID, productID, quantity); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	const query = `UPDATE cart_items SET quantity = ?, updated_at = NOW() WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, quantity, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateQuantity"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM cart_items WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// DeleteByProduct removes every cart line referencing a product. Called by
// the product usecase when a catalog item is deleted.
func (r *implRepository) DeleteByProduct(ctx context.Context, productID string) error {
	const query = `DELETE FROM cart_items WHERE product_id = ?`

	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByProduct"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

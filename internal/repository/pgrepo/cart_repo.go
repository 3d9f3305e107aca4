package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type CartRepository struct {
	conn uow.DBTX
}

func NewCartRepository(conn uow.DBTX) *CartRepository {
	return &CartRepository{conn: conn}
}

// AddItem добавляет товар в корзину. На пару (user_id, product_id) одна строка,
// повторное добавление инкрементит qty.
func (c *CartRepository) AddItem(ctx context.Context, userID, productID int64, qty int32) error {
	_, err := c.conn.Exec(ctx, `
		INSERT INTO carts (user_id, product_id, qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO UPDATE SET qty = carts.qty + EXCLUDED.qty`,
		userID, productID, qty,
	)
	if err != nil {
		return convertErr(err, "adding product %d to cart of user %d", productID, userID)
	}
	return nil
}

func (c *CartRepository) GetByUserID(ctx context.Context, userID int64) ([]repoargs.PricedCartItem, error) {
	rows, err := c.conn.Query(ctx, `
		SELECT c.id, c.qty, p.id, p.title, p.price, p.image
		FROM carts c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting cart of user %d", userID)
	}
	defer rows.Close()

	var items []repoargs.PricedCartItem
	for rows.Next() {
		var item repoargs.PricedCartItem
		scanErr := rows.Scan(&item.CartID, &item.Qty, &item.ProductID, &item.Title, &item.Price, &item.Image)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning cart item of user %d", userID)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading cart of user %d", userID)
	}
	return items, nil
}

func (c *CartRepository) UpdateQty(ctx context.Context, cartID int64, qty int32) error {
	tag, err := c.conn.Exec(ctx, `UPDATE carts SET qty = $1 WHERE id = $2`, qty, cartID)
	if err != nil {
		return convertErr(err, "updating qty for cart row %d", cartID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating qty for cart row %d", cartID)
	}
	return nil
}

func (c *CartRepository) RemoveItem(ctx context.Context, cartID int64) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return convertErr(err, "removing cart row %d", cartID)
	}
	return nil
}

// ClearByUserID удаляет все строки корзины юзера.
func (c *CartRepository) ClearByUserID(ctx context.Context, userID int64) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return convertErr(err, "clearing cart of user %d", userID)
	}
	return nil
}

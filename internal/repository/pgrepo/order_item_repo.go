package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type OrderItemRepository struct {
	conn uow.DBTX
}

func NewOrderItemRepository(conn uow.DBTX) *OrderItemRepository {
	return &OrderItemRepository{conn: conn}
}

// CopyFromCart переносит текущие строки корзины юзера в order_items одним
// INSERT..SELECT. Это копия, не перемещение - корзина остается нетронутой.
// Возвращает количество скопированных строк.
func (o *OrderItemRepository) CopyFromCart(ctx context.Context, orderID string, userID int64) (int64, error) {
	tag, err := o.conn.Exec(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity)
		SELECT $1, product_id, qty FROM carts WHERE user_id = $2`,
		orderID, userID,
	)
	if err != nil {
		return 0, convertErr(err, "copying cart of user %d into order `%s`", userID, orderID)
	}
	return tag.RowsAffected(), nil
}

// GetPricedItems возвращает строки заказа с названием и ценой из каталога.
func (o *OrderItemRepository) GetPricedItems(
	ctx context.Context,
	orderID string,
) ([]repoargs.PricedOrderItem, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT oi.product_id, oi.quantity, p.title, p.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting order items for order `%s`", orderID)
	}
	defer rows.Close()

	var items []repoargs.PricedOrderItem
	for rows.Next() {
		var item repoargs.PricedOrderItem
		if scanErr := rows.Scan(&item.ProductID, &item.Quantity, &item.Title, &item.Price); scanErr != nil {
			return nil, convertErr(scanErr, "scanning order item for order `%s`", orderID)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading order items for order `%s`", orderID)
	}
	return items, nil
}

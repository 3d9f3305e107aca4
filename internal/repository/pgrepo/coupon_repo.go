package pgrepo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type CouponRepository struct {
	conn uow.DBTX
}

func NewCouponRepository(conn uow.DBTX) *CouponRepository {
	return &CouponRepository{conn: conn}
}

const couponColumns = `id, created_at, updated_at, code, discount_amount, min_amount, expiry_date, is_active`

// FindValidByCode ищет активный и не истекший купон. Код сравнивается в верхнем
// регистре - так он хранится.
func (c *CouponRepository) FindValidByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE code = $1 AND is_active = TRUE AND (expiry_date IS NULL OR expiry_date >= CURRENT_DATE)`,
		strings.ToUpper(code),
	)
	coupon, err := scanCoupon(row)
	if err != nil {
		return nil, convertErr(err, "finding valid coupon by code `%s`", code)
	}
	return coupon, nil
}

func (c *CouponRepository) HasUsage(ctx context.Context, userID, couponID int64) (bool, error) {
	var exists bool
	err := c.conn.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM coupon_usage WHERE user_id = $1 AND coupon_id = $2)`,
		userID, couponID,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking usage of coupon %d by user %d", couponID, userID)
	}
	return exists, nil
}

// RecordUsage фиксирует применение купона. Пара (user_id, coupon_id) уникальна,
// гонка двух параллельных валидаций закрывается индексом - проигравшая получит
// domain.ErrDuplicateKey.
func (c *CouponRepository) RecordUsage(ctx context.Context, userID, couponID int64) error {
	_, err := c.conn.Exec(ctx, `INSERT INTO coupon_usage (user_id, coupon_id) VALUES ($1, $2)`, userID, couponID)
	if err != nil {
		return convertErr(err, "recording usage of coupon %d by user %d", couponID, userID)
	}
	return nil
}

func (c *CouponRepository) GetAll(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting coupons")
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		coupon, scanErr := scanCoupon(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning coupon")
		}
		coupons = append(coupons, *coupon)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading coupons")
	}
	return coupons, nil
}

func (c *CouponRepository) Create(ctx context.Context, args repoargs.CouponSave) (*domain.Coupon, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO coupons (code, discount_amount, min_amount, expiry_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+couponColumns,
		strings.ToUpper(args.Code), args.DiscountAmount, args.MinAmount, args.ExpiryDate, args.IsActive,
	)
	coupon, err := scanCoupon(row)
	if err != nil {
		return nil, convertErr(err, "creating coupon `%s`", args.Code)
	}
	return coupon, nil
}

func (c *CouponRepository) Update(ctx context.Context, id int64, args repoargs.CouponSave) error {
	tag, err := c.conn.Exec(ctx, `
		UPDATE coupons
		SET code = $1, discount_amount = $2, min_amount = $3, expiry_date = $4, is_active = $5, updated_at = now()
		WHERE id = $6`,
		strings.ToUpper(args.Code), args.DiscountAmount, args.MinAmount, args.ExpiryDate, args.IsActive, id,
	)
	if err != nil {
		return convertErr(err, "updating coupon %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating coupon %d", id)
	}
	return nil
}

func (c *CouponRepository) ToggleActive(ctx context.Context, id int64) error {
	tag, err := c.conn.Exec(ctx, `UPDATE coupons SET is_active = NOT is_active, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "toggling coupon %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "toggling coupon %d", id)
	}
	return nil
}

func (c *CouponRepository) Delete(ctx context.Context, id int64) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id); err != nil {
		return convertErr(err, "deleting coupon %d", id)
	}
	return nil
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := row.Scan(
		&coupon.ID,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
		&coupon.Code,
		&coupon.DiscountAmount,
		&coupon.MinAmount,
		&coupon.ExpiryDate,
		&coupon.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

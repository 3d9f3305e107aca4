package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type CommissionRateRepository struct {
	conn uow.DBTX
}

func NewCommissionRateRepository(conn uow.DBTX) *CommissionRateRepository {
	return &CommissionRateRepository{conn: conn}
}

const commissionRateColumns = `id, created_at, updated_at, rate_name, commission_percentage,
	min_sales_amount, is_active, cookie_duration`

// FindBestForAmount возвращает активный уровень с наибольшим min_sales_amount,
// не превышающим amount. Если сумма ниже всех порогов - domain.ErrRecordNotFound.
func (c *CommissionRateRepository) FindBestForAmount(
	ctx context.Context,
	amount decimal.Decimal,
) (*domain.CommissionRate, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT `+commissionRateColumns+`
		FROM commission_rates
		WHERE is_active = TRUE AND min_sales_amount <= $1
		ORDER BY min_sales_amount DESC
		LIMIT 1`,
		amount,
	)
	rate, err := scanCommissionRate(row)
	if err != nil {
		return nil, convertErr(err, "finding commission rate for amount %s", amount.String())
	}
	return rate, nil
}

// FindEntryLevel возвращает активный уровень с наименьшим min_sales_amount.
// Используется как дефолт когда заказ не дотягивает ни до одного порога.
func (c *CommissionRateRepository) FindEntryLevel(ctx context.Context) (*domain.CommissionRate, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT `+commissionRateColumns+`
		FROM commission_rates
		WHERE is_active = TRUE
		ORDER BY min_sales_amount ASC
		LIMIT 1`,
	)
	rate, err := scanCommissionRate(row)
	if err != nil {
		return nil, convertErr(err, "finding entry level commission rate")
	}
	return rate, nil
}

func (c *CommissionRateRepository) GetAll(ctx context.Context) ([]domain.CommissionRate, error) {
	rows, err := c.conn.Query(ctx, `
		SELECT `+commissionRateColumns+`
		FROM commission_rates
		ORDER BY min_sales_amount ASC`,
	)
	if err != nil {
		return nil, convertErr(err, "getting commission rates")
	}
	defer rows.Close()

	var rates []domain.CommissionRate
	for rows.Next() {
		rate, scanErr := scanCommissionRate(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning commission rate")
		}
		rates = append(rates, *rate)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading commission rates")
	}
	return rates, nil
}

func (c *CommissionRateRepository) Create(
	ctx context.Context,
	args repoargs.CommissionRateSave,
) (*domain.CommissionRate, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO commission_rates (rate_name, commission_percentage, min_sales_amount, is_active, cookie_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+commissionRateColumns,
		args.RateName, args.CommissionPercentage, args.MinSalesAmount, args.IsActive, args.CookieDuration,
	)
	rate, err := scanCommissionRate(row)
	if err != nil {
		return nil, convertErr(err, "creating commission rate `%s`", args.RateName)
	}
	return rate, nil
}

func (c *CommissionRateRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.CommissionRateSave,
) error {
	tag, err := c.conn.Exec(ctx, `
		UPDATE commission_rates
		SET rate_name = $1, commission_percentage = $2, min_sales_amount = $3,
			is_active = $4, cookie_duration = $5, updated_at = now()
		WHERE id = $6`,
		args.RateName, args.CommissionPercentage, args.MinSalesAmount, args.IsActive, args.CookieDuration, id,
	)
	if err != nil {
		return convertErr(err, "updating commission rate %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating commission rate %d", id)
	}
	return nil
}

func (c *CommissionRateRepository) Delete(ctx context.Context, id int64) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM commission_rates WHERE id = $1`, id); err != nil {
		return convertErr(err, "deleting commission rate %d", id)
	}
	return nil
}

func scanCommissionRate(row rowScanner) (*domain.CommissionRate, error) {
	var rate domain.CommissionRate
	err := row.Scan(
		&rate.ID,
		&rate.CreatedAt,
		&rate.UpdatedAt,
		&rate.RateName,
		&rate.CommissionPercentage,
		&rate.MinSalesAmount,
		&rate.IsActive,
		&rate.CookieDuration,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

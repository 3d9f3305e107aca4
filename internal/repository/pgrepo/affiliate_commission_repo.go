package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type AffiliateCommissionRepository struct {
	conn uow.DBTX
}

func NewAffiliateCommissionRepository(conn uow.DBTX) *AffiliateCommissionRepository {
	return &AffiliateCommissionRepository{conn: conn}
}

const affiliateCommissionColumns = `id, created_at, affiliate_user_id, order_id, order_amount,
	commission_rate, commission_amount, status, referred_user_id, referral_code`

// Create вставляет комиссию со статусом pending. На order_id висит уникальный
// индекс - повторная атрибуция того же заказа вернет domain.ErrDuplicateKey.
func (a *AffiliateCommissionRepository) Create(
	ctx context.Context,
	args repoargs.AffiliateCommissionCreate,
) (*domain.AffiliateCommission, error) {
	row := a.conn.QueryRow(ctx, `
		INSERT INTO affiliate_commissions
			(affiliate_user_id, order_id, order_amount, commission_rate, commission_amount,
			 status, referred_user_id, referral_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+affiliateCommissionColumns,
		args.AffiliateUserID, args.OrderID, args.OrderAmount, args.CommissionRate,
		args.CommissionAmount, domain.CommissionStatusPending, args.ReferredUserID, args.ReferralCode,
	)
	commission, err := scanAffiliateCommission(row)
	if err != nil {
		return nil, convertErr(err, "creating commission for order `%s`", args.OrderID)
	}
	return commission, nil
}

// GetAll возвращает все комиссии с данными аффилиата, свежие первыми.
func (a *AffiliateCommissionRepository) GetAll(ctx context.Context) ([]repoargs.CommissionWithAffiliate, error) {
	rows, err := a.conn.Query(ctx, `
		SELECT ac.id, ac.created_at, ac.affiliate_user_id, ac.order_id, ac.order_amount,
			ac.commission_rate, ac.commission_amount, ac.status, ac.referred_user_id, ac.referral_code,
			u.username, u.email
		FROM affiliate_commissions ac
		JOIN users u ON ac.affiliate_user_id = u.id
		ORDER BY ac.created_at DESC`,
	)
	if err != nil {
		return nil, convertErr(err, "getting affiliate commissions")
	}
	defer rows.Close()

	var commissions []repoargs.CommissionWithAffiliate
	for rows.Next() {
		var c repoargs.CommissionWithAffiliate
		scanErr := rows.Scan(
			&c.ID, &c.CreatedAt, &c.AffiliateUserID, &c.OrderID, &c.OrderAmount,
			&c.CommissionRate, &c.CommissionAmount, &c.Status, &c.ReferredUserID, &c.ReferralCode,
			&c.AffiliateUsername, &c.AffiliateEmail,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning affiliate commission")
		}
		commissions = append(commissions, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading affiliate commissions")
	}
	return commissions, nil
}

func (a *AffiliateCommissionRepository) GetByAffiliate(
	ctx context.Context,
	affiliateUserID int64,
) ([]domain.AffiliateCommission, error) {
	rows, err := a.conn.Query(ctx, `
		SELECT `+affiliateCommissionColumns+`
		FROM affiliate_commissions
		WHERE affiliate_user_id = $1
		ORDER BY created_at DESC`,
		affiliateUserID,
	)
	if err != nil {
		return nil, convertErr(err, "getting commissions of affiliate %d", affiliateUserID)
	}
	defer rows.Close()

	var commissions []domain.AffiliateCommission
	for rows.Next() {
		commission, scanErr := scanAffiliateCommission(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning commission of affiliate %d", affiliateUserID)
		}
		commissions = append(commissions, *commission)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading commissions of affiliate %d", affiliateUserID)
	}
	return commissions, nil
}

func (a *AffiliateCommissionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CommissionStatusType,
) error {
	tag, err := a.conn.Exec(ctx, `UPDATE affiliate_commissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return convertErr(err, "updating status of commission %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of commission %d", id)
	}
	return nil
}

func scanAffiliateCommission(row rowScanner) (*domain.AffiliateCommission, error) {
	var commission domain.AffiliateCommission
	err := row.Scan(
		&commission.ID,
		&commission.CreatedAt,
		&commission.AffiliateUserID,
		&commission.OrderID,
		&commission.OrderAmount,
		&commission.CommissionRate,
		&commission.CommissionAmount,
		&commission.Status,
		&commission.ReferredUserID,
		&commission.ReferralCode,
	)
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

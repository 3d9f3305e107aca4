package pgrepo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, created_at, updated_at, username, email, country,
	is_affiliate, COALESCE(affiliate_code, '')`

// FindAffiliateByCode ищет юзера с данным реферальным кодом и включенным флагом
// аффилиата. Отсутствие такого юзера - штатный случай, не ошибка бизнес-логики.
func (u *UserRepository) FindAffiliateByCode(ctx context.Context, referralCode string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE affiliate_code = $1 AND is_affiliate = TRUE`,
		referralCode,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by code `%s`", referralCode)
	}
	return user, nil
}

func (u *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	return u.selectUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
}

func (u *UserRepository) GetAffiliates(ctx context.Context) ([]domain.User, error) {
	return u.selectUsers(ctx, `SELECT `+userColumns+` FROM users WHERE is_affiliate = TRUE ORDER BY id ASC`)
}

// MakeAffiliate включает флаг аффилиата и назначает код. Код хранится в верхнем
// регистре и уникален - конфликт вернет domain.ErrDuplicateKey.
func (u *UserRepository) MakeAffiliate(ctx context.Context, userID int64, affiliateCode string) error {
	tag, err := u.conn.Exec(ctx, `
		UPDATE users SET is_affiliate = TRUE, affiliate_code = $1, updated_at = now() WHERE id = $2`,
		strings.ToUpper(affiliateCode), userID,
	)
	if err != nil {
		return convertErr(err, "making user %d an affiliate", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "making user %d an affiliate", userID)
	}
	return nil
}

func (u *UserRepository) RemoveAffiliate(ctx context.Context, userID int64) error {
	tag, err := u.conn.Exec(ctx, `
		UPDATE users SET is_affiliate = FALSE, affiliate_code = NULL, updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return convertErr(err, "removing affiliate status of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "removing affiliate status of user %d", userID)
	}
	return nil
}

func (u *UserRepository) selectUsers(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning user")
		}
		users = append(users, *user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading users")
	}
	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Email,
		&user.Country,
		&user.IsAffiliate,
		&user.AffiliateCode,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

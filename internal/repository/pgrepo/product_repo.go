package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

const productColumns = `id, created_at, updated_at, title, price, COALESCE(description, ''),
	COALESCE(image, ''), commission_percentage`

func (p *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product %d", id)
	}
	return product, nil
}

func (p *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := p.conn.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, convertErr(err, "getting products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning product")
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading products")
	}
	return products, nil
}

func (p *ProductRepository) Create(ctx context.Context, args repoargs.ProductSave) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `
		INSERT INTO products (title, price, description, image, commission_percentage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		args.Title, args.Price, args.Description, args.Image, args.CommissionPercentage,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product `%s`", args.Title)
	}
	return product, nil
}

func (p *ProductRepository) Update(ctx context.Context, id int64, args repoargs.ProductSave) error {
	tag, err := p.conn.Exec(ctx, `
		UPDATE products
		SET title = $1, price = $2, description = $3, image = $4, commission_percentage = $5, updated_at = now()
		WHERE id = $6`,
		args.Title, args.Price, args.Description, args.Image, args.CommissionPercentage, id,
	)
	if err != nil {
		return convertErr(err, "updating product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating product %d", id)
	}
	return nil
}

func (p *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := p.conn.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return convertErr(err, "deleting product %d", id)
	}
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Title,
		&product.Price,
		&product.Description,
		&product.Image,
		&product.CommissionPercentage,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

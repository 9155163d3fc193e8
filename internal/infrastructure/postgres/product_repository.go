package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx). O documento de variantes vive na coluna JSONB
// `variants`; a coluna `stock` guarda o agregado derivado.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price, color, variants, stock, created_at, updated_at`

// Create persiste um produto novo com sua grade.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := json.Marshal(product.Variants)
	if err != nil {
		return fmt.Errorf("serializar variantes: %w", err)
	}
	query := `
		INSERT INTO products (id, name, description, price, color, variants, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.DefaultColor, doc, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID (sem lock).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetForUpdate obtém o produto travando a linha (SELECT ... FOR UPDATE).
// A transação concorrente que pedir a mesma linha bloqueia até o
// Commit/Rollback desta — é o único ponto de serialização do engine.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product for update")
}

// UpdateDetails grava os campos de catálogo (inclui grade e agregado).
func (r *ProductRepo) UpdateDetails(ctx context.Context, product *entity.Product) error {
	doc, err := json.Marshal(product.Variants)
	if err != nil {
		return fmt.Errorf("serializar variantes: %w", err)
	}
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, color = $5, variants = $6, stock = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.DefaultColor, doc, product.Stock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdateStockDocument grava apenas o documento de variantes, o agregado e o
// updated_at (usado pelo engine de ajuste, com a linha já travada).
func (r *ProductRepo) UpdateStockDocument(ctx context.Context, product *entity.Product) error {
	doc, err := json.Marshal(product.Variants)
	if err != nil {
		return fmt.Errorf("serializar variantes: %w", err)
	}
	query := `UPDATE products SET variants = $2, stock = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, product.ID, doc, product.Stock, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista produtos com paginação.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var doc []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DefaultColor,
		&doc, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &p.Variants); err != nil {
			return nil, fmt.Errorf("deserializar variantes: %w", err)
		}
	}
	return &p, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, tenant_id, code, name, unit_price, is_active, created_at, updated_at`

// Create persiste un nuevo producto. Código duplicado en el tenant -> ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Code, p.Name, p.UnitPrice, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByTenantAndCode obtiene un producto por tenant y código; nil si no existe.
func (r *ProductRepo) GetByTenantAndCode(tenantID, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 AND code = $2`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, tenantID, code).Scan(
		&p.ID, &p.TenantID, &p.Code, &p.Name, &p.UnitPrice, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by tenant and code: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) getOne(where string, arg any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ` + where
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.TenantID, &p.Code, &p.Name, &p.UnitPrice, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, unit_price = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Name, p.UnitPrice, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByTenant lista productos del tenant con paginación y devuelve el total.
func (r *ProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, int, error) {
	const where = `WHERE ($1 = '' OR tenant_id = $1)`

	var total int
	err := r.db.QueryRow(context.Background(),
		`SELECT count(*) FROM products `+where, tenantID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + ` FROM products
		` + where + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Code, &p.Name, &p.UnitPrice, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

package pgdb

import (
	"context"
	"errors"

	"github.com/inventory-hub/go-backend/internal/domain"
	"github.com/inventory-hub/go-backend/internal/repository/pgdb/converter"
	"github.com/inventory-hub/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
// Все параметры передаются связыванием, конкатенации строк в SQL нет.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Add вставляет новую запись. is_active и created_date назначает хранилище,
// вызывающая сторона на них не влияет.
func (p *ProductRepo) Add(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		INSERT INTO products (name, category, price, quantity, is_active, created_date)
		VALUES ($1, $2, $3, $4, TRUE, NOW())
		RETURNING id;
	`

	var id int64
	err := p.pool.QueryRow(ctx, query, product.Name, product.Category, product.Price, product.Quantity).
		Scan(&id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

// Update перезаписывает изменяемые поля записи с данным id, в том числе
// мягко удаленной — видимость записи при этом не восстанавливается.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, quantity = $5
		WHERE id = $1;
	`

	tag, err := p.pool.Exec(ctx, query, product.ID, product.Name, product.Category, product.Price, product.Quantity)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete выставляет is_active=false. Предикат по is_active делает операцию
// идемпотентной: повторное удаление не затрагивает ни одной строки.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE products
		SET is_active = FALSE
		WHERE id = $1 AND is_active;
	`

	tag, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByID возвращает (nil, nil), если записи нет или она неактивна.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price, quantity, is_active, created_date
		FROM products
		WHERE id = $1 AND is_active;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Category, &model.Price,
			&model.Quantity, &model.IsActive, &model.CreatedDate,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetAll возвращает активные записи. ORDER BY id фиксирует порядок вставки,
// на порядок кучи PostgreSQL полагаться нельзя.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price, quantity, is_active, created_date
		FROM products
		WHERE is_active
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// Search возвращает активные записи, у которых name или category содержит
// keyword без учета регистра. Символы % и _ в keyword не экранируются и
// трактуются как шаблоны ILIKE — известное принятое ограничение; сам keyword
// при этом связанный параметр, SQL-инъекция невозможна.
func (p *ProductRepo) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price, quantity, is_active, created_date
		FROM products
		WHERE is_active AND (name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query, keyword)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// scanProducts вычитывает строки результата в сущности.
func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category, &model.Price,
			&model.Quantity, &model.IsActive, &model.CreatedDate,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shestoi/qare/internal/repository"
)

// Repository реализует SupplyRepository используя PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Create вставляет новую запись в отдельной транзакции
// Дубликат name ловится первичным ключом, а не предварительной проверкой
func (r *Repository) Create(ctx context.Context, supply repository.Supply) error {
	// Валидация строго до обращения к БД
	if err := repository.Validate(supply); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	// Гарантируем откат транзакции в случае ошибки
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO supplies (name, amount, "unitName")
		 VALUES ($1, $2, $3)`,
		supply.Name, supply.Amount, supply.UnitName)
	if err != nil {
		return mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return mapError(err)
	}

	return nil
}

// Get получает запись по точному совпадению name
func (r *Repository) Get(ctx context.Context, name string) (repository.Supply, bool, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, amount, "unitName"
		 FROM supplies
		 WHERE name = $1`,
		name)
	if err != nil {
		return repository.Supply{}, false, mapError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return repository.Supply{}, false, mapError(err)
		}
		return repository.Supply{}, false, nil
	}

	var supply repository.Supply
	if err := rows.Scan(&supply.Name, &supply.Amount, &supply.UnitName); err != nil {
		return repository.Supply{}, false, mapError(err)
	}

	return supply, true, nil
}

// List возвращает все записи, отсортированные по name (collation БД)
func (r *Repository) List(ctx context.Context) ([]repository.Supply, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, amount, "unitName"
		 FROM supplies
		 ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	supplies := make([]repository.Supply, 0)
	for rows.Next() {
		var supply repository.Supply
		if err := rows.Scan(&supply.Name, &supply.Amount, &supply.UnitName); err != nil {
			return nil, mapError(err)
		}
		supplies = append(supplies, supply)
	}

	if err = rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return supplies, nil
}

// Update заменяет amount и unitName у записи с данным name
// Колонка name в SET не участвует
func (r *Repository) Update(ctx context.Context, supply repository.Supply) (bool, error) {
	if err := repository.Validate(supply); err != nil {
		return false, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, mapError(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE supplies
		 SET amount = $1, "unitName" = $2
		 WHERE name = $3`,
		supply.Amount, supply.UnitName, supply.Name)
	if err != nil {
		return false, mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete удаляет запись по name
func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, mapError(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM supplies WHERE name = $1`, name)
	if err != nil {
		return false, mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

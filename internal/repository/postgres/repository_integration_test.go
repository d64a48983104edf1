//go:build integration

package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shestoi/qare/internal/repository"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()

	// Поднимаем PostgreSQL контейнер через testcontainers
	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("supplies"),
		postgres.WithUsername("supply_user"),
		postgres.WithPassword("supply_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, postgresContainer.Terminate(ctx))
	}()

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Накатываем вшитые миграции тем же путём, что и при старте сервиса
	require.NoError(t, Migrate(ctx, dsn), "Failed to run migrations")
	// Повторный запуск ничего не ломает
	require.NoError(t, Migrate(ctx, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewRepository(pool)

	truncate := func(t *testing.T) {
		_, err := pool.Exec(ctx, `TRUNCATE supplies`)
		require.NoError(t, err)
	}

	t.Run("Create and Get round trip", func(t *testing.T) {
		truncate(t)
		supply := repository.Supply{Name: "Gauze", Amount: 10, UnitName: "pack"}

		require.NoError(t, repo.Create(ctx, supply))

		got, found, err := repo.Get(ctx, "Gauze")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, supply, got)
	})

	t.Run("Get missing", func(t *testing.T) {
		truncate(t)
		_, found, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("Create duplicate keeps existing row", func(t *testing.T) {
		truncate(t)
		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"}))

		err := repo.Create(ctx, repository.Supply{Name: "Flour", Amount: 9, UnitName: "bag"})
		require.True(t, errors.Is(err, repository.ErrAlreadyExists), "Expected ErrAlreadyExists, got: %v", err)

		got, found, err := repo.Get(ctx, "Flour")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"}, got)
	})

	t.Run("Create invalid writes nothing", func(t *testing.T) {
		truncate(t)
		err := repo.Create(ctx, repository.Supply{Name: "Gauze", Amount: -1, UnitName: "pack"})
		require.ErrorIs(t, err, repository.ErrInvalidSupply)

		err = repo.Create(ctx, repository.Supply{Name: "  ", Amount: 1, UnitName: "pack"})
		require.ErrorIs(t, err, repository.ErrInvalidSupply)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("CHECK constraint rejects negative amount written directly", func(t *testing.T) {
		truncate(t)
		_, err := pool.Exec(ctx, `INSERT INTO supplies (name, amount, "unitName") VALUES ('Bypass', -3, 'box')`)
		require.Error(t, err)
		require.ErrorIs(t, mapError(err), repository.ErrInvalidSupply)
	})

	t.Run("List ordered by name", func(t *testing.T) {
		truncate(t)
		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Bandage", Amount: 5, UnitName: "pack"}))
		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Alcohol", Amount: 2, UnitName: "bottle"}))
		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Cotton", Amount: 7, UnitName: "bag"}))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "Alcohol", all[0].Name)
		require.Equal(t, "Bandage", all[1].Name)
		require.Equal(t, "Cotton", all[2].Name)
	})

	t.Run("Update", func(t *testing.T) {
		truncate(t)

		updated, err := repo.Update(ctx, repository.Supply{Name: "Ghost", Amount: 1, UnitName: "box"})
		require.NoError(t, err)
		require.False(t, updated)
		_, found, err := repo.Get(ctx, "Ghost")
		require.NoError(t, err)
		require.False(t, found)

		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Syringe", Amount: 3, UnitName: "box"}))
		updated, err = repo.Update(ctx, repository.Supply{Name: "Syringe", Amount: 12, UnitName: "pack"})
		require.NoError(t, err)
		require.True(t, updated)

		got, found, err := repo.Get(ctx, "Syringe")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, repository.Supply{Name: "Syringe", Amount: 12, UnitName: "pack"}, got)

		updated, err = repo.Update(ctx, repository.Supply{Name: "Syringe", Amount: -1, UnitName: "pack"})
		require.ErrorIs(t, err, repository.ErrInvalidSupply)
		require.False(t, updated)
	})

	t.Run("Delete twice", func(t *testing.T) {
		truncate(t)
		require.NoError(t, repo.Create(ctx, repository.Supply{Name: "Mask", Amount: 50, UnitName: "piece"}))

		deleted, err := repo.Delete(ctx, "Mask")
		require.NoError(t, err)
		require.True(t, deleted)

		deleted, err = repo.Delete(ctx, "Mask")
		require.NoError(t, err)
		require.False(t, deleted)
	})

	t.Run("Concurrent Create on one name has exactly one winner", func(t *testing.T) {
		truncate(t)

		const workers = 8
		results := make(chan error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(amount int) {
				defer wg.Done()
				results <- repo.Create(ctx, repository.Supply{Name: "Gloves", Amount: amount, UnitName: "box"})
			}(i)
		}
		wg.Wait()
		close(results)

		wins := 0
		for err := range results {
			if err == nil {
				wins++
				continue
			}
			require.ErrorIs(t, err, repository.ErrAlreadyExists)
		}
		require.Equal(t, 1, wins)
	})

	t.Run("closed pool reports an error", func(t *testing.T) {
		closed, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err)
		closed.Close()

		_, err = NewRepository(closed).List(ctx)
		require.Error(t, err)
	})
}

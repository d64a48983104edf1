package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shestoi/qare/internal/repository"
)

// MemoryRepository реализует SupplyRepository используя in-memory хранилище
// Используется для локальной разработки (SUPPLY_STORAGE=memory) и HTTP тестов
// Семантика совпадает с PostgreSQL: валидация до записи, уникальный name, сортировка по name
type MemoryRepository struct {
	mu       sync.RWMutex
	supplies map[string]repository.Supply
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		supplies: make(map[string]repository.Supply),
	}
}

// Create сохраняет новую запись
// Защищён мьютексом: из двух одновременных Create с одним name выигрывает ровно один
func (r *MemoryRepository) Create(ctx context.Context, supply repository.Supply) error {
	if err := repository.Validate(supply); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.supplies[supply.Name]; exists {
		return repository.ErrAlreadyExists
	}

	r.supplies[supply.Name] = supply
	return nil
}

// Get получает запись по name
func (r *MemoryRepository) Get(ctx context.Context, name string) (repository.Supply, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supply, exists := r.supplies[name]
	return supply, exists, nil
}

// List возвращает все записи, отсортированные по name (побайтово)
func (r *MemoryRepository) List(ctx context.Context) ([]repository.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplies := make([]repository.Supply, 0, len(r.supplies))
	for _, s := range r.supplies {
		supplies = append(supplies, s)
	}
	sort.Slice(supplies, func(i, j int) bool {
		return supplies[i].Name < supplies[j].Name
	})

	return supplies, nil
}

// Update заменяет amount и unitName, name остаётся прежним
func (r *MemoryRepository) Update(ctx context.Context, supply repository.Supply) (bool, error) {
	if err := repository.Validate(supply); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.supplies[supply.Name]
	if !exists {
		return false, nil
	}

	current.Amount = supply.Amount
	current.UnitName = supply.UnitName
	r.supplies[supply.Name] = current
	return true, nil
}

// Delete удаляет запись по name
func (r *MemoryRepository) Delete(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.supplies[name]; !exists {
		return false, nil
	}

	delete(r.supplies, name)
	return true, nil
}

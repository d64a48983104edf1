package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shestoi/qare/internal/repository"
)

// SupplyService - единственная точка входа к хранилищу расходников
// Нормализует name и unitName (trim) и делегирует вызов в repository 1:1
// Ошибки repository возвращаются без изменений, чтобы вызывающий мог проверить их через errors.Is
type SupplyService struct {
	logger *zap.Logger
	repo   repository.SupplyRepository
}

// NewSupplyService создаёт новый экземпляр SupplyService
func NewSupplyService(logger *zap.Logger, repo repository.SupplyRepository) *SupplyService {
	return &SupplyService{
		logger: logger,
		repo:   repo,
	}
}

// Normalize обрезает пробелы по краям name и unitName, amount не трогает
func Normalize(s repository.Supply) repository.Supply {
	return repository.Supply{
		Name:     strings.TrimSpace(s.Name),
		Amount:   s.Amount,
		UnitName: strings.TrimSpace(s.UnitName),
	}
}

// Add создаёт запись и возвращает её нормализованную версию
func (s *SupplyService) Add(ctx context.Context, supply repository.Supply) (repository.Supply, error) {
	normalized := Normalize(supply)

	if err := s.repo.Create(ctx, normalized); err != nil {
		s.logger.Warn("failed to add supply", zap.String("name", normalized.Name), zap.Error(err))
		return repository.Supply{}, err
	}

	s.logger.Info("supply added",
		zap.String("name", normalized.Name),
		zap.Int("amount", normalized.Amount),
		zap.String("unit_name", normalized.UnitName),
	)
	return normalized, nil
}

// List возвращает все записи без преобразований
func (s *SupplyService) List(ctx context.Context) ([]repository.Supply, error) {
	return s.repo.List(ctx)
}

// Get ищет запись по нормализованному name
func (s *SupplyService) Get(ctx context.Context, name string) (repository.Supply, bool, error) {
	return s.repo.Get(ctx, strings.TrimSpace(name))
}

// Update заменяет amount и unitName; name используется только как ключ поиска
func (s *SupplyService) Update(ctx context.Context, supply repository.Supply) (bool, error) {
	normalized := Normalize(supply)

	updated, err := s.repo.Update(ctx, normalized)
	if err != nil {
		s.logger.Warn("failed to update supply", zap.String("name", normalized.Name), zap.Error(err))
		return false, err
	}

	if updated {
		s.logger.Info("supply updated",
			zap.String("name", normalized.Name),
			zap.Int("amount", normalized.Amount),
			zap.String("unit_name", normalized.UnitName),
		)
	}
	return updated, nil
}

// Delete удаляет запись по нормализованному name
func (s *SupplyService) Delete(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)

	deleted, err := s.repo.Delete(ctx, name)
	if err != nil {
		s.logger.Warn("failed to delete supply", zap.String("name", name), zap.Error(err))
		return false, err
	}

	if deleted {
		s.logger.Info("supply deleted", zap.String("name", name))
	}
	return deleted, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/qare/internal/repository"
	"github.com/shestoi/qare/internal/repository/mocks"
)

func TestSupplyService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		input          repository.Supply
		expectedStored repository.Supply
		repoError      error
		expectedError  error
	}{
		{
			name:           "success: trims name and unitName, amount untouched",
			input:          repository.Supply{Name: " Flour ", Amount: 2, UnitName: " kg "},
			expectedStored: repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"},
		},
		{
			name:           "success: already normalized input",
			input:          repository.Supply{Name: "Gauze", Amount: 0, UnitName: "pack"},
			expectedStored: repository.Supply{Name: "Gauze", Amount: 0, UnitName: "pack"},
		},
		{
			name:           "error: duplicate from repository is propagated",
			input:          repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"},
			expectedStored: repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"},
			repoError:      repository.ErrAlreadyExists,
			expectedError:  repository.ErrAlreadyExists,
		},
		{
			name:           "error: validation from repository is propagated",
			input:          repository.Supply{Name: "Flour", Amount: -1, UnitName: "kg"},
			expectedStored: repository.Supply{Name: "Flour", Amount: -1, UnitName: "kg"},
			repoError:      &repository.ValidationError{Reason: "amount must be non-negative"},
			expectedError:  repository.ErrInvalidSupply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewSupplyRepository(t)
			svc := NewSupplyService(zap.NewNop(), mockRepo)

			mockRepo.On("Create", ctx, tt.expectedStored).Return(tt.repoError).Once()

			// Act
			result, err := svc.Add(ctx, tt.input)

			// Assert
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Equal(t, repository.Supply{}, result)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedStored, result)
		})
	}
}

func TestSupplyService_Add_ErrorIsUnchanged(t *testing.T) {
	ctx := context.Background()
	mockRepo := mocks.NewSupplyRepository(t)
	svc := NewSupplyService(zap.NewNop(), mockRepo)

	repoErr := &repository.ValidationError{Reason: "unitName must not be blank"}
	mockRepo.On("Create", ctx, mock.Anything).Return(repoErr).Once()

	_, err := svc.Add(ctx, repository.Supply{Name: "Gauze", Amount: 1, UnitName: "  "})
	require.Same(t, repoErr, err)
}

func TestSupplyService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates without transformation", func(t *testing.T) {
		mockRepo := mocks.NewSupplyRepository(t)
		svc := NewSupplyService(zap.NewNop(), mockRepo)

		list := []repository.Supply{{Name: " A ", Amount: 1, UnitName: "u"}}
		mockRepo.On("List", ctx).Return(list, nil).Once()

		result, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, list, result)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		mockRepo := mocks.NewSupplyRepository(t)
		svc := NewSupplyService(zap.NewNop(), mockRepo)

		mockRepo.On("List", ctx).Return(nil, repository.ErrUnavailable).Once()

		result, err := svc.List(ctx)
		require.ErrorIs(t, err, repository.ErrUnavailable)
		require.Nil(t, result)
	})
}

func TestSupplyService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		input         string
		lookupName    string
		repoSupply    repository.Supply
		repoFound     bool
		repoError     error
		expectedFound bool
		expectedError bool
	}{
		{
			name:          "found: name is trimmed before lookup",
			input:         "  Bandage  ",
			lookupName:    "Bandage",
			repoSupply:    repository.Supply{Name: "Bandage", Amount: 1, UnitName: "pack"},
			repoFound:     true,
			expectedFound: true,
		},
		{
			name:          "absent",
			input:         "Ghost",
			lookupName:    "Ghost",
			repoFound:     false,
			expectedFound: false,
		},
		{
			name:          "repository error",
			input:         "Bandage",
			lookupName:    "Bandage",
			repoError:     errors.New("database connection failed"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewSupplyRepository(t)
			svc := NewSupplyService(zap.NewNop(), mockRepo)

			mockRepo.On("Get", ctx, tt.lookupName).Return(tt.repoSupply, tt.repoFound, tt.repoError).Once()

			result, found, err := svc.Get(ctx, tt.input)

			if tt.expectedError {
				require.Error(t, err)
				require.False(t, found)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedFound, found)
			require.Equal(t, tt.repoSupply, result)
		})
	}
}

func TestSupplyService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		input          repository.Supply
		expectedStored repository.Supply
		repoReturn     bool
		repoError      error
		expectedResult bool
		expectedError  bool
	}{
		{
			name:           "success: normalizes then returns true",
			input:          repository.Supply{Name: "  Syringe  ", Amount: 3, UnitName: "  box "},
			expectedStored: repository.Supply{Name: "Syringe", Amount: 3, UnitName: "box"},
			repoReturn:     true,
			expectedResult: true,
		},
		{
			name:           "not found returns false",
			input:          repository.Supply{Name: "Ghost", Amount: 1, UnitName: "box"},
			expectedStored: repository.Supply{Name: "Ghost", Amount: 1, UnitName: "box"},
			repoReturn:     false,
			expectedResult: false,
		},
		{
			name:           "repository error",
			input:          repository.Supply{Name: "Syringe", Amount: -3, UnitName: "box"},
			expectedStored: repository.Supply{Name: "Syringe", Amount: -3, UnitName: "box"},
			repoError:      &repository.ValidationError{Reason: "amount must be non-negative"},
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewSupplyRepository(t)
			svc := NewSupplyService(zap.NewNop(), mockRepo)

			mockRepo.On("Update", ctx, tt.expectedStored).Return(tt.repoReturn, tt.repoError).Once()

			result, err := svc.Update(ctx, tt.input)

			if tt.expectedError {
				require.ErrorIs(t, err, repository.ErrInvalidSupply)
				require.False(t, result)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestSupplyService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		input          string
		deleteName     string
		repoReturn     bool
		repoError      error
		expectedResult bool
		expectedError  bool
	}{
		{
			name:           "deleted: name trimmed",
			input:          " Mask ",
			deleteName:     "Mask",
			repoReturn:     true,
			expectedResult: true,
		},
		{
			name:           "nothing to delete",
			input:          "Mask",
			deleteName:     "Mask",
			repoReturn:     false,
			expectedResult: false,
		},
		{
			name:          "repository error",
			input:         "Mask",
			deleteName:    "Mask",
			repoError:     repository.ErrUnavailable,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewSupplyRepository(t)
			svc := NewSupplyService(zap.NewNop(), mockRepo)

			mockRepo.On("Delete", ctx, tt.deleteName).Return(tt.repoReturn, tt.repoError).Once()

			result, err := svc.Delete(ctx, tt.input)

			if tt.expectedError {
				require.ErrorIs(t, err, repository.ErrUnavailable)
				require.False(t, result)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(repository.Supply{Name: "\t Flour \n", Amount: 2, UnitName: "  kg  "})
	require.Equal(t, repository.Supply{Name: "Flour", Amount: 2, UnitName: "kg"}, got)
}

package goalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	txManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, txManager)
	defer mockDB.Close()

	return repo, mockDB, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestRepository_Create(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	created := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	calories := 2000.0
	steps := 8000

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Previous goal deactivated and new one stored",
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO goals")).
					WithArgs(1, "weight_loss", &calories, (*float64)(nil), (*float64)(nil), (*float64)(nil),
						&steps, (*int)(nil), (*float64)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, created))
			},
		},
		{
			name: "Deactivation fails",
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET is_active = FALSE")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			goal := &domain.Goal{
				UserID:            1,
				GoalType:          domain.GoalWeightLoss,
				TargetCalories:    &calories,
				TargetStepsPerDay: &steps,
			}
			result, err := repo.Create(context.Background(), goal)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, result.ID)
				assert.True(t, result.IsActive)
				assert.Equal(t, created, result.CreatedAt)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActive(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "goal_type", "target_calories", "target_protein", "target_carbs",
		"target_fats", "target_steps_per_day", "target_workouts_per_week", "target_weight", "is_active",
		"progress_percentage", "created_at"}
	calories := 2000.0
	workouts := 3

	t.Run("Active goal", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE user_id = $1 AND is_active")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(
				4, 1, domain.GoalMuscleGain, &calories, (*float64)(nil), (*float64)(nil), (*float64)(nil),
				(*int)(nil), &workouts, (*float64)(nil), true, 42.5, created))

		goal, err := repo.GetActive(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.GoalMuscleGain, goal.GoalType)
		assert.Equal(t, 3, *goal.TargetWorkoutsPerWeek)
		assert.Nil(t, goal.TargetProtein)
		assert.Equal(t, 42.5, goal.ProgressPercentage)
	})

	t.Run("No active goal", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE user_id = $1 AND is_active")).
			WithArgs(2).
			WillReturnError(pgx.ErrNoRows)

		goal, err := repo.GetActive(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, goal)
	})
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.Deactivate(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Deactivate(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertDaily(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 10, 19, 21, 0, 0, 0, time.UTC)
	caloriesProgress := 75.0

	progress := &domain.DailyGoalProgress{
		UserID:           1,
		GoalID:           4,
		Date:             date,
		ActualCalories:   1500,
		CaloriesProgress: &caloriesProgress,
		OverallProgress:  75,
	}

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, goal_id, date) DO UPDATE SET")).
		WithArgs(1, 4, date, 1500.0, 0.0, 0.0, 0.0, 0, 0, (*float64)(nil), &caloriesProgress,
			(*float64)(nil), (*float64)(nil), (*float64)(nil), (*float64)(nil), (*float64)(nil), 75.0, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "updated_at"}).AddRow(11, updated))

	result, err := repo.UpsertDaily(context.Background(), progress)
	assert.NoError(t, err)
	assert.Equal(t, 11, result.ID)
	assert.Equal(t, updated, result.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, goal_id, date) DO UPDATE SET")).
		WillReturnError(errors.New("database error"))

	result, err = repo.UpsertDaily(context.Background(), progress)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetDaily(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM daily_goal_progress WHERE user_id = $1 AND goal_id = $2 AND date = $3")).
		WithArgs(1, 4, date).
		WillReturnError(pgx.ErrNoRows)

	progress, err := repo.GetDaily(context.Background(), 1, 4, date)
	assert.NoError(t, err)
	assert.Nil(t, progress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

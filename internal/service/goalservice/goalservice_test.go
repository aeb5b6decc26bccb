package goalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var testDay = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

type mocks struct {
	goals     *MockGoalRepo
	source    *MockActivitySource
	users     *MockUserRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		goals:     NewMockGoalRepo(ctrl),
		source:    NewMockActivitySource(ctrl),
		users:     NewMockUserRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(m.goals, m.source, m.users, m.txManager)
	service.now = func() time.Time { return testDay.Add(9 * time.Hour) }
	return service, m
}

func TestCreateGoal(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		goal          domain.Goal
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Created",
			goal: domain.Goal{GoalType: domain.GoalWeightLoss, TargetCalories: f64(1800)},
			prepareMock: func() {
				m.goals.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
						assert.Equal(t, 1, g.UserID)
						g.ID = 9
						g.IsActive = true
						return g, nil
					})
			},
		},
		{
			name:          "Unknown goal type",
			goal:          domain.Goal{GoalType: "bulk"},
			prepareMock:   func() {},
			expectedError: ErrInvalidGoalType,
		},
		{
			name:          "Negative target",
			goal:          domain.Goal{GoalType: domain.GoalMuscleGain, TargetStepsPerDay: intp(-1)},
			prepareMock:   func() {},
			expectedError: ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			goal, err := service.CreateGoal(context.Background(), 1, tt.goal)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 9, goal.ID)
		})
	}
}

func TestRecompute(t *testing.T) {
	service, m := NewMock(t)
	goal := &domain.Goal{ID: 4, UserID: 1, TargetCalories: f64(2000), TargetStepsPerDay: intp(10000)}

	t.Run("Upserts and updates the goal", func(t *testing.T) {
		m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(goal, nil)
		m.source.EXPECT().DailyActivityFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.ActivityFacts{Steps: 12000}, nil)
		m.source.EXPECT().DailyNutritionFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.NutritionFacts{Calories: 1500}, nil)
		m.goals.EXPECT().GetDaily(gomock.Any(), 1, 4, testDay).Return(nil, nil)
		m.goals.EXPECT().UpsertDaily(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.DailyGoalProgress) (*domain.DailyGoalProgress, error) {
				assert.Equal(t, testDay, p.Date)
				assert.Equal(t, 4, p.GoalID)
				p.ID = 1
				return p, nil
			})
		m.goals.EXPECT().UpdateProgress(gomock.Any(), 4, 87.5).Return(nil)

		progress, err := service.Recompute(context.Background(), 1, testDay.Add(15*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 87.5, progress.OverallProgress)
		assert.False(t, progress.IsCompleted)
	})

	t.Run("First completion awards experience", func(t *testing.T) {
		m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(goal, nil)
		m.source.EXPECT().DailyActivityFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.ActivityFacts{Steps: 10000}, nil)
		m.source.EXPECT().DailyNutritionFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.NutritionFacts{Calories: 2100}, nil)
		m.goals.EXPECT().GetDaily(gomock.Any(), 1, 4, testDay).
			Return(&domain.DailyGoalProgress{ID: 1, OverallProgress: 87.5}, nil)
		m.goals.EXPECT().UpsertDaily(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.DailyGoalProgress) (*domain.DailyGoalProgress, error) {
				return p, nil
			})
		m.goals.EXPECT().UpdateProgress(gomock.Any(), 4, 100.0).Return(nil)
		m.users.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, Level: 1, Experience: 95}, nil)
		m.users.EXPECT().UpdateProgression(gomock.Any(), 1, 2, 105).Return(nil)

		progress, err := service.Recompute(context.Background(), 1, testDay)
		require.NoError(t, err)
		assert.True(t, progress.IsCompleted)
	})

	t.Run("Already completed day awards nothing", func(t *testing.T) {
		m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(goal, nil)
		m.source.EXPECT().DailyActivityFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.ActivityFacts{Steps: 10000}, nil)
		m.source.EXPECT().DailyNutritionFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(&domain.NutritionFacts{Calories: 2000}, nil)
		m.goals.EXPECT().GetDaily(gomock.Any(), 1, 4, testDay).
			Return(&domain.DailyGoalProgress{ID: 1, OverallProgress: 100, IsCompleted: true}, nil)
		m.goals.EXPECT().UpsertDaily(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.DailyGoalProgress) (*domain.DailyGoalProgress, error) {
				return p, nil
			})
		m.goals.EXPECT().UpdateProgress(gomock.Any(), 4, 100.0).Return(nil)

		_, err := service.Recompute(context.Background(), 1, testDay)
		require.NoError(t, err)
	})

	t.Run("No active goal", func(t *testing.T) {
		m.goals.EXPECT().GetActive(gomock.Any(), 2).Return(nil, nil)

		_, err := service.Recompute(context.Background(), 2, testDay)
		assert.ErrorIs(t, err, ErrNoActiveGoal)
	})

	t.Run("Data source failure", func(t *testing.T) {
		m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(goal, nil)
		m.source.EXPECT().DailyActivityFacts(gomock.Any(), 1, testDay, testDay.AddDate(0, 0, 1)).
			Return(nil, errors.New("db error"))

		_, err := service.Recompute(context.Background(), 1, testDay)
		assert.EqualError(t, err, "activity facts: db error")
	})
}

func TestLogActivity(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Logged without a goal", func(t *testing.T) {
		m.source.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
				assert.Equal(t, 1, a.UserID)
				assert.Equal(t, testDay.Add(9*time.Hour), a.PerformedAt)
				return a, nil
			})
		m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(nil, nil)

		progress, err := service.LogActivity(context.Background(), 1, domain.Activity{Kind: domain.ActivitySteps, Value: 3000})
		assert.NoError(t, err)
		assert.Nil(t, progress)
	})

	t.Run("Invalid kind", func(t *testing.T) {
		_, err := service.LogActivity(context.Background(), 1, domain.Activity{Kind: "yoga", Value: 1})
		assert.ErrorIs(t, err, ErrInvalidActivity)
	})

	t.Run("Negative food values", func(t *testing.T) {
		_, err := service.LogFood(context.Background(), 1, domain.FoodIntake{Calories: -10})
		assert.ErrorIs(t, err, ErrInvalidActivity)
	})
}

func TestDeactivateGoal(t *testing.T) {
	service, m := NewMock(t)

	m.goals.EXPECT().Deactivate(gomock.Any(), 1).Return(true, nil)
	m.goals.EXPECT().Deactivate(gomock.Any(), 1).Return(false, nil)

	assert.NoError(t, service.DeactivateGoal(context.Background(), 1))
	assert.ErrorIs(t, service.DeactivateGoal(context.Background(), 1), ErrNoActiveGoal)
}

func TestGetDailyProgress(t *testing.T) {
	service, m := NewMock(t)

	m.goals.EXPECT().GetActive(gomock.Any(), 1).Return(&domain.Goal{ID: 4}, nil).Times(2)
	m.goals.EXPECT().GetDaily(gomock.Any(), 1, 4, testDay).Return(&domain.DailyGoalProgress{ID: 1, OverallProgress: 42}, nil)
	m.goals.EXPECT().GetDaily(gomock.Any(), 1, 4, testDay).Return(nil, nil)

	progress, err := service.GetDailyProgress(context.Background(), 1, testDay.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 42.0, progress.OverallProgress)

	_, err = service.GetDailyProgress(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrNoProgress)
}

func TestGetExperience(t *testing.T) {
	service, m := NewMock(t)

	m.users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Level: 2, Experience: 175}, nil)
	m.users.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)

	data, err := service.GetExperience(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, data.ProgressPercentage)

	_, err = service.GetExperience(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAwardExperience(t *testing.T) {
	tests := []struct {
		name          string
		current       *domain.User
		findErr       error
		amount        int
		expectedLevel int
		expectedXP    int
		expectedError error
	}{
		{
			name:          "Crosses a level threshold",
			current:       &domain.User{ID: 1, Level: 1, Experience: 95},
			amount:        10,
			expectedLevel: 2,
			expectedXP:    105,
		},
		{
			name:          "Never drops below zero",
			current:       &domain.User{ID: 1, Level: 1, Experience: 5},
			amount:        -20,
			expectedLevel: 1,
			expectedXP:    0,
		},
		{
			name:          "Unknown user",
			amount:        10,
			expectedError: ErrUserNotFound,
		},
		{
			name:          "Lock failure",
			findErr:       errors.New("db error"),
			amount:        10,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.users.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(tt.current, tt.findErr)
			if tt.expectedError == nil {
				m.users.EXPECT().UpdateProgression(gomock.Any(), 1, tt.expectedLevel, tt.expectedXP).Return(nil)
			}

			data, err := service.AwardExperience(context.Background(), 1, tt.amount)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, data.Level)
			assert.Equal(t, tt.expectedXP, data.Experience)
		})
	}
}

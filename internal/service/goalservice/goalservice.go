package goalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=goalservice.go -destination=mock_goalservice.go -package=goalservice

type GoalRepo interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GetActive(ctx context.Context, userID int) (*domain.Goal, error)
	Deactivate(ctx context.Context, userID int) (bool, error)
	UpdateProgress(ctx context.Context, goalID int, percentage float64) error
	UpsertDaily(ctx context.Context, p *domain.DailyGoalProgress) (*domain.DailyGoalProgress, error)
	GetDaily(ctx context.Context, userID, goalID int, date time.Time) (*domain.DailyGoalProgress, error)
}

// ActivitySource aggregates a user's logs over [from, to).
type ActivitySource interface {
	CreateActivity(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	CreateFoodIntake(ctx context.Context, f *domain.FoodIntake) (*domain.FoodIntake, error)
	DailyActivityFacts(ctx context.Context, userID int, from, to time.Time) (*domain.ActivityFacts, error)
	DailyNutritionFacts(ctx context.Context, userID int, from, to time.Time) (*domain.NutritionFacts, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateProgression(ctx context.Context, userID, level, experience int) error
}

var (
	ErrNoActiveGoal    = errors.New("no active goal")
	ErrNoProgress      = errors.New("no progress recorded for this day")
	ErrInvalidGoalType = errors.New("invalid goal type")
	ErrInvalidTarget   = errors.New("targets must not be negative")
	ErrInvalidActivity = errors.New("invalid activity")
	ErrUserNotFound    = errors.New("user not found")
)

type Service struct {
	goals     GoalRepo
	source    ActivitySource
	users     UserRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(goals GoalRepo, source ActivitySource, users UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		goals:     goals,
		source:    source,
		users:     users,
		txManager: txManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Day truncates t to the start of its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) CreateGoal(ctx context.Context, userID int, goal domain.Goal) (*domain.Goal, error) {
	if !goal.GoalType.Valid() {
		return nil, ErrInvalidGoalType
	}
	if negative(goal.TargetCalories, goal.TargetProtein, goal.TargetCarbs, goal.TargetFats, goal.TargetWeight) ||
		negativeInt(goal.TargetStepsPerDay, goal.TargetWorkoutsPerWeek) {
		return nil, ErrInvalidTarget
	}

	goal.UserID = userID
	created, err := s.goals.Create(ctx, &goal)
	if err != nil {
		zap.L().Error("failed to create goal", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetActiveGoal(ctx context.Context, userID int) (*domain.Goal, error) {
	goal, err := s.goals.GetActive(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get active goal", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if goal == nil {
		return nil, ErrNoActiveGoal
	}
	return goal, nil
}

func (s *Service) DeactivateGoal(ctx context.Context, userID int) error {
	ok, err := s.goals.Deactivate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to deactivate goal", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrNoActiveGoal
	}
	return nil
}

func (s *Service) GetDailyProgress(ctx context.Context, userID int, date time.Time) (*domain.DailyGoalProgress, error) {
	goal, err := s.GetActiveGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.goals.GetDaily(ctx, userID, goal.ID, Day(date))
	if err != nil {
		zap.L().Error("failed to get daily progress", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if progress == nil {
		return nil, ErrNoProgress
	}
	return progress, nil
}

// Recompute rebuilds the day's progress for the active goal from the logs
// and makes it the goal's current progress. Running it again for the same
// day overwrites the row.
func (s *Service) Recompute(ctx context.Context, userID int, date time.Time) (*domain.DailyGoalProgress, error) {
	goal, err := s.GetActiveGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := Day(date)
	next := day.AddDate(0, 0, 1)
	activity, err := s.source.DailyActivityFacts(ctx, userID, day, next)
	if err != nil {
		return nil, fmt.Errorf("activity facts: %w", err)
	}
	nutrition, err := s.source.DailyNutritionFacts(ctx, userID, day, next)
	if err != nil {
		return nil, fmt.Errorf("nutrition facts: %w", err)
	}

	previous, err := s.goals.GetDaily(ctx, userID, goal.ID, day)
	if err != nil {
		return nil, fmt.Errorf("previous progress: %w", err)
	}

	progress := ComputeProgress(goal, *activity, *nutrition)
	progress.Date = day
	saved, err := s.goals.UpsertDaily(ctx, &progress)
	if err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	if err := s.goals.UpdateProgress(ctx, goal.ID, saved.OverallProgress); err != nil {
		return nil, fmt.Errorf("update goal progress: %w", err)
	}
	metrics.RecordGoalRecompute(saved.IsCompleted)

	if saved.IsCompleted && (previous == nil || !previous.IsCompleted) {
		if _, err := s.AwardExperience(ctx, userID, DailyCompletionXP); err != nil {
			zap.L().Error("failed to award experience", zap.Int("user_id", userID), zap.Error(err))
		}
	}
	return saved, nil
}

// LogActivity stores an activity and refreshes that day's progress when the
// user has an active goal.
func (s *Service) LogActivity(ctx context.Context, userID int, activity domain.Activity) (*domain.DailyGoalProgress, error) {
	if !activity.Kind.Valid() || activity.Value < 0 {
		return nil, ErrInvalidActivity
	}
	activity.UserID = userID
	if activity.PerformedAt.IsZero() {
		activity.PerformedAt = s.now()
	}
	if _, err := s.source.CreateActivity(ctx, &activity); err != nil {
		zap.L().Error("failed to log activity", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.refresh(ctx, userID, activity.PerformedAt)
}

func (s *Service) LogFood(ctx context.Context, userID int, food domain.FoodIntake) (*domain.DailyGoalProgress, error) {
	if food.Calories < 0 || food.Protein < 0 || food.Carbs < 0 || food.Fats < 0 {
		return nil, ErrInvalidActivity
	}
	food.UserID = userID
	if food.EatenAt.IsZero() {
		food.EatenAt = s.now()
	}
	if _, err := s.source.CreateFoodIntake(ctx, &food); err != nil {
		zap.L().Error("failed to log food intake", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.refresh(ctx, userID, food.EatenAt)
}

func (s *Service) refresh(ctx context.Context, userID int, at time.Time) (*domain.DailyGoalProgress, error) {
	progress, err := s.Recompute(ctx, userID, at)
	if errors.Is(err, ErrNoActiveGoal) {
		return nil, nil
	}
	return progress, err
}

func (s *Service) GetExperience(ctx context.Context, userID int) (*domain.ExperienceData, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	data := CalculateExperienceData(user.Level, user.Experience)
	return &data, nil
}

// AwardExperience adds experience and recalculates the level from the
// threshold table.
func (s *Service) AwardExperience(ctx context.Context, userID, amount int) (*domain.ExperienceData, error) {
	var data domain.ExperienceData
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		experience := user.Experience + amount
		if experience < 0 {
			experience = 0
		}
		level := LevelForExperience(experience)
		if err := s.users.UpdateProgression(ctx, userID, level, experience); err != nil {
			return err
		}
		data = CalculateExperienceData(level, experience)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func negative(values ...*float64) bool {
	for _, v := range values {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}

func negativeInt(values ...*int) bool {
	for _, v := range values {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}

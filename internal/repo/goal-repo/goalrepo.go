package goalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	goalColumns = `id, user_id, goal_type, target_calories, target_protein, target_carbs, target_fats,
		target_steps_per_day, target_workouts_per_week, target_weight, is_active, progress_percentage, created_at`
	dailyColumns = `id, user_id, goal_id, date, actual_calories, actual_protein, actual_carbs, actual_fats,
		actual_steps, actual_workouts, actual_weight, calories_progress, protein_progress, carbs_progress,
		fats_progress, steps_progress, workouts_progress, overall_progress, is_completed, updated_at`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create stores a new active goal. Any goal that was active for the user is
// deactivated in the same transaction.
func (r *Repository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, "UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active", goal.UserID); err != nil {
			zap.L().Error("can't deactivate previous goals", zap.Int("user_id", goal.UserID), zap.Error(err))
			return err
		}

		query := `
			INSERT INTO goals (user_id, goal_type, target_calories, target_protein, target_carbs, target_fats,
				target_steps_per_day, target_workouts_per_week, target_weight, is_active, progress_percentage)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, 0)
			RETURNING id, created_at
		`
		err := r.db.QueryRow(ctx, query,
			goal.UserID, string(goal.GoalType), goal.TargetCalories, goal.TargetProtein, goal.TargetCarbs,
			goal.TargetFats, goal.TargetStepsPerDay, goal.TargetWorkoutsPerWeek, goal.TargetWeight,
		).Scan(&goal.ID, &goal.CreatedAt)
		if err != nil {
			zap.L().Error("can't save goal", zap.Int("user_id", goal.UserID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	goal.IsActive = true
	goal.ProgressPercentage = 0
	return goal, nil
}

func (r *Repository) GetActive(ctx context.Context, userID int) (*domain.Goal, error) {
	query := "SELECT " + goalColumns + " FROM goals WHERE user_id = $1 AND is_active"

	var g domain.Goal
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&g.ID, &g.UserID, &g.GoalType, &g.TargetCalories, &g.TargetProtein, &g.TargetCarbs, &g.TargetFats,
		&g.TargetStepsPerDay, &g.TargetWorkoutsPerWeek, &g.TargetWeight, &g.IsActive, &g.ProgressPercentage,
		&g.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get active goal", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &g, nil
}

// Deactivate switches off the user's active goal and reports whether there was one.
func (r *Repository) Deactivate(ctx context.Context, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active", userID)
	if err != nil {
		zap.L().Error("can't deactivate goal", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, goalID int, percentage float64) error {
	_, err := r.db.Exec(ctx, "UPDATE goals SET progress_percentage = $1 WHERE id = $2", percentage, goalID)
	if err != nil {
		zap.L().Error("can't update goal progress", zap.Int("goal_id", goalID), zap.Error(err))
		return err
	}
	return nil
}

// UpsertDaily writes the day's progress. A second write for the same
// (user, goal, date) replaces the first.
func (r *Repository) UpsertDaily(ctx context.Context, p *domain.DailyGoalProgress) (*domain.DailyGoalProgress, error) {
	query := `
		INSERT INTO daily_goal_progress (user_id, goal_id, date, actual_calories, actual_protein, actual_carbs,
			actual_fats, actual_steps, actual_workouts, actual_weight, calories_progress, protein_progress,
			carbs_progress, fats_progress, steps_progress, workouts_progress, overall_progress, is_completed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())
		ON CONFLICT (user_id, goal_id, date) DO UPDATE SET
			actual_calories = EXCLUDED.actual_calories,
			actual_protein = EXCLUDED.actual_protein,
			actual_carbs = EXCLUDED.actual_carbs,
			actual_fats = EXCLUDED.actual_fats,
			actual_steps = EXCLUDED.actual_steps,
			actual_workouts = EXCLUDED.actual_workouts,
			actual_weight = EXCLUDED.actual_weight,
			calories_progress = EXCLUDED.calories_progress,
			protein_progress = EXCLUDED.protein_progress,
			carbs_progress = EXCLUDED.carbs_progress,
			fats_progress = EXCLUDED.fats_progress,
			steps_progress = EXCLUDED.steps_progress,
			workouts_progress = EXCLUDED.workouts_progress,
			overall_progress = EXCLUDED.overall_progress,
			is_completed = EXCLUDED.is_completed,
			updated_at = now()
		RETURNING id, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.GoalID, p.Date, p.ActualCalories, p.ActualProtein, p.ActualCarbs, p.ActualFats,
		p.ActualSteps, p.ActualWorkouts, p.ActualWeight, p.CaloriesProgress, p.ProteinProgress,
		p.CarbsProgress, p.FatsProgress, p.StepsProgress, p.WorkoutsProgress, p.OverallProgress, p.IsCompleted,
	).Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert daily goal progress", zap.Int("goal_id", p.GoalID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetDaily(ctx context.Context, userID, goalID int, date time.Time) (*domain.DailyGoalProgress, error) {
	query := "SELECT " + dailyColumns + " FROM daily_goal_progress WHERE user_id = $1 AND goal_id = $2 AND date = $3"

	var p domain.DailyGoalProgress
	err := r.db.QueryRow(ctx, query, userID, goalID, date).Scan(
		&p.ID, &p.UserID, &p.GoalID, &p.Date, &p.ActualCalories, &p.ActualProtein, &p.ActualCarbs,
		&p.ActualFats, &p.ActualSteps, &p.ActualWorkouts, &p.ActualWeight, &p.CaloriesProgress,
		&p.ProteinProgress, &p.CarbsProgress, &p.FatsProgress, &p.StepsProgress, &p.WorkoutsProgress,
		&p.OverallProgress, &p.IsCompleted, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get daily goal progress", zap.Int("goal_id", goalID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

package activityrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"go.uber.org/zap"
)

// Repository stores raw activity and food logs and aggregates them per day
// for the goal engine.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateActivity(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	query := `
		INSERT INTO activities (user_id, kind, value, performed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, a.UserID, string(a.Kind), a.Value, a.PerformedAt).Scan(&a.ID); err != nil {
		zap.L().Error("can't save activity", zap.Int("user_id", a.UserID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) CreateFoodIntake(ctx context.Context, f *domain.FoodIntake) (*domain.FoodIntake, error) {
	query := `
		INSERT INTO food_intakes (user_id, name, calories, protein, carbs, fats, eaten_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, f.UserID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fats, f.EatenAt).Scan(&f.ID)
	if err != nil {
		zap.L().Error("can't save food intake", zap.Int("user_id", f.UserID), zap.Error(err))
		return nil, err
	}
	return f, nil
}

// DailyActivityFacts sums steps, counts workouts and picks the last weight
// logged within [from, to).
func (r *Repository) DailyActivityFacts(ctx context.Context, userID int, from, to time.Time) (*domain.ActivityFacts, error) {
	query := `
		SELECT
			COALESCE(SUM(value) FILTER (WHERE kind = 'steps'), 0)::INT,
			COUNT(*) FILTER (WHERE kind = 'workout')::INT,
			(SELECT value FROM activities
				WHERE user_id = $1 AND kind = 'weight' AND performed_at >= $2 AND performed_at < $3
				ORDER BY performed_at DESC LIMIT 1)
		FROM activities
		WHERE user_id = $1 AND performed_at >= $2 AND performed_at < $3
	`
	var facts domain.ActivityFacts
	err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&facts.Steps, &facts.Workouts, &facts.Weight)
	if err != nil {
		zap.L().Error("can't aggregate activities", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &facts, nil
}

func (r *Repository) DailyNutritionFacts(ctx context.Context, userID int, from, to time.Time) (*domain.NutritionFacts, error) {
	query := `
		SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0), COALESCE(SUM(carbs), 0), COALESCE(SUM(fats), 0)
		FROM food_intakes
		WHERE user_id = $1 AND eaten_at >= $2 AND eaten_at < $3
	`
	var facts domain.NutritionFacts
	err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&facts.Calories, &facts.Protein, &facts.Carbs, &facts.Fats)
	if err != nil {
		zap.L().Error("can't aggregate food intakes", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &facts, nil
}

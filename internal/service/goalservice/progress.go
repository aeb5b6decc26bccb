package goalservice

import (
	"math"

	"github.com/GlebRadaev/lwcoin/internal/domain"
)

// CompletionThreshold is the overall progress at which a day counts as done.
const CompletionThreshold = 100.0

const daysPerWeek = 7.0

// MetricProgress returns actual/target as a percentage clamped to [0, 100],
// or nil when no positive target is set.
func MetricProgress(actual float64, target *float64) *float64 {
	if target == nil || *target <= 0 {
		return nil
	}
	p := actual / *target * 100
	p = math.Max(0, math.Min(100, p))
	return &p
}

// ComputeProgress scores one day of facts against the goal. Weight is carried
// along but never scored.
func ComputeProgress(goal *domain.Goal, activity domain.ActivityFacts, nutrition domain.NutritionFacts) domain.DailyGoalProgress {
	p := domain.DailyGoalProgress{
		GoalID:         goal.ID,
		UserID:         goal.UserID,
		ActualCalories: nutrition.Calories,
		ActualProtein:  nutrition.Protein,
		ActualCarbs:    nutrition.Carbs,
		ActualFats:     nutrition.Fats,
		ActualSteps:    activity.Steps,
		ActualWorkouts: activity.Workouts,
		ActualWeight:   activity.Weight,
	}

	p.CaloriesProgress = MetricProgress(nutrition.Calories, goal.TargetCalories)
	p.ProteinProgress = MetricProgress(nutrition.Protein, goal.TargetProtein)
	p.CarbsProgress = MetricProgress(nutrition.Carbs, goal.TargetCarbs)
	p.FatsProgress = MetricProgress(nutrition.Fats, goal.TargetFats)
	p.StepsProgress = MetricProgress(float64(activity.Steps), intTarget(goal.TargetStepsPerDay, 1))
	p.WorkoutsProgress = MetricProgress(float64(activity.Workouts), intTarget(goal.TargetWorkoutsPerWeek, daysPerWeek))

	p.OverallProgress = overall(p.CaloriesProgress, p.ProteinProgress, p.CarbsProgress, p.FatsProgress,
		p.StepsProgress, p.WorkoutsProgress)
	p.IsCompleted = p.OverallProgress >= CompletionThreshold
	return p
}

func intTarget(target *int, divisor float64) *float64 {
	if target == nil {
		return nil
	}
	t := float64(*target) / divisor
	return &t
}

// overall is the mean of the scored metrics rounded to one decimal.
func overall(metrics ...*float64) float64 {
	var sum float64
	var n int
	for _, m := range metrics {
		if m == nil {
			continue
		}
		sum += *m
		n++
	}
	if n == 0 {
		return 0
	}
	return roundTo(sum/float64(n), 1)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

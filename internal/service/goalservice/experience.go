package goalservice

import "github.com/GlebRadaev/lwcoin/internal/domain"

// DailyCompletionXP is awarded the first time a day reaches completion.
const DailyCompletionXP = 10

// levelThresholds[i] is the cumulative experience needed to reach level i+1.
var levelThresholds = []int{0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200}

func MaxLevel() int {
	return len(levelThresholds)
}

// LevelForExperience returns the highest level whose threshold is reached.
func LevelForExperience(experience int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if experience >= threshold {
			level = i + 1
		}
	}
	return level
}

func CalculateExperienceData(level, experience int) domain.ExperienceData {
	if level < 1 {
		level = 1
	}
	if experience < 0 {
		experience = 0
	}

	if level >= MaxLevel() {
		return domain.ExperienceData{
			Level:              MaxLevel(),
			Experience:         experience,
			MaxExperience:      levelThresholds[MaxLevel()-1],
			ExperienceToNext:   0,
			ProgressPercentage: 100,
			IsMaxLevel:         true,
		}
	}

	floor := levelThresholds[level-1]
	next := levelThresholds[level]
	toNext := next - experience
	if toNext < 0 {
		toNext = 0
	}

	progress := float64(experience-floor) / float64(next-floor) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return domain.ExperienceData{
		Level:              level,
		Experience:         experience,
		MaxExperience:      next,
		ExperienceToNext:   toNext,
		ProgressPercentage: roundTo(progress, 1),
	}
}

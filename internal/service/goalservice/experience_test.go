package goalservice

import (
	"testing"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateExperienceData(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		experience int
		expected   domain.ExperienceData
	}{
		{
			name:       "Fresh user",
			level:      1,
			experience: 0,
			expected:   domain.ExperienceData{Level: 1, MaxExperience: 100, ExperienceToNext: 100},
		},
		{
			name:       "Halfway through level two",
			level:      2,
			experience: 175,
			expected: domain.ExperienceData{
				Level: 2, Experience: 175, MaxExperience: 250, ExperienceToNext: 75, ProgressPercentage: 50,
			},
		},
		{
			name:       "Level nine",
			level:      9,
			experience: 2600,
			expected: domain.ExperienceData{
				Level: 9, Experience: 2600, MaxExperience: 3200, ExperienceToNext: 600, ProgressPercentage: 14.3,
			},
		},
		{
			name:       "Top level is clamped",
			level:      10,
			experience: 5000,
			expected: domain.ExperienceData{
				Level: 10, Experience: 5000, MaxExperience: 3200, ProgressPercentage: 100, IsMaxLevel: true,
			},
		},
		{
			name:       "Level beyond the table",
			level:      14,
			experience: 3300,
			expected: domain.ExperienceData{
				Level: 10, Experience: 3300, MaxExperience: 3200, ProgressPercentage: 100, IsMaxLevel: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateExperienceData(tt.level, tt.experience))
		})
	}
}

func TestLevelForExperience(t *testing.T) {
	assert.Equal(t, 1, LevelForExperience(0))
	assert.Equal(t, 1, LevelForExperience(99))
	assert.Equal(t, 2, LevelForExperience(100))
	assert.Equal(t, 5, LevelForExperience(999))
	assert.Equal(t, 10, LevelForExperience(3200))
	assert.Equal(t, 10, LevelForExperience(100000))
}

package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savu-app/savu-backend/internal/models"
)

func expense(category string, cents int64, date models.Date) models.Expense {
	return models.Expense{
		Username: "alice",
		Category: category,
		Amount:   models.Amount(cents),
		WeekDate: date,
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart string
		wantEnd   string
	}{
		{"wednesday", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), "2025-01-13", "2025-01-19"},
		{"monday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), "2025-01-13", "2025-01-19"},
		{"sunday", time.Date(2025, 1, 19, 23, 59, 59, 0, time.UTC), "2025-01-13", "2025-01-19"},
		{"year boundary", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), "2024-12-30", "2025-01-05"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := Week(tc.ref)
			assert.Equal(t, tc.wantStart, start.String())
			assert.Equal(t, tc.wantEnd, end.String())
		})
	}
}

func TestSummarizeFiltersToWeek(t *testing.T) {
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("food", 1250, models.NewDate(2025, 1, 13)),   // Monday, in
		expense("food", 750, models.NewDate(2025, 1, 19)),    // Sunday, in
		expense("travel", 500, models.NewDate(2025, 1, 12)),  // previous Sunday, out
		expense("travel", 900, models.NewDate(2025, 1, 20)),  // next Monday, out
	}

	report := Summarize(expenses, ref)

	assert.Equal(t, 2, report.Count)
	assert.Equal(t, models.Amount(2000), report.Total)
	assert.Equal(t, map[string]models.Amount{"food": 2000}, report.Categories)
	assert.Equal(t, "2025-01-13 to 2025-01-19", report.Period())
}

func TestSummarizeScenario(t *testing.T) {
	// alice adds food 12.50 and food 7.50 on this week's Monday.
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	monday := models.NewDate(2025, 1, 13)
	report := Summarize([]models.Expense{
		expense("food", 1250, monday),
		expense("food", 750, monday),
	}, ref)

	require.NotNil(t, report.Top)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, models.Amount(2000), report.Total)
	assert.Equal(t, models.Amount(2000), report.Categories["food"])
	assert.Equal(t, "food", report.Top.Category)
	assert.Equal(t, models.Amount(2000), report.Top.Amount)
}

func TestSummarizeTotalEqualsCategorySum(t *testing.T) {
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	report := Summarize([]models.Expense{
		expense("food", 1250, models.NewDate(2025, 1, 13)),
		expense("travel", 4200, models.NewDate(2025, 1, 14)),
		expense("food", 305, models.NewDate(2025, 1, 16)),
		expense("rent", 90000, models.NewDate(2025, 1, 17)),
	}, ref)

	var sum models.Amount
	var max models.Amount
	for _, amount := range report.Categories {
		sum += amount
		if amount > max {
			max = amount
		}
	}
	assert.Equal(t, report.Total, sum)
	require.NotNil(t, report.Top)
	assert.Equal(t, max, report.Top.Amount)
	assert.Equal(t, "rent", report.Top.Category)
}

func TestSummarizeTieBreaksLexicographically(t *testing.T) {
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	monday := models.NewDate(2025, 1, 13)
	report := Summarize([]models.Expense{
		expense("transport", 1000, monday),
		expense("food", 1000, monday),
		expense("books", 1000, monday),
	}, ref)

	require.NotNil(t, report.Top)
	assert.Equal(t, "books", report.Top.Category)
	assert.Equal(t, models.Amount(1000), report.Top.Amount)
}

func TestSummarizeEmptyWeek(t *testing.T) {
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	report := Summarize([]models.Expense{
		expense("food", 1250, models.NewDate(2025, 1, 6)), // previous week
	}, ref)

	assert.Zero(t, report.Count)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.Categories)
	assert.Nil(t, report.Top)
	assert.Equal(t, "2025-01-13 to 2025-01-19", report.Period())
}

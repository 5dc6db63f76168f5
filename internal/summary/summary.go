// Package summary aggregates a user's expenses for one calendar week.
package summary

import (
	"time"

	"github.com/savu-app/savu-backend/internal/models"
)

// CategoryTotal pairs a category with its cumulative amount.
type CategoryTotal struct {
	Category string        `json:"category"`
	Amount   models.Amount `json:"amount"`
}

// Report is the result of folding one week of expenses. Count is zero when
// nothing fell inside the week; callers must treat that as a distinct
// "no expenses" result rather than an empty breakdown.
type Report struct {
	Start      models.Date
	End        models.Date
	Categories map[string]models.Amount
	Total      models.Amount
	Top        *CategoryTotal
	Count      int
}

// Week returns the Monday through Sunday range containing the reference
// instant's UTC date.
func Week(ref time.Time) (models.Date, models.Date) {
	today := models.DateOf(ref)
	// time.Weekday counts Sunday as 0; shift so Monday is day 0.
	offset := (int(today.Weekday()) + 6) % 7
	start := today.AddDays(-offset)
	return start, start.AddDays(6)
}

// Summarize filters expenses to the week containing ref and folds them into
// per-category totals. The reference instant is explicit so tests can pin the
// week instead of depending on the wall clock.
func Summarize(expenses []models.Expense, ref time.Time) Report {
	start, end := Week(ref)
	report := Report{
		Start:      start,
		End:        end,
		Categories: make(map[string]models.Amount),
	}

	for _, expense := range expenses {
		if expense.WeekDate.Before(start.Time) || expense.WeekDate.After(end.Time) {
			continue
		}
		report.Categories[expense.Category] += expense.Amount
		report.Total += expense.Amount
		report.Count++
	}

	// Highest category; ties go to the lexicographically smallest name so the
	// result does not depend on map iteration order.
	for category, amount := range report.Categories {
		if report.Top == nil ||
			amount > report.Top.Amount ||
			(amount == report.Top.Amount && category < report.Top.Category) {
			report.Top = &CategoryTotal{Category: category, Amount: amount}
		}
	}

	return report
}

// Period renders the week range the way the API reports it.
func (r Report) Period() string {
	return r.Start.String() + " to " + r.End.String()
}

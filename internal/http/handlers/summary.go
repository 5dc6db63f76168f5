package handlers

import (
	"net/http"

	"github.com/savu-app/savu-backend/internal/http/respond"
	"github.com/savu-app/savu-backend/internal/logging"
	"github.com/savu-app/savu-backend/internal/models/dto"
	"github.com/savu-app/savu-backend/internal/summary"
)

func (h *ExpenseHandler) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !h.userExists(w, r, username) {
		return
	}

	expenses, err := h.store.ListExpenses(r.Context(), username)
	if err != nil {
		logging.Logger.WithError(err).WithField("username", username).Error("list expenses failed")
		respond.Error(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	report := summary.Summarize(expenses, h.now().UTC())
	if report.Count == 0 {
		respond.JSON(w, http.StatusOK, dto.EmptyWeekResponse{
			Username: username,
			Period:   report.Period(),
			Message:  "No expenses found for the current week.",
		})
		return
	}

	respond.JSON(w, http.StatusOK, dto.WeeklySummaryResponse{
		Username:        username,
		Period:          report.Period(),
		CategorySummary: report.Categories,
		TotalAmount:     report.Total,
		HighestCategory: report.Top,
		ExpenseCount:    report.Count,
	})
}

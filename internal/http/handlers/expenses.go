package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/savu-app/savu-backend/internal/http/respond"
	"github.com/savu-app/savu-backend/internal/logging"
	"github.com/savu-app/savu-backend/internal/models"
	"github.com/savu-app/savu-backend/internal/models/dto"
	"github.com/savu-app/savu-backend/internal/storage"
)

// ExpenseHandler owns expense CRUD and the weekly summary. The clock is a
// field so summary tests can pin the reference week.
type ExpenseHandler struct {
	store storage.Store
	now   func() time.Time
}

// NewExpenseHandler constructs the handler with the wall clock.
func NewExpenseHandler(store storage.Store) *ExpenseHandler {
	return &ExpenseHandler{store: store, now: time.Now}
}

// Register attaches expense routes to the mux.
func (h *ExpenseHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/add_expense", h.handleAdd)
	mux.HandleFunc("GET /api/get_expenses/{username}", h.handleList)
	mux.HandleFunc("GET /api/weekly_summary/{username}", h.handleWeeklySummary)
	mux.HandleFunc("PUT /api/expenses/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/expenses/{id}", h.handleDelete)
}

func (h *ExpenseHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req dto.AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Category) == "" || req.Amount == nil || req.WeekDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !h.userExists(w, r, username) {
		return
	}

	expense, err := h.store.CreateExpense(r.Context(), models.Expense{
		Username: username,
		Category: req.Category,
		Amount:   *req.Amount,
		WeekDate: req.WeekDate,
	})
	if err != nil {
		logging.Logger.WithError(err).WithField("username", username).Error("create expense failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to add expense: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ExpenseResponse{
		Message: "Expense added successfully",
		Expense: expense,
	})
}

func (h *ExpenseHandler) handleList(w http.ResponseWriter, r *http.Request) {
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

	respond.JSON(w, http.StatusOK, dto.ExpenseListResponse{
		Username:      username,
		Expenses:      expenses,
		TotalExpenses: len(expenses),
	})
}

func (h *ExpenseHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	expense, err := h.store.UpdateExpense(r.Context(), id, storage.ExpenseUpdate{
		Category: req.Category,
		Amount:   req.Amount,
		WeekDate: req.WeekDate,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Expense not found")
			return
		}
		logging.Logger.WithError(err).WithField("expense_id", id).Error("update expense failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to update expense: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, dto.ExpenseResponse{
		Message: "Expense updated successfully",
		Expense: expense,
	})
}

func (h *ExpenseHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Expense not found")
			return
		}
		logging.Logger.WithError(err).WithField("expense_id", id).Error("delete expense failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to delete expense: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}

// userExists runs the single existence check handlers perform before touching
// expenses; it writes the response on failure.
func (h *ExpenseHandler) userExists(w http.ResponseWriter, r *http.Request, username string) bool {
	if _, err := h.store.GetUser(r.Context(), username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return false
		}
		logging.Logger.WithError(err).WithField("username", username).Error("fetch user failed")
		respond.Error(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return false
	}
	return true
}

func expenseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid expense id")
		return 0, false
	}
	return id, true
}

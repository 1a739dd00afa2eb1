package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/account"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/auth"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/expense"
)

const healthCheckTimeout = 2 * time.Second

// Router wires HTTP endpoints to services.
type Router struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	auth     auth.Service
	accounts account.Service
	expenses expense.Service
	dbHealth func(context.Context) error
}

// NewRouter assembles routes with dependencies.
func NewRouter(logger *slog.Logger, authSvc auth.Service, accountSvc account.Service, expenseSvc expense.Service, dbHealth func(context.Context) error) *Router {
	r := &Router{
		mux:      http.NewServeMux(),
		logger:   logger,
		auth:     authSvc,
		accounts: accountSvc,
		expenses: expenseSvc,
		dbHealth: dbHealth,
	}
	r.register()
	return r
}

// ServeHTTP applies CORS headers, answers preflights, and delegates to the
// mux. No route demands the bearer token login issues; reads are open to any
// caller, matching the deployed behavior.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	applyCORS(w)
	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	r.mux.ServeHTTP(w, req)
}

func (r *Router) register() {
	r.mux.HandleFunc("GET /{$}", r.audit(r.handleRoot))
	r.mux.HandleFunc("GET /healthz", r.audit(r.handleHealthz))
	r.mux.HandleFunc("POST /signup", r.audit(r.handleSignup))
	r.mux.HandleFunc("POST /login", r.audit(r.handleLogin))
	r.mux.HandleFunc("GET /users/{id}", r.audit(r.handleGetUser))
	r.mux.HandleFunc("POST /add-expense", r.audit(r.handleAddExpense))
	r.mux.HandleFunc("GET /accounts/", r.audit(r.handleAccountSubroutes))
}

// handleAccountSubroutes dispatches /accounts/current/{userId} and
// /accounts/{accountId}/expenses. The two shapes overlap at the mux level, so
// the split happens here.
func (r *Router) handleAccountSubroutes(w http.ResponseWriter, req *http.Request) {
	rest := strings.TrimPrefix(req.URL.Path, "/accounts/")
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 2 && parts[0] == "current":
		r.handleCurrentAccounts(w, req, parts[1])
	case len(parts) == 2 && parts[1] == "expenses":
		r.handleAccountExpenses(w, req, parts[0])
	default:
		writeText(w, http.StatusNotFound, "Not found")
	}
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	writeText(w, http.StatusOK, "Backend is running")
}

func (r *Router) handleHealthz(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
	defer cancel()
	if err := r.dbHealth(ctx); err != nil {
		r.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) handleSignup(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := r.auth.Signup(req.Context(), payload.Email, payload.Password, payload.Name); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			writeText(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, auth.ErrMissingField):
			writeText(w, http.StatusBadRequest, "Missing required fields")
		default:
			r.logger.Error("signup failed", "error", err)
			writeText(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	writeText(w, http.StatusOK, "User and personal account created successfully")
}

func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, token, err := r.auth.Login(req.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeText(w, http.StatusNotFound, "User not found")
		case errors.Is(err, auth.ErrInvalidPassword):
			writeText(w, http.StatusUnauthorized, "Invalid password")
		default:
			r.logger.Error("login failed", "error", err)
			writeText(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"auth": true, "token": token})
}

func (r *Router) handleGetUser(w http.ResponseWriter, req *http.Request) {
	user, err := r.accounts.GetUser(req.Context(), req.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeText(w, http.StatusBadRequest, "Invalid user ID")
		case errors.Is(err, repository.ErrNotFound):
			writeText(w, http.StatusNotFound, "User not found")
		default:
			r.logger.Error("user lookup failed", "error", err)
			writeText(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": user.Name})
}

func (r *Router) handleAddExpense(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		Name      string     `json:"name"`
		Amount    *float64   `json:"amount"`
		Date      *time.Time `json:"date"`
		CreatedBy string     `json:"created_by"`
		Type      string     `json:"type"`
		ImagePath string     `json:"image_path"`
		AccountID string     `json:"account_id"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in := expense.Input{
		Name:      payload.Name,
		Amount:    payload.Amount,
		Date:      payload.Date,
		CreatedBy: payload.CreatedBy,
		Type:      payload.Type,
		ImagePath: payload.ImagePath,
		AccountID: payload.AccountID,
	}
	if _, err := r.expenses.Add(req.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeText(w, http.StatusBadRequest, "Invalid account or user ID")
		case errors.Is(err, expense.ErrMissingField):
			writeText(w, http.StatusBadRequest, "Missing required expense fields")
		default:
			r.logger.Error("expense insert failed", "error", err)
			writeText(w, http.StatusInternalServerError, "Error inserting expense into database")
		}
		return
	}
	writeText(w, http.StatusOK, "Expense added successfully")
}

func (r *Router) handleCurrentAccounts(w http.ResponseWriter, req *http.Request, userID string) {
	accounts, err := r.accounts.ListByAdmin(req.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			writeText(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		r.logger.Error("account list failed", "error", err)
		writeText(w, http.StatusInternalServerError, "Error fetching account details")
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (r *Router) handleAccountExpenses(w http.ResponseWriter, req *http.Request, accountID string) {
	expenses, err := r.expenses.ListByAccount(req.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			writeText(w, http.StatusBadRequest, "Invalid account ID")
			return
		}
		r.logger.Error("expense list failed", "error", err)
		writeText(w, http.StatusInternalServerError, "Error fetching expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

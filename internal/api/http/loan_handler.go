package http

import (
	"encoding/json"
	"net/http"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/service"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	settlement service.SettlementService
}

func NewLoanHandler(settlementSvc service.SettlementService) *LoanHandler {
	return &LoanHandler{settlement: settlementSvc}
}

type borrowRequest struct {
	BookID    int64 `json:"book_id"`
	PaidCents int64 `json:"paid_cents"`
}

func (h *LoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	loanID, err := h.settlement.Borrow(r.Context(), callerAccount(r.Context()), req.BookID, req.PaidCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"loan_id": loanID})
}

type returnRequest struct {
	Condition domain.BookCondition `json:"condition"`
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	result, err := h.settlement.Return(r.Context(), callerAccount(r.Context()), id, req.Condition)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Compensate pays out accrued overdue compensation on a still-active loan.
// Callable by anyone.
func (h *LoanHandler) Compensate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	paid, err := h.settlement.CompensateOverdue(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"paid_cents": paid})
}

func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	loan, err := h.settlement.GetLoan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) ListByBorrower(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]
	loans, err := h.settlement.ListLoansByBorrower(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loans": loans})
}

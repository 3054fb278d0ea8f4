package http

import (
	"encoding/json"
	"net/http"

	"booklend-backend/internal/config"
	"booklend-backend/internal/domain"
	"booklend-backend/internal/security"
	"booklend-backend/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	pickups    service.PickupPointService
	settlement service.SettlementService
	ledger     service.LedgerService
	tokens     security.TokenManager
	admin      config.AdminConfig
}

func NewAdminHandler(
	pickupSvc service.PickupPointService,
	settlementSvc service.SettlementService,
	ledgerSvc service.LedgerService,
	tokens security.TokenManager,
	admin config.AdminConfig,
) *AdminHandler {
	return &AdminHandler{
		pickups:    pickupSvc,
		settlement: settlementSvc,
		ledger:     ledgerSvc,
		tokens:     tokens,
		admin:      admin,
	}
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges the administrator credentials for an admin token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	if req.Email != h.admin.Email || !security.CheckPassword(h.admin.PasswordHash, req.Password) {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	token, err := h.tokens.GenerateToken(h.admin.Account, security.RoleAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type pickupPointRequest struct {
	Name string `json:"name"`
}

func (h *AdminHandler) AddPickupPoint(w http.ResponseWriter, r *http.Request) {
	var req pickupPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.pickups.Add(r.Context(), req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (h *AdminHandler) RemovePickupPoint(w http.ResponseWriter, r *http.Request) {
	if err := h.pickups.Remove(r.Context(), mux.Vars(r)["name"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) ListPickupPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.pickups.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pickup_points": points})
}

// WithdrawTreasury is the emergency circuit breaker moving accumulated
// protocol fees to the administrator account.
func (h *AdminHandler) WithdrawTreasury(w http.ResponseWriter, r *http.Request) {
	withdrawn, err := h.settlement.WithdrawTreasury(r.Context(), callerAccount(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"withdrawn_cents": withdrawn})
}

type topUpRequest struct {
	Cents int64 `json:"cents"`
}

func (h *AdminHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.ledger.TopUp(r.Context(), mux.Vars(r)["account"], req.Cents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

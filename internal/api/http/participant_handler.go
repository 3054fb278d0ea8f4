package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/service"

	"github.com/gorilla/mux"
)

type ParticipantHandler struct {
	identity      service.IdentityService
	ranking       service.RankingService
	ledger        service.LedgerService
	notifications service.NotificationService
}

func NewParticipantHandler(
	identitySvc service.IdentityService,
	rankingSvc service.RankingService,
	ledgerSvc service.LedgerService,
	notificationSvc service.NotificationService,
) *ParticipantHandler {
	return &ParticipantHandler{
		identity:      identitySvc,
		ranking:       rankingSvc,
		ledger:        ledgerSvc,
		notifications: notificationSvc,
	}
}

type setNameRequest struct {
	Name string `json:"name"`
}

func (h *ParticipantHandler) SetDisplayName(w http.ResponseWriter, r *http.Request) {
	var req setNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.identity.SetDisplayName(r.Context(), callerAccount(r.Context()), req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type setContactRequest struct {
	Email string `json:"email"`
}

func (h *ParticipantHandler) SetContactEmail(w http.ResponseWriter, r *http.Request) {
	var req setContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.identity.SetContactEmail(r.Context(), callerAccount(r.Context()), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ParticipantHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.identity.GetProfile(r.Context(), mux.Vars(r)["account"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ParticipantHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.Balance(r.Context(), mux.Vars(r)["account"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"balance_cents": balance})
}

func (h *ParticipantHandler) GetLedgerEntries(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	entries, total, err := h.ledger.Entries(r.Context(), mux.Vars(r)["account"], page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "total": total})
}

func (h *ParticipantHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ParticipantHandler) TopLenders(w http.ResponseWriter, r *http.Request) {
	h.leaderboard(w, r, h.ranking.TopLenders)
}

func (h *ParticipantHandler) TopBorrowers(w http.ResponseWriter, r *http.Request) {
	h.leaderboard(w, r, h.ranking.TopBorrowers)
}

func (h *ParticipantHandler) leaderboard(w http.ResponseWriter, r *http.Request, top func(ctx context.Context, limit int) ([]domain.Participant, error)) {
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = v
	}
	ranked, err := top(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"participants": ranked})
}

func (h *ParticipantHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	notes, total, err := h.notifications.GetNotifications(r.Context(), callerAccount(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notes, "total": total})
}

func (h *ParticipantHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), callerAccount(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

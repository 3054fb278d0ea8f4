package http

import (
	"booklend-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes. GET routes are the public read-only
// query surface; mutating routes require a participant token and the admin
// subtree an admin token, with overdue compensation the one open mutation.
func NewRouter(
	books *BookHandler,
	loans *LoanHandler,
	participants *ParticipantHandler,
	admin *AdminHandler,
	tm security.TokenManager,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public read-only query surface.
	api.HandleFunc("/books", books.ListBooks).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}", books.GetBook).Methods("GET")
	api.HandleFunc("/loans/{id:[0-9]+}", loans.GetLoan).Methods("GET")
	api.HandleFunc("/participants/{account}", participants.GetProfile).Methods("GET")
	api.HandleFunc("/participants/{account}/books", books.ListByOwner).Methods("GET")
	api.HandleFunc("/participants/{account}/loans", loans.ListByBorrower).Methods("GET")
	api.HandleFunc("/participants/{account}/balance", participants.GetBalance).Methods("GET")
	api.HandleFunc("/participants/{account}/ledger", participants.GetLedgerEntries).Methods("GET")
	api.HandleFunc("/stats", participants.GetStats).Methods("GET")
	api.HandleFunc("/pickup-points", admin.ListPickupPoints).Methods("GET")
	api.HandleFunc("/leaderboard/lenders", participants.TopLenders).Methods("GET")
	api.HandleFunc("/leaderboard/borrowers", participants.TopBorrowers).Methods("GET")

	// Anyone may trigger overdue compensation; the payout always goes to
	// the lender, so there is nothing for the caller to gain.
	api.HandleFunc("/loans/{id:[0-9]+}/compensate", loans.Compensate).Methods("POST")

	api.HandleFunc("/auth/admin", admin.Login).Methods("POST")

	// Participant operations.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tm))
	authed.HandleFunc("/books", books.ListBook).Methods("POST")
	authed.HandleFunc("/loans", loans.Borrow).Methods("POST")
	authed.HandleFunc("/loans/{id:[0-9]+}/return", loans.Return).Methods("POST")
	authed.HandleFunc("/me/name", participants.SetDisplayName).Methods("PUT")
	authed.HandleFunc("/me/contact", participants.SetContactEmail).Methods("PUT")
	authed.HandleFunc("/me/notifications", participants.GetNotifications).Methods("GET")
	authed.HandleFunc("/me/notifications/{id:[0-9]+}/read", participants.MarkNotificationRead).Methods("POST")

	// Administrative surface.
	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(AuthMiddleware(tm), RequireAdmin)
	adminRoutes.HandleFunc("/pickup-points", admin.AddPickupPoint).Methods("POST")
	adminRoutes.HandleFunc("/pickup-points/{name}", admin.RemovePickupPoint).Methods("DELETE")
	adminRoutes.HandleFunc("/withdraw", admin.WithdrawTreasury).Methods("POST")
	adminRoutes.HandleFunc("/participants/{account}/topup", admin.TopUp).Methods("POST")

	return r
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	catalog service.CatalogService
}

func NewBookHandler(catalogSvc service.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalogSvc}
}

func (h *BookHandler) ListBook(w http.ResponseWriter, r *http.Request) {
	var input service.ListBookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	id, err := h.catalog.ListBook(r.Context(), callerAccount(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"book_id": id})
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	book, err := h.catalog.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	books, total, err := h.catalog.ListBooks(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books, "total": total})
}

func (h *BookHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]
	books, err := h.catalog.ListByOwner(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}

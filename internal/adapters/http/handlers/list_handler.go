package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// ListHandler handles HTTP requests for lists and their items.
type ListHandler struct {
	svc      ports.ListService
	defaults Defaults
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService, defaults Defaults) *ListHandler {
	return &ListHandler{svc: svc, defaults: defaults}
}

// QueryLists handles GET /api/v1/lists.
func (h *ListHandler) QueryLists(w http.ResponseWriter, r *http.Request) {
	strategy, err := parseItemSort(r, h.defaults.ItemSort)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	order, err := parseOrder(r, h.defaults.ListSort, string(ports.ListSortName), string(ports.ListSortCreated))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	lists, err := h.svc.QueryLists(r.Context(), ports.ListQuery{
		Sort:         ports.ListSort(order),
		NameContains: r.URL.Query().Get(queryNameMatch),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListCollectionResponse(lists, strategy))
}

// CreateList handles POST /api/v1/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContainerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.CreateList(r.Context(), req.Name, req.Details)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListResponse(l, h.defaults.ItemSort))
}

// GetList handles GET /api/v1/lists/{id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	strategy, err := parseItemSort(r, h.defaults.ItemSort)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l, strategy))
}

// UpdateList handles PATCH /api/v1/lists/{id}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateContainerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.UpdateList(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l, h.defaults.ItemSort))
}

// DeleteList handles DELETE /api/v1/lists/{id}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/lists/{id}/items.
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), id, req.Name, req.Priority)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListItemResponse(item))
}

// UpdateItem handles PATCH /api/v1/lists/{id}/items/{itemId}.
func (h *ListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, err := parseIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, itemID, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListItemResponse(item))
}

// RemoveItem handles DELETE /api/v1/lists/{id}/items/{itemId}.
func (h *ListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, err := parseIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id, itemID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Complete handles POST /api/v1/lists/{id}/complete.
func (h *ListHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setAllDone(w, r, true)
}

// Reset handles POST /api/v1/lists/{id}/reset.
func (h *ListHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.setAllDone(w, r, false)
}

func (h *ListHandler) setAllDone(w http.ResponseWriter, r *http.Request, done bool) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.SetAllDone(r.Context(), id, done)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l, h.defaults.ItemSort))
}

// RemoveDoneItems handles DELETE /api/v1/lists/{id}/items/done.
func (h *ListHandler) RemoveDoneItems(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.RemoveDoneItems(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l, h.defaults.ItemSort))
}

// Capture handles POST /api/v1/lists/{id}/capture.
func (h *ListHandler) Capture(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bp, err := h.svc.Capture(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBlueprintResponse(bp, checklist.Alphabetic))
}

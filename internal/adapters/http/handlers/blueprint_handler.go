package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// BlueprintHandler handles HTTP requests for blueprints and their items.
// Blueprint items are always rendered alphabetically unless the request
// names another ordering.
type BlueprintHandler struct {
	svc      ports.BlueprintService
	defaults Defaults
}

// NewBlueprintHandler creates a new BlueprintHandler.
func NewBlueprintHandler(svc ports.BlueprintService, defaults Defaults) *BlueprintHandler {
	return &BlueprintHandler{svc: svc, defaults: defaults}
}

// QueryBlueprints handles GET /api/v1/blueprints.
func (h *BlueprintHandler) QueryBlueprints(w http.ResponseWriter, r *http.Request) {
	strategy, err := parseItemSort(r, checklist.Alphabetic)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	order, err := parseOrder(r, h.defaults.BlueprintSort, string(ports.BlueprintSortName), string(ports.BlueprintSortUsage))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bps, err := h.svc.QueryBlueprints(r.Context(), ports.BlueprintQuery{
		Sort:         ports.BlueprintSort(order),
		NameContains: r.URL.Query().Get(queryNameMatch),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlueprintCollectionResponse(bps, strategy))
}

// CreateBlueprint handles POST /api/v1/blueprints.
func (h *BlueprintHandler) CreateBlueprint(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContainerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bp, err := h.svc.CreateBlueprint(r.Context(), req.Name, req.Details)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBlueprintResponse(bp, checklist.Alphabetic))
}

// GetBlueprint handles GET /api/v1/blueprints/{id}.
func (h *BlueprintHandler) GetBlueprint(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	strategy, err := parseItemSort(r, checklist.Alphabetic)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bp, err := h.svc.GetBlueprint(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlueprintResponse(bp, strategy))
}

// UpdateBlueprint handles PATCH /api/v1/blueprints/{id}.
func (h *BlueprintHandler) UpdateBlueprint(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateContainerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bp, err := h.svc.UpdateBlueprint(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlueprintResponse(bp, checklist.Alphabetic))
}

// DeleteBlueprint handles DELETE /api/v1/blueprints/{id}.
func (h *BlueprintHandler) DeleteBlueprint(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteBlueprint(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/blueprints/{id}/items.
func (h *BlueprintHandler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusCreated, dto.ToBlueprintItemResponse(item))
}

// UpdateItem handles PATCH /api/v1/blueprints/{id}/items/{itemId}.
func (h *BlueprintHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, dto.ToBlueprintItemResponse(item))
}

// RemoveItem handles DELETE /api/v1/blueprints/{id}/items/{itemId}.
func (h *BlueprintHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
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

// Materialize handles POST /api/v1/blueprints/{id}/materialize.
func (h *BlueprintHandler) Materialize(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.Materialize(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListResponse(l, h.defaults.ItemSort))
}

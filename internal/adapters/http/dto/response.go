// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
)

// ListItemResponse represents a single list item in HTTP responses.
type ListItemResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Done     bool      `json:"done"`
	Priority bool      `json:"priority"`
}

// ListResponse represents a list with its items and derived completion.
type ListResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Details    string             `json:"details"`
	CreatedAt  string             `json:"created_at"`
	Items      []ListItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	DoneCount  int                `json:"done_count"`
	Completion float64            `json:"completion"`
	IsDone     bool               `json:"is_done"`
}

// ListCollectionResponse represents a collection of lists.
type ListCollectionResponse struct {
	Lists []ListResponse `json:"lists"`
	Count int            `json:"count"`
}

// ToListItemResponse converts a domain ListItem to an HTTP response DTO.
func ToListItemResponse(it *checklist.ListItem) ListItemResponse {
	return ListItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Done:     it.Done,
		Priority: it.Priority,
	}
}

// ToListResponse converts a domain List to an HTTP response DTO with items
// ordered by strategy.
func ToListResponse(l *checklist.List, strategy checklist.Strategy) ListResponse {
	sorted := checklist.SortListItems(l.Items, strategy)
	items := make([]ListItemResponse, len(sorted))
	for i := range sorted {
		items[i] = ToListItemResponse(&sorted[i])
	}
	return ListResponse{
		ID:         l.ID,
		Name:       l.Name,
		Details:    l.Details,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		Items:      items,
		ItemCount:  len(items),
		DoneCount:  l.DoneCount(),
		Completion: l.Completion(),
		IsDone:     l.IsDone(),
	}
}

// ToListCollectionResponse converts domain lists to a collection DTO.
func ToListCollectionResponse(lists []checklist.List, strategy checklist.Strategy) ListCollectionResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = ToListResponse(&lists[i], strategy)
	}
	return ListCollectionResponse{Lists: out, Count: len(out)}
}

// BlueprintItemResponse represents a single blueprint item.
type BlueprintItemResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Priority bool      `json:"priority"`
}

// BlueprintResponse represents a blueprint with its items.
type BlueprintResponse struct {
	ID         uuid.UUID               `json:"id"`
	Name       string                  `json:"name"`
	Details    string                  `json:"details"`
	UsageCount int                     `json:"usage_count"`
	Items      []BlueprintItemResponse `json:"items"`
	ItemCount  int                     `json:"item_count"`
}

// BlueprintCollectionResponse represents a collection of blueprints.
type BlueprintCollectionResponse struct {
	Blueprints []BlueprintResponse `json:"blueprints"`
	Count      int                 `json:"count"`
}

// ToBlueprintItemResponse converts a domain BlueprintItem to a DTO.
func ToBlueprintItemResponse(it *checklist.BlueprintItem) BlueprintItemResponse {
	return BlueprintItemResponse{ID: it.ID, Name: it.Name, Priority: it.Priority}
}

// ToBlueprintResponse converts a domain Blueprint to a DTO with items
// ordered by strategy.
func ToBlueprintResponse(bp *checklist.Blueprint, strategy checklist.Strategy) BlueprintResponse {
	sorted := checklist.SortBlueprintItems(bp.Items, strategy)
	items := make([]BlueprintItemResponse, len(sorted))
	for i := range sorted {
		items[i] = ToBlueprintItemResponse(&sorted[i])
	}
	return BlueprintResponse{
		ID:         bp.ID,
		Name:       bp.Name,
		Details:    bp.Details,
		UsageCount: bp.UsageCount,
		Items:      items,
		ItemCount:  len(items),
	}
}

// ToBlueprintCollectionResponse converts domain blueprints to a collection
// DTO.
func ToBlueprintCollectionResponse(bps []checklist.Blueprint, strategy checklist.Strategy) BlueprintCollectionResponse {
	out := make([]BlueprintResponse, len(bps))
	for i := range bps {
		out[i] = ToBlueprintResponse(&bps[i], strategy)
	}
	return BlueprintCollectionResponse{Blueprints: out, Count: len(out)}
}

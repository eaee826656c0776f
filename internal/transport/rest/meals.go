package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/internal/service/meal"
)

// mealService defines the minimal interface needed by MealHandler.
type mealService interface {
	CreateMeal(ctx context.Context, input meal.MealInput) (*domain.Meal, error)
	ListMeals(ctx context.Context) ([]*domain.Meal, error)
	GetMeal(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	UpdateMeal(ctx context.Context, mealID uuid.UUID, input meal.MealInput) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, mealID uuid.UUID) error
	Metrics(ctx context.Context) (domain.Metrics, error)
}

// mealRecorder counts meal events.
type mealRecorder interface {
	MealCreated()
}

// MealHandler serves meal REST endpoints. Every route requires an
// authenticated user.
type MealHandler struct {
	svc     mealService
	metrics mealRecorder
	log     *slog.Logger
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(svc mealService, metrics mealRecorder, logger *slog.Logger) *MealHandler {
	return &MealHandler{svc: svc, metrics: metrics, log: logger.With("handler", "meal")}
}

type mealRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	OccurredAt  *time.Time `json:"occurredAt"`
	OnDiet      *bool      `json:"onDiet"`
}

func (req mealRequest) toInput() meal.MealInput {
	return meal.MealInput{
		Name:        req.Name,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
		OnDiet:      req.OnDiet,
	}
}

type mealResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
	OnDiet      bool      `json:"onDiet"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type mealEnvelope struct {
	Meal mealResponse `json:"meal"`
}

type mealListResponse struct {
	Meals []mealResponse `json:"meals"`
}

type metricsResponse struct {
	Total      int `json:"total"`
	Inside     int `json:"inside"`
	Outside    int `json:"outside"`
	BestStreak int `json:"bestStreak"`
}

// Create handles POST /meals.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.CreateMeal(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.MealCreated()
	writeJSON(w, http.StatusCreated, mealEnvelope{Meal: toMealResponse(m)})
}

// List handles GET /meals.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.svc.ListMeals(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := mealListResponse{Meals: make([]mealResponse, 0, len(meals))}
	for _, m := range meals {
		resp.Meals = append(resp.Meals, toMealResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /meals/{id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.GetMeal(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealEnvelope{Meal: toMealResponse(m)})
}

// Update handles PUT /meals/{id}.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}

	var req mealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.UpdateMeal(r.Context(), id, req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealEnvelope{Meal: toMealResponse(m)})
}

// Delete handles DELETE /meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteMeal(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Metrics handles GET /meals/metrics.
func (h *MealHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, metricsResponse{
		Total:      m.Total,
		Inside:     m.OnDiet,
		Outside:    m.OffDiet,
		BestStreak: m.BestStreak,
	})
}

// mealID parses the {id} path value. A malformed id is answered as 404 so
// that it looks the same as an absent meal.
func mealID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func toMealResponse(m *domain.Meal) mealResponse {
	return mealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		OccurredAt:  m.OccurredAt.UTC(),
		OnDiet:      m.OnDiet,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

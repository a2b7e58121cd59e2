package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/workoutlabs/workout-api/internal/api/shared"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/service"
	"github.com/workoutlabs/workout-api/internal/store"
)

// CreateTrainingCenterRequest represents the request body for creating a
// new training center.
type CreateTrainingCenterRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// TrainingCenterResponse represents the response data for a training center.
type TrainingCenterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TrainingCenterHandler handles training-center-related HTTP requests.
type TrainingCenterHandler struct {
	trainingCenterService service.TrainingCenterService
}

// NewTrainingCenterHandler creates a new TrainingCenterHandler.
func NewTrainingCenterHandler(trainingCenterService service.TrainingCenterService) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		trainingCenterService: trainingCenterService,
	}
}

// CreateTrainingCenter handles POST /api/v1/training-centers requests.
func (h *TrainingCenterHandler) CreateTrainingCenter(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingCenterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tc, err := h.trainingCenterService.CreateTrainingCenter(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrTrainingCenterNameExists) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				fmt.Sprintf("Já existe um centro de treinamento com o nome: %s", req.Name), err)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, trainingCenterToResponse(tc))
}

// ListTrainingCenters handles GET /api/v1/training-centers requests.
func (h *TrainingCenterHandler) ListTrainingCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.trainingCenterService.ListTrainingCenters(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]TrainingCenterResponse, 0, len(centers))
	for _, tc := range centers {
		items = append(items, trainingCenterToResponse(tc))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetTrainingCenter handles GET /api/v1/training-centers/{id} requests.
func (h *TrainingCenterHandler) GetTrainingCenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tc, err := h.trainingCenterService.GetTrainingCenter(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trainingCenterToResponse(tc))
}

// trainingCenterToResponse converts a domain.TrainingCenter to a TrainingCenterResponse.
func trainingCenterToResponse(tc *domain.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:        tc.ID,
		Name:      tc.Name,
		CreatedAt: tc.CreatedAt,
	}
}

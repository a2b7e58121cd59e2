package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/workoutlabs/workout-api/internal/api/shared"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/service"
	"github.com/workoutlabs/workout-api/internal/store"
)

// CreateAthleteRequest represents the request body for creating a new athlete.
// The category and training center are referenced by exact name.
type CreateAthleteRequest struct {
	Name           string `json:"name"            validate:"required,min=1,max=50"`
	CPF            string `json:"cpf"             validate:"required,len=11,numeric"`
	Category       string `json:"category"        validate:"required,min=1,max=50"`
	TrainingCenter string `json:"training_center" validate:"required,min=1,max=50"`
}

// AthleteResponse represents the response data for an athlete.
type AthleteResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CPF            string    `json:"cpf"`
	Category       string    `json:"category"`
	TrainingCenter string    `json:"training_center"`
	CreatedAt      time.Time `json:"created_at"`
}

// AthletePageResponse is the page envelope for athlete listings.
type AthletePageResponse struct {
	Items  []AthleteResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// AthleteHandler handles athlete-related HTTP requests.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
	}
}

// CreateAthlete handles POST /api/v1/athletes requests.
func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req CreateAthleteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	athlete, err := h.athleteService.CreateAthlete(r.Context(), service.CreateAthleteInput{
		Name:               req.Name,
		CPF:                req.CPF,
		CategoryName:       req.Category,
		TrainingCenterName: req.TrainingCenter,
	})
	if err != nil {
		// The duplicate-cpf message names the conflicting value.
		if errors.Is(err, store.ErrCPFExists) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				DuplicateCPFMessage(req.CPF), err)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, athleteToResponse(athlete))
}

// ListAthletes handles GET /api/v1/athletes requests.
// Supported query parameters: name (case-insensitive substring), cpf
// (exact), limit and offset.
func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	filter := store.AthleteFilter{
		Name: r.URL.Query().Get("name"),
		CPF:  r.URL.Query().Get("cpf"),
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	page, err := h.athleteService.ListAthletes(r.Context(), filter, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]AthleteResponse, 0, len(page.Items))
	for _, athlete := range page.Items {
		items = append(items, athleteToResponse(athlete))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AthletePageResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// GetAthlete handles GET /api/v1/athletes/{id} requests.
func (h *AthleteHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	athlete, err := h.athleteService.GetAthlete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athleteToResponse(athlete))
}

// athleteToResponse converts a domain.Athlete to an AthleteResponse.
func athleteToResponse(athlete *domain.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:             athlete.ID.String(),
		Name:           athlete.Name,
		CPF:            athlete.CPF,
		Category:       athlete.CategoryName,
		TrainingCenter: athlete.TrainingCenterName,
		CreatedAt:      athlete.CreatedAt,
	}
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// queryInt parses an optional integer query parameter, returning def when
// the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

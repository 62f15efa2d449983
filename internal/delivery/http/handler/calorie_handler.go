package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/usecase"
	"calorie-planner/pkg/response"
)

const persistenceWarning = "Your estimate could not be saved to your profile. Please try again later."

type CalorieHandler struct {
	estimationUsecase usecase.EstimationUsecase
}

func NewCalorieHandler(estimationUsecase usecase.EstimationUsecase) *CalorieHandler {
	return &CalorieHandler{
		estimationUsecase: estimationUsecase,
	}
}

// Estimate handles the calorie calculator
// @Summary Estimate daily calories
// @Description Estimates the daily caloric need. Signed-in users get the result saved to their profile
// @Tags Calories
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Estimate Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /calories/estimate [post]
func (h *CalorieHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.estimationUsecase.Estimate(r.Context(), identity.FromContext(r.Context()), &req)

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationError(w, validationErr.Fields)
		return
	}

	var persistenceErr *usecase.PersistenceError
	if errors.As(err, &persistenceErr) {
		response.SuccessWithWarning(w, http.StatusOK, "Calories estimated", toEstimateResponse(result), persistenceWarning)
		return
	}

	if err != nil {
		response.InternalServerError(w, "Failed to estimate calories")
		return
	}

	response.Success(w, http.StatusOK, "Calories estimated", toEstimateResponse(result))
}

// Defaults handles calculator prefill
// @Summary Calculator defaults
// @Description Returns the stored profile values of the caller, or form defaults
// @Tags Calories
// @Produce json
// @Success 200 {object} response.Response
// @Router /calories/defaults [get]
func (h *CalorieHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	defaults := h.estimationUsecase.Defaults(r.Context(), identity.FromContext(r.Context()))
	response.Success(w, http.StatusOK, "Calculator defaults retrieved", defaults)
}

func toEstimateResponse(result *usecase.EstimateResult) *dto.EstimateResponse {
	return &dto.EstimateResponse{
		Calories:    result.Calories,
		Display:     result.Display,
		Multiplier:  result.Multiplier,
		Identity:    result.Identity.String(),
		Persistence: string(result.Persistence),
	}
}

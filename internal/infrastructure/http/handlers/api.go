// Package handlers provides HTTP handlers for pure API endpoints
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
)

// APIHandlers handles meal-plan API requests
type APIHandlers struct {
	plannerService    inbound.PlannerService
	validate          *validator.Validate
	guardrailsDefault bool
	logger            *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance. guardrailsDefault
// applies when a request leaves enforce_guardrails unset.
func NewAPIHandlers(plannerService inbound.PlannerService, guardrailsDefault bool, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{
		plannerService:    plannerService,
		validate:          validator.New(),
		guardrailsDefault: guardrailsDefault,
		logger:            logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// GeneratePlanRequest represents a plan preview request
type GeneratePlanRequest struct {
	DietKey           string   `json:"diet_key" validate:"required"`
	StartDate         string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Slots             []string `json:"slots" validate:"required,min=1,dive,oneof=breakfast lunch dinner"`
	Allergies         []string `json:"allergies,omitempty"`
	Dislikes          []string `json:"dislikes,omitempty"`
	CalorieTarget     int      `json:"calorie_target,omitempty" validate:"gte=0"`
	PrepPreferences   []string `json:"prep_preferences,omitempty"`
	Seed              int64    `json:"seed"`
	EnforceGuardrails *bool    `json:"enforce_guardrails,omitempty"`
}

// ComparePlansRequest runs the same preview under two seeds
type ComparePlansRequest struct {
	GeneratePlanRequest
	SeedA int64 `json:"seed_a"`
	SeedB int64 `json:"seed_b" validate:"nefield=SeedA"`
}

// command maps the wire request onto the application command.
// Date parsing is safe here: the datetime validation tag already ran.
func (req GeneratePlanRequest) command(defaultGuardrails bool) inbound.GeneratePlanCommand {
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	slots := make([]catalog.MealSlot, 0, len(req.Slots))
	for _, slot := range req.Slots {
		slots = append(slots, catalog.MealSlot(slot))
	}

	enforce := defaultGuardrails
	if req.EnforceGuardrails != nil {
		enforce = *req.EnforceGuardrails
	}

	return inbound.GeneratePlanCommand{
		DietKey:           req.DietKey,
		Start:             start,
		End:               end,
		Slots:             slots,
		Allergies:         req.Allergies,
		Dislikes:          req.Dislikes,
		CalorieTarget:     req.CalorieTarget,
		PrepPreferences:   req.PrepPreferences,
		Seed:              req.Seed,
		EnforceGuardrails: enforce,
	}
}

func (h *APIHandlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.writeErrorJSON(w, http.StatusBadRequest, string(errors.CodeBadRequest), "Invalid JSON payload")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeErrorJSON(w, http.StatusBadRequest, string(errors.CodeValidationFailed), err.Error())
		return false
	}
	return true
}

// PreviewPlan handles POST /api/v1/meal-plans/preview
func (h *APIHandlers) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.plannerService.GeneratePlan(r.Context(), req.command(h.guardrailsDefault))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Meal plan generated successfully",
	})
}

// ComparePlans handles POST /api/v1/meal-plans/compare
func (h *APIHandlers) ComparePlans(w http.ResponseWriter, r *http.Request) {
	var req ComparePlansRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	cmd := inbound.ComparePlansCommand{
		GeneratePlanCommand: req.GeneratePlanRequest.command(h.guardrailsDefault),
		SeedA:               req.SeedA,
		SeedB:               req.SeedB,
	}

	comparison, err := h.plannerService.ComparePlans(r.Context(), cmd)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    comparison,
		Message: "Plans compared successfully",
	})
}

// TuningSuggestions handles POST /api/v1/meal-plans/suggestions
func (h *APIHandlers) TuningSuggestions(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	suggestions, err := h.plannerService.GetTuningSuggestions(r.Context(), req.command(h.guardrailsDefault))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    suggestions,
	})
}

// writeAppError maps application errors to status codes and logs server faults
func (h *APIHandlers) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		h.logger.Error("Unclassified handler error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeErrorJSON(w, http.StatusInternalServerError, string(errors.CodeInternal), "Internal server error")
		return
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		h.logger.Error("Plan generation failed",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	h.writeErrorJSON(w, status, string(appErr.Code), appErr.Message)
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func (h *APIHandlers) writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

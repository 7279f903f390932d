// Package handlers provides HTTP handlers for the discovery REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/ports/inbound"
	apperrors "github.com/alchemorsel/discovery/pkg/errors"
)

// DiscoveryHandlers handles discovery session requests
type DiscoveryHandlers struct {
	service inbound.DiscoveryService
	logger  *zap.Logger
}

// NewDiscoveryHandlers creates a new handlers instance
func NewDiscoveryHandlers(service inbound.DiscoveryService, logger *zap.Logger) *DiscoveryHandlers {
	return &DiscoveryHandlers{
		service: service,
		logger:  logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// GetDiscovery handles GET /api/v1/discovery
func (h *DiscoveryHandlers) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	view := h.service.CurrentResults(r.Context())

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    view,
	})
}

// UpdateCriteria handles PATCH /api/v1/discovery/criteria
func (h *DiscoveryHandlers) UpdateCriteria(w http.ResponseWriter, r *http.Request) {
	var update inbound.CriteriaUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid criteria payload").WithCause(err))
		return
	}

	view, err := h.service.UpdateCriteria(r.Context(), update)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    view,
	})
}

// GenerateStandard handles POST /api/v1/discovery/generate. The client calls
// it only after the user confirmed the generation proposal.
func (h *DiscoveryHandlers) GenerateStandard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.GenerateStandard(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusAccepted, APIResponse{
		Success: true,
		Message: "Generation started",
	})
}

// HealthCheck handles GET /health
func (h *DiscoveryHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		},
	})
}

// writeJSON writes a JSON response
func (h *DiscoveryHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeError maps application errors to HTTP status codes
func (h *DiscoveryHandlers) writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(err, "request failed")
	}

	h.logger.Warn("request error",
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr),
	)

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   string(appErr.Code),
		Message: appErr.Message,
	})
}

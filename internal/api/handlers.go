/**
 * @description
 * This file contains the HTTP handlers for the support-console webhooks.
 *
 * Key features:
 * - The console always expects a well-formed canvas with a 200 status; every
 *   failure mode, including panics during rendering, is converted into an
 *   error canvas rather than a transport-level failure.
 * - Malformed trigger payloads are tolerated: decoding falls back to an empty
 *   context, which resolves to the sentinel identity downstream.
 */
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/kosarlukascz/intercomproxy/internal/app"
	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

// Handler serves the canvas webhooks.
type Handler struct {
	service *app.Service
}

// NewHandler creates the webhook handler.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// HandleInitialize responds to the console's initialize webhook with the
// account overview canvas for the customer in the trigger payload.
func (h *Handler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[%s] Panic while building canvas: %v", requestID, rec)
			respondCanvas(w, requestID, h.service.InternalErrorCanvas())
		}
	}()

	var inbound domain.InboundContext
	if err := json.NewDecoder(r.Body).Decode(&inbound); err != nil {
		// A broken payload still gets a canvas; the identity lookup will
		// fall back to its sentinel.
		log.Printf("[%s] Could not decode trigger payload: %v", requestID, err)
		inbound = domain.InboundContext{}
	}

	canvas := h.service.BuildAccountCanvas(r.Context(), inbound)
	respondCanvas(w, requestID, canvas)
}

// HandleSubmit acknowledges canvas actions with a fixed document.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	respondCanvas(w, requestID, h.service.AcknowledgeSubmit())
}

func respondCanvas(w http.ResponseWriter, requestID string, canvas *domain.Canvas) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(canvas); err != nil {
		log.Printf("[%s] Failed to write canvas response: %v", requestID, err)
	}
}

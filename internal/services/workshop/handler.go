package workshop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pizza-workshop/internal/hub"
	"pizza-workshop/internal/logger"
	"pizza-workshop/internal/order"
	"pizza-workshop/internal/participant"
	"pizza-workshop/internal/payment"
)

// Handler maps the demo page's buttons onto toolkit operations.
type Handler struct {
	service *Service
	hub     *hub.Hub
	logger  *logger.Logger
}

func NewHandler(service *Service, h *hub.Hub, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		hub:     h,
		logger:  log,
	}
}

type resultResponse struct {
	Result string `json:"result"`
}

type participantResponse struct {
	Result      string                  `json:"result"`
	Participant participant.Participant `json:"participant"`
}

type orderResponse struct {
	Result string         `json:"result"`
	Order  order.Snapshot `json:"order"`
}

type lastOrdersResponse struct {
	LastBuilt *order.Snapshot `json:"last_built,omitempty"`
	LastClone *order.Snapshot `json:"last_clone,omitempty"`
}

type participantRequest struct {
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
}

type chargeRequest struct {
	Family     string `json:"family"`
	Amount     int    `json:"amount"`
	ID         string `json:"id,omitempty"`
	WalletID   string `json:"wallet_id,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
}

type sizeRequest struct {
	Size string `json:"size"`
}

type toppingRequest struct {
	Topping string `json:"topping"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// Index serves the embedded demo page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.writeErrorResponse(w, http.StatusNotFound, "Not found", "")
		return
	}
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// GetSettings handles GET /config requests.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.DescribeSettings()})
}

// ToggleCurrency handles POST /config/toggle-currency requests.
func (h *Handler) ToggleCurrency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.ToggleCurrency()})
}

// CreateParticipant handles POST /participants requests.
func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	var req participantRequest
	if !h.decode(w, r, requestID, &req) {
		return
	}

	p, line, err := h.service.CreateParticipant(req.Category, req.Name)
	if err != nil {
		if errors.Is(err, participant.ErrUnknownCategory) {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		h.logger.Error("participant_creation_failed", requestID, "Failed to create participant", err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, participantResponse{Result: line, Participant: p})
}

// Charge handles POST /payments/charge requests.
func (h *Handler) Charge(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	var req chargeRequest
	if !h.decode(w, r, requestID, &req) {
		return
	}

	opts := payment.Options{
		ID:         req.ID,
		WalletID:   req.WalletID,
		CardNumber: req.CardNumber,
	}
	receipt, err := h.service.Charge(req.Family, opts, req.Amount)
	if err != nil {
		if errors.Is(err, payment.ErrUnknownFamily) {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		h.logger.Error("charge_failed", requestID, "Failed to charge payment", err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: receipt})
}

// SetSize handles POST /orders/size requests.
func (h *Handler) SetSize(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	var req sizeRequest
	if !h.decode(w, r, requestID, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.SetSize(req.Size)})
}

// AddTopping handles POST /orders/topping requests.
func (h *Handler) AddTopping(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	var req toppingRequest
	if !h.decode(w, r, requestID, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.AddTopping(req.Topping)})
}

// SetNotes handles POST /orders/notes requests.
func (h *Handler) SetNotes(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	var req notesRequest
	if !h.decode(w, r, requestID, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.SetNotes(req.Notes)})
}

// BuildOrder handles POST /orders/build requests.
func (h *Handler) BuildOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	snap := h.service.BuildOrder()
	h.writeJSON(w, http.StatusOK, orderResponse{
		Result: describeOrder("Built order", snap),
		Order:  snap,
	})
}

// ResetOrder handles POST /orders/reset requests.
func (h *Handler) ResetOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Result: h.service.ResetOrder()})
}

// CloneOrder handles POST /orders/clone requests.
func (h *Handler) CloneOrder(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	clone, err := h.service.CloneOrder()
	if err != nil {
		if errors.Is(err, ErrNoOrderBuilt) {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		h.logger.Error("clone_failed", requestID, "Failed to clone order", err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, orderResponse{
		Result: describeOrder("Cloned order", clone),
		Order:  clone,
	})
}

// LastOrders handles GET /orders/last requests.
func (h *Handler) LastOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	built, clone := h.service.LastOrders()
	h.writeJSON(w, http.StatusOK, lastOrdersResponse{LastBuilt: built, LastClone: clone})
}

// LiveLog handles GET /ws requests by upgrading to the log stream.
func (h *Handler) LiveLog(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	if err := h.hub.ServeWS(w, r); err != nil {
		h.logger.Error("ws_upgrade_failed", requestID, "Failed to upgrade websocket", err, nil)
	}
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-workshop",
		"pages":     h.hub.ClientCount(),
	}
	h.writeJSON(w, http.StatusOK, response)
}

// decode reads a JSON POST body into dst, rejecting wrong methods, wrong
// content types and unknown fields.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, requestID string, dst interface{}) bool {
	if r.Method != http.MethodPost {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return false
	}
	if r.Header.Get("Content-Type") != "application/json" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		h.logger.Error("validation_failed", requestID, "Failed to parse request body", err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "", "Failed to encode response", err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format.
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// SetupRoutes sets up the HTTP routes.
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.withLogging(h.Index))
	mux.HandleFunc("/health", h.withLogging(h.HealthCheck))
	mux.HandleFunc("/ws", h.LiveLog)
	mux.HandleFunc("/config", h.withLogging(h.GetSettings))
	mux.HandleFunc("/config/toggle-currency", h.withLogging(h.ToggleCurrency))
	mux.HandleFunc("/participants", h.withLogging(h.CreateParticipant))
	mux.HandleFunc("/payments/charge", h.withLogging(h.Charge))
	mux.HandleFunc("/orders/size", h.withLogging(h.SetSize))
	mux.HandleFunc("/orders/topping", h.withLogging(h.AddTopping))
	mux.HandleFunc("/orders/notes", h.withLogging(h.SetNotes))
	mux.HandleFunc("/orders/build", h.withLogging(h.BuildOrder))
	mux.HandleFunc("/orders/reset", h.withLogging(h.ResetOrder))
	mux.HandleFunc("/orders/clone", h.withLogging(h.CloneOrder))
	mux.HandleFunc("/orders/last", h.withLogging(h.LastOrders))

	return mux
}

type contextKey string

const requestIDKey contextKey = "request_id"

func contextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// withLogging adds request logging middleware.
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		ctx := r.Context()
		r = r.WithContext(contextWithRequestID(ctx, requestID))

		h.logger.Debug("request_started",
			requestID,
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: 200}
		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			requestID,
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

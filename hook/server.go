package hook

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-github/v61/github"
	"github.com/google/uuid"
)

// Server is the inbound webhook boundary: it validates delivery
// signatures, parses payloads into typed events, and hands them to the
// dispatcher. Everything past the boundary answers 200 so GitHub does
// not redeliver.
type Server struct {
	secret     []byte
	dispatcher *Dispatcher
	log        *slog.Logger
}

// NewServer builds a webhook server validating deliveries against the
// given shared secret.
func NewServer(secret []byte, dispatcher *Dispatcher, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{secret: secret, dispatcher: dispatcher, log: log}
}

// Router returns the HTTP routes served by the bot. Non-POST requests
// to the webhook path answer 405 via the router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/webhook", s.handleWebhook)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebhook(w http.ResponseWriter, req *http.Request) {
	payload, err := github.ValidatePayload(req, s.secret)
	if err != nil {
		s.log.Warn("rejecting delivery with invalid signature", "error", err)
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	deliveryID := github.DeliveryID(req)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}
	eventType := github.WebHookType(req)
	log := s.log.With("delivery", deliveryID, "event", eventType)

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		// Unrecognized event types are acknowledged so the sender does
		// not retry.
		log.Debug("acknowledging unparseable event", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	switch err := s.dispatcher.Dispatch(req.Context(), event); {
	case errors.Is(err, ErrBadEvent):
		log.Warn("rejecting malformed delivery", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		log.Error("workflow failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/harwoodm/newsdesk/internal/api/shared"
	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicHandler creates a TopicHandler. A nil logger falls back to
// slog.Default.
func NewTopicHandler(topics store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, topicsResponse{Topics: topics})
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, ErrInvalidBody)
		return
	}

	topic, err := h.topics.Create(r.Context(), &domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, topicResponse{Topic: topic})
}

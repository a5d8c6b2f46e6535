package api

import (
	"log/slog"
	"net/http"

	"github.com/harwoodm/newsdesk/internal/api/shared"
	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/platform/logger"
	"github.com/harwoodm/newsdesk/internal/store"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a CommentHandler. A nil logger falls back to
// slog.Default.
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// CreateForArticle handles POST /api/articles/{article_id}/comments.
func (h *CommentHandler) CreateForArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseIDParam(r, "article_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, ErrInvalidBody)
		return
	}

	comment, err := h.comments.Create(r.Context(), articleID, &domain.Comment{
		Author: req.Username,
		Body:   req.Body,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentResponse{Comment: comment})
}

// ListForArticle handles GET /api/articles/{article_id}/comments. An
// existing article with no comments yields an empty page; a missing
// article is a 404.
func (h *CommentHandler) ListForArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseIDParam(r, "article_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	params, err := parseListParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("listing comments", slog.Int("article_id", articleID))

	comments, total, err := h.comments.ListForArticle(r.Context(), articleID, params)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentsResponse{
		Comments:   comments,
		TotalCount: total,
	})
}

// PatchVotes handles PATCH /api/comments/{comment_id}. Same inc_votes
// contract as article vote updates.
func (h *CommentHandler) PatchVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "comment_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updateVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, ErrMissingIncVotes)
		return
	}
	if req.IncVotes == nil || *req.IncVotes == 0 {
		respondError(w, r, ErrMissingIncVotes)
		return
	}

	comment, err := h.comments.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentResponse{Comment: comment})
}

// Delete handles DELETE /api/comments/{comment_id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "comment_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

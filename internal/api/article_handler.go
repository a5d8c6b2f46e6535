package api

import (
	"log/slog"
	"net/http"

	"github.com/harwoodm/newsdesk/internal/api/shared"
	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/platform/logger"
	"github.com/harwoodm/newsdesk/internal/store"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates an ArticleHandler. A nil logger falls back to
// slog.Default.
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// List handles GET /api/articles. Filtering, sorting and pagination are
// driven entirely by query parameters; a filter that matches nothing is a
// 200 with an empty page, not a 404.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params, err := parseListParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug("listing articles",
		slog.String("sort_by", params.SortBy),
		slog.String("order", params.Order),
		slog.String("author", params.Author),
		slog.String("topic", params.Topic))

	articles, total, err := h.articles.List(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articlesResponse{
		Articles:   toArticleListItems(articles),
		TotalCount: total,
	})
}

// GetByID handles GET /api/articles/{article_id}.
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "article_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articleResponse{Article: article})
}

// PatchVotes handles PATCH /api/articles/{article_id}. The body must carry
// a non-zero inc_votes; zero is rejected the same as absent.
func (h *ArticleHandler) PatchVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "article_id")
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

	article, err := h.articles.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articleResponse{Article: article})
}

// Create handles POST /api/articles. Caller-supplied votes or timestamps
// are ignored; the store forces their defaults.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, ErrInvalidBody)
		return
	}

	article, err := h.articles.Create(r.Context(), &domain.Article{
		Title:  req.Title,
		Body:   req.Body,
		Topic:  req.Topic,
		Author: req.Author,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, articleResponse{Article: article})
}

// Delete handles DELETE /api/articles/{article_id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "article_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

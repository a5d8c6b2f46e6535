package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harwoodm/newsdesk/internal/api"
	apiMiddleware "github.com/harwoodm/newsdesk/internal/api/middleware"
	"github.com/harwoodm/newsdesk/internal/api/shared"
	"github.com/harwoodm/newsdesk/internal/platform/postgres"
	"github.com/harwoodm/newsdesk/internal/store"
)

// setupRouter builds the stores from the application's database pool and
// registers every route.
func (app *application) setupRouter() http.Handler {
	stores := routerStores{
		topics:   postgres.NewTopicStore(app.db, app.logger),
		users:    postgres.NewUserStore(app.db, app.logger),
		articles: postgres.NewArticleStore(app.db, app.logger),
		comments: postgres.NewCommentStore(app.db, app.logger),
	}
	return newRouter(stores, app)
}

// routerStores collects the store dependencies the router needs, so tests
// can swap in stubs.
type routerStores struct {
	topics   store.TopicStore
	users    store.UserStore
	articles store.ArticleStore
	comments store.CommentStore
}

// newRouter wires middleware, handlers and the fixed 404/405 responses.
func newRouter(stores routerStores, app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	rootHandler := api.NewRootHandler(app.logger)
	topicHandler := api.NewTopicHandler(stores.topics, app.logger)
	userHandler := api.NewUserHandler(stores.users, app.logger)
	articleHandler := api.NewArticleHandler(stores.articles, app.logger)
	commentHandler := api.NewCommentHandler(stores.comments, app.logger)

	// Unknown paths and unregistered verbs answer with the API's fixed
	// messages instead of chi's plain-text defaults.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.RouteNotFoundMessage)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, api.MethodNotAllowedMessage)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler.Get)

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topicHandler.List)
			r.Post("/", topicHandler.Create)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{username}", userHandler.GetByUsername)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.List)
			r.Post("/", articleHandler.Create)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", articleHandler.GetByID)
				r.Patch("/", articleHandler.PatchVotes)
				r.Delete("/", articleHandler.Delete)

				r.Route("/comments", func(r chi.Router) {
					r.Get("/", commentHandler.ListForArticle)
					r.Post("/", commentHandler.CreateForArticle)
				})
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Route("/{comment_id}", func(r chi.Router) {
				r.Patch("/", commentHandler.PatchVotes)
				r.Delete("/", commentHandler.Delete)
			})
		})
	})

	return r
}

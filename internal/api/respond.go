package api

import (
	"net/http"

	"github.com/harwoodm/newsdesk/internal/api/shared"
)

// respondError classifies err and writes the resulting status and message.
// The raw error is logged, never sent.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := ClassifyError(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

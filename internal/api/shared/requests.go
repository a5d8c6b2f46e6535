package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into v. Unknown fields are ignored,
// matching the API's tolerance of extra body keys.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Package handlers holds the HTTP layer.
//
// Handlers stay thin: parse the request, call a service, write the response.
// No business rules and no SQL live here.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/teambabes/socialapp/pkg"
)

// contextKey is a private type for context values so no other package can
// collide with our keys.
type contextKey string

// UserContextKey is where the auth middleware stores the logged-in user.
const UserContextKey contextKey = "user"

// pathID parses the named path parameter as an int64 id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", pkg.ErrBadRequest, name)
	}
	return id, nil
}

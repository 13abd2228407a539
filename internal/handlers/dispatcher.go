package handlers

import "net/http"

// NewDispatcher routes a request to one resource handler based on the
// `resource` query parameter, defaulting to objects. Unknown resources get a
// 404 envelope. OPTIONS requests never reach the dispatcher; the CORS
// middleware answers them for any resource.
func NewDispatcher(users, objects, favorites, notifications http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := r.URL.Query().Get("resource")
		if resource == "" {
			resource = "objects"
		}

		switch resource {
		case "users":
			users(w, r)
		case "objects":
			objects(w, r)
		case "favorites":
			favorites(w, r)
		case "notifications":
			notifications(w, r)
		default:
			writeError(w, http.StatusNotFound, "Resource not found")
		}
	}
}

package v1

import "net/http"

// requireDataset wraps a handler and returns 503 if no dataset is loaded.
func (s *Server) requireDataset(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Dataset == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Dataset not loaded")
			return
		}
		next(w, r)
	}
}

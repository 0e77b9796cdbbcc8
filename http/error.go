package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/blogsmith"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorStatusCode maps a domain error code to an HTTP status.
func ErrorStatusCode(code string) int {
	switch code {
	case blogsmith.EINVALID, blogsmith.EUNSUPPORTED:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as JSON. Client errors carry their message; server
// errors carry only public and the detail goes to the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, public string) {
	code := blogsmith.ErrorCode(err)
	status := ErrorStatusCode(code)

	msg := public
	if status < http.StatusInternalServerError {
		msg = blogsmith.ErrorMessage(err)
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger().Log(r.Context(), level, "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"status", status,
		"code", code,
		"err", err,
	)

	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON body into v. Malformed bodies are EINVALID.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return blogsmith.Errorf(blogsmith.EINVALID, "invalid JSON body: %v", err)
	}
	return nil
}

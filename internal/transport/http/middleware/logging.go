package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// accessLine is one JSON line per request. Role is filled for authenticated
// calls, so the log separates anonymous traffic from portal users.
type accessLine struct {
	Timestamp string `json:"ts"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	Duration  int64  `json:"durationMs"`
	RequestID string `json:"requestId"`
	Role      string `json:"role,omitempty"`
	Bytes     int    `json:"bytes"`
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// Logger must sit after Auth in the chain; it reads the session off the
// request context.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		line := accessLine{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    recorder.status,
			Duration:  time.Since(start).Milliseconds(),
			RequestID: GetRequestID(r.Context()),
			Bytes:     recorder.written,
		}
		if session, ok := GetSession(r.Context()); ok {
			line.Role = string(session.Role)
		}

		payload, _ := json.Marshal(line)
		log.Println(string(payload))
	})
}

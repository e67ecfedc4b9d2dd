package middleware

import "net/http"

// statusWriter captures the response status for Logger and Metrics. Auth
// records the resolved user on it so the access log can name the caller.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	userID      int64
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// wrap returns w as a statusWriter, reusing an outer one if present.
func wrap(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func noteUser(w http.ResponseWriter, userID int64) {
	if sw, ok := w.(*statusWriter); ok {
		sw.userID = userID
	}
}

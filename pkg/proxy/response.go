package proxy

import "net/http"

// responseWriter wraps http.ResponseWriter to record the status code and
// downstream byte milestones on the stream.
type responseWriter struct {
	http.ResponseWriter
	stream      *Stream
	status      int
	wroteHeader bool
}

func newResponseWriter(w http.ResponseWriter, stream *Stream) *responseWriter {
	return &responseWriter{ResponseWriter: w, stream: stream}
}

func (w *responseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = status
	w.stream.SetResponseCode(status)
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(p)
	if n > 0 {
		w.stream.AddBytesSent(uint64(n))
	}
	return n, err
}

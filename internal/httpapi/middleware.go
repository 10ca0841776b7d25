package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"time"
)

const defaultMaxLogBytes = 512

// statusRecorder captures the status and a bounded prefix of the body for
// request logging.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	maxLogBytes  int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	written, err := r.ResponseWriter.Write(p)
	r.bytesWritten += written

	remaining := r.maxLogBytes - r.logBody.Len()
	switch {
	case remaining >= written:
		r.logBody.Write(p[:written])
	case remaining > 0:
		r.logBody.Write(p[:remaining])
		r.truncated = true
	default:
		if written > 0 {
			r.truncated = true
		}
	}

	return written, err
}

func withRequestLog(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    defaultMaxLogBytes,
		}

		next.ServeHTTP(recorder, r)

		body := bytes.TrimSpace(recorder.logBody.Bytes())
		suffix := ""
		if recorder.truncated {
			suffix = "..."
		}
		logger.Printf("%s %s status=%d bytes=%d duration=%s body=%s%s",
			r.Method,
			r.URL.RequestURI(),
			recorder.statusCode,
			recorder.bytesWritten,
			time.Since(started).Round(time.Microsecond),
			body,
			suffix,
		)
	})
}

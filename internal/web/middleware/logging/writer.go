package logging

import "net/http"

// writerWrapper wraps a http.ResponseWriter and records the status code and
// the number of written body bytes.
type writerWrapper struct {
	http.ResponseWriter

	StatusCode   int
	WrittenBytes int
}

func newWriterWrapper(w http.ResponseWriter) *writerWrapper {
	return &writerWrapper{
		ResponseWriter: w,
		StatusCode:     http.StatusOK, // implicit status if WriteHeader is never called
	}
}

func (w *writerWrapper) WriteHeader(code int) {
	w.StatusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *writerWrapper) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.WrittenBytes += n
	return n, err
}

package diag

import "net/http"

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

// NewHTTPContext adapts a net/http request and response writer pair to the
// Context interface. FinalizeHeaders sets the HTML content type and writes
// the status code of the given result.
func NewHTTPContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

func (c *httpContext) Method() string {
	return c.r.Method
}

func (c *httpContext) Path() string {
	return c.r.URL.Path
}

func (c *httpContext) FinalizeHeaders(res Result) (ResponseStream, error) {
	c.w.Header().Set("Content-Type", "text/html;charset=utf-8")
	c.w.WriteHeader(res.StatusCode())

	return &httpStream{w: c.w}, nil
}

type httpStream struct {
	w http.ResponseWriter
}

func (s *httpStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *httpStream) Flush() error {
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// Close is a no-op, the net/http server owns the connection.
func (s *httpStream) Close() error {
	return nil
}

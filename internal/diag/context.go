package diag

import "io"

// Request exposes the request properties needed for the page summary line.
type Request interface {
	// Method returns the HTTP method of the failed request.
	Method() string
	// Path returns the request path of the failed request.
	Path() string
}

// Result exposes the response status that the surrounding framework has
// already decided on for the failed request.
type Result interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int
}

// ResponseStream is a write-capable response channel. It is obtained from
// Context.FinalizeHeaders and must be closed exactly once by the caller.
type ResponseStream interface {
	io.Writer
	// Flush pushes any buffered data to the client.
	Flush() error
	// Close releases the stream.
	Close() error
}

// Context combines the request view with the ability to commit response
// headers and obtain the body stream. It is implemented by the surrounding
// framework; NewHTTPContext provides a net/http based implementation.
type Context interface {
	Request
	// FinalizeHeaders commits status and headers for the given result and
	// returns the stream for the response body.
	FinalizeHeaders(Result) (ResponseStream, error)
}

// Status is a plain Result implementation wrapping an HTTP status code.
type Status int

// StatusCode implements the Result interface.
func (s Status) StatusCode() int { return int(s) }

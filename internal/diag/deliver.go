package diag

import (
	"fmt"
	"io"
)

// InternalServerError is returned by strict delivery when the response
// channel could not be acquired, written or flushed. It carries the original
// I/O fault as its cause.
type InternalServerError struct {
	cause error
}

func (e *InternalServerError) Error() string {
	return fmt.Sprintf("internal server error: %v", e.cause)
}

func (e *InternalServerError) Unwrap() error {
	return e.cause
}

// Render builds the diagnostic page for the given error and delivers it in
// one step. See BuildPage and Deliver.
func (r *Renderer) Render(ctx Context, res Result, e *Error) error {
	return r.Deliver(r.BuildPage(ctx, res, e), ctx, res)
}

// Deliver finalizes the response headers for the given result, writes the
// rendered page, flushes and releases the stream. Headers are finalized once
// and the page is written once, there are no retries.
//
// On an I/O fault the behavior depends on the WithStrictDelivery option:
// in strict mode an *InternalServerError carrying the fault is returned, in
// lenient mode the fault is logged and Deliver returns nil. In the lenient
// case the client may have received a partial or empty body.
func (r *Renderer) Deliver(page string, ctx Context, res Result) error {
	err := writePage(page, ctx, res)
	if err == nil {
		return nil
	}

	if r.o.strictDelivery {
		return &InternalServerError{cause: err}
	}

	if r.o.logger != nil {
		r.o.logger.Error("unable to deliver diagnostic page",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", res.StatusCode(),
			"error", err)
	}
	return nil
}

// writePage performs the single finalize-write-flush attempt. The stream is
// released on every exit path, including a failed write.
func writePage(page string, ctx Context, res Result) error {
	stream, err := ctx.FinalizeHeaders(res)
	if err != nil {
		return fmt.Errorf("failed to finalize response headers: %w", err)
	}
	defer func() {
		_ = stream.Close()
	}()

	if _, err := io.WriteString(stream, page); err != nil {
		return fmt.Errorf("failed to write diagnostic page: %w", err)
	}
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("failed to flush diagnostic page: %w", err)
	}

	return nil
}

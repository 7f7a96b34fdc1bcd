package diag

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	buf       bytes.Buffer
	failWrite bool
	failFlush bool
	flushed   bool
	closed    bool
}

func (s *fakeStream) Write(p []byte) (int, error) {
	if s.failWrite {
		return 0, errors.New("write fault")
	}
	return s.buf.Write(p)
}

func (s *fakeStream) Flush() error {
	if s.failFlush {
		return errors.New("flush fault")
	}
	s.flushed = true
	return nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

type fakeContext struct {
	stream       *fakeStream
	failFinalize bool
	finalized    int
}

func (c *fakeContext) Method() string { return "GET" }
func (c *fakeContext) Path() string   { return "/fault" }

func (c *fakeContext) FinalizeHeaders(_ Result) (ResponseStream, error) {
	c.finalized++
	if c.failFinalize {
		return nil, errors.New("finalize fault")
	}
	return c.stream, nil
}

func TestDeliverWritesFlushesAndCloses(t *testing.T) {
	ctx := &fakeContext{stream: &fakeStream{}}

	err := New().Deliver("<html>page</html>", ctx, Status(500))

	require.NoError(t, err)
	assert.Equal(t, 1, ctx.finalized)
	assert.Equal(t, "<html>page</html>", ctx.stream.buf.String())
	assert.True(t, ctx.stream.flushed)
	assert.True(t, ctx.stream.closed)
}

func TestDeliverStrictSurfacesWriteFault(t *testing.T) {
	ctx := &fakeContext{stream: &fakeStream{failWrite: true}}

	err := New(WithStrictDelivery(true)).Deliver("page", ctx, Status(500))

	require.Error(t, err)

	var internalErr *InternalServerError
	require.ErrorAs(t, err, &internalErr)
	assert.Contains(t, internalErr.Unwrap().Error(), "write fault")

	// stream must be released even if the write failed
	assert.True(t, ctx.stream.closed)
}

func TestDeliverStrictSurfacesFinalizeFault(t *testing.T) {
	ctx := &fakeContext{failFinalize: true}

	err := New(WithStrictDelivery(true)).Deliver("page", ctx, Status(500))

	var internalErr *InternalServerError
	require.ErrorAs(t, err, &internalErr)
	assert.Contains(t, err.Error(), "finalize fault")
	assert.Equal(t, 1, ctx.finalized)
}

func TestDeliverStrictSurfacesFlushFault(t *testing.T) {
	ctx := &fakeContext{stream: &fakeStream{failFlush: true}}

	err := New(WithStrictDelivery(true)).Deliver("page", ctx, Status(500))

	var internalErr *InternalServerError
	require.ErrorAs(t, err, &internalErr)
	assert.True(t, ctx.stream.closed)
}

func TestDeliverLenientLogsAndSwallowsFault(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	ctx := &fakeContext{stream: &fakeStream{failWrite: true}}

	err := New(WithLogger(logger)).Deliver("page", ctx, Status(500))

	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "unable to deliver diagnostic page")
	assert.Contains(t, logBuf.String(), "write fault")
	assert.True(t, ctx.stream.closed)
}

func TestRenderOverHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/5", nil)

	ctx := NewHTTPContext(rec, req)
	err := New().Render(ctx, Status(500), &Error{Title: "NullPointerException"})

	require.NoError(t, err)

	res := rec.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "text/html;charset=utf-8", res.Header.Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "NullPointerException")
	assert.Contains(t, rec.Body.String(), "Status code 500 for request 'GET /users/5'")
}

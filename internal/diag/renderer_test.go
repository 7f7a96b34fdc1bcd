package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	path   string
}

func (r testRequest) Method() string { return r.method }
func (r testRequest) Path() string   { return r.path }

func TestBuildPageHeaderOnly(t *testing.T) {
	r := New()
	page := r.BuildPage(
		testRequest{method: "GET", path: "/users/5"},
		Status(500),
		&Error{Title: "NullPointerException"},
	)

	assert.Contains(t, page, "<title>NullPointerException</title>")
	assert.Contains(t, page, "NullPointerException")
	assert.Contains(t, page, "Status code 500 for request 'GET /users/5'")

	// no optional sections
	assert.NotContains(t, page, "<h2>")
	assert.NotContains(t, page, `class="line`)
	// the style sheet mentions the stacktrace class, so check for the markup
	assert.NotContains(t, page, `<span class="stacktrace">`)

	// well-formed shell
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n"))
	assert.True(t, strings.HasSuffix(page, "</html>\n"))
}

func TestBuildPageSummaryOmitsStatusFor200(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "POST", path: "/login"}, Status(200), &Error{Title: "boom"})

	assert.NotContains(t, page, "Status code")
	assert.Contains(t, page, " for request 'POST /login'")
}

func TestBuildPageSnippetNumbering(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title:           "boom",
		SourceLines:     []string{"a", "b", "c"},
		FirstLineNumber: 10,
		ErrorLineNumber: 11,
	})

	assert.Contains(t, page, `<span class="line info">10</span>`)
	assert.Contains(t, page, `<span class="line error">11</span>`)
	assert.Contains(t, page, `<span class="line info">12</span>`)
	assert.Equal(t, 3, strings.Count(page, `<span class="line `))
	assert.Equal(t, 1, strings.Count(page, `<span class="line error"`))
}

func TestBuildPageErrorLineOutsideWindow(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title:           "boom",
		SourceLines:     []string{"a", "b", "c"},
		FirstLineNumber: 10,
		ErrorLineNumber: 99,
	})

	assert.Equal(t, 3, strings.Count(page, `<span class="line info"`))
	assert.NotContains(t, page, `<span class="line error"`)
}

func TestBuildPageEscapesSourceLines(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title:           "boom",
		SourceLines:     []string{"<script>alert(1)</script>"},
		FirstLineNumber: 1,
	})

	assert.Contains(t, page, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, page, "<script>alert(1)</script>")
}

func TestBuildPageSectionsToggleIndependently(t *testing.T) {
	r := New()
	req := testRequest{method: "GET", path: "/"}

	// location without snippet
	page := r.BuildPage(req, Status(500), &Error{Title: "boom", SourceLocation: "routes.yml"})
	assert.Contains(t, page, "<h2>routes.yml</h2>")
	assert.NotContains(t, page, `class="line`)

	// snippet without location
	page = r.BuildPage(req, Status(500), &Error{Title: "boom", SourceLines: []string{"x"}, FirstLineNumber: 1})
	assert.NotContains(t, page, "<h2>")
	assert.Contains(t, page, `<span class="line info">1</span>`)
}

func TestBuildPageTraceChain(t *testing.T) {
	r := New()
	cause := fmt.Errorf("handler failed: %w", fmt.Errorf("query failed: %w", errors.New("connection refused")))

	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title: "boom",
		Cause: cause,
	})

	assert.Contains(t, page, "handler failed: query failed: connection refused\n")
	assert.Contains(t, page, "caused by: query failed: connection refused\n")
	assert.Contains(t, page, "caused by: connection refused\n")
	assert.Contains(t, page, `<span class="stacktrace">`)
}

func TestBuildPageTraceIsNotEscaped(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title: "boom",
		Cause: errors.New("unexpected token <EOF>"),
	})

	assert.Contains(t, page, "unexpected token <EOF>")
}

func TestBuildPageStack(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/"}, Status(500), &Error{
		Title: "boom",
		Cause: errors.New("boom"),
		Stack: []byte("goroutine 1 [running]:\nmain.main()\n"),
	})

	assert.Contains(t, page, "goroutine 1 [running]:\nmain.main()\n")
}

func TestBuildPageTitleRawByDefault(t *testing.T) {
	r := New()
	page := r.BuildPage(testRequest{method: "GET", path: "/a<b>"}, Status(500), &Error{Title: "<b>boom</b>"})

	// inherited behavior: title and summary pass through unescaped
	assert.Contains(t, page, "<b>boom</b>")
	assert.Contains(t, page, "for request 'GET /a<b>'")
}

func TestBuildPageTitleEscapedWithOption(t *testing.T) {
	r := New(WithEscapedTitle(true))
	page := r.BuildPage(testRequest{method: "GET", path: "/a<b>"}, Status(500), &Error{Title: "<b>boom</b>"})

	assert.Contains(t, page, "&lt;b&gt;boom&lt;/b&gt;")
	assert.NotContains(t, page, "<b>boom</b>")
	assert.Contains(t, page, "for request &#39;GET /a&lt;b&gt;&#39;")
}

func TestBuildPageIsIdempotent(t *testing.T) {
	r := New()
	req := testRequest{method: "GET", path: "/users/5"}
	e := &Error{
		Title:           "boom",
		SourceLocation:  "routes.yml",
		SourceLines:     []string{"a", "b"},
		FirstLineNumber: 4,
		ErrorLineNumber: 5,
		Cause:           errors.New("boom"),
	}

	first := r.BuildPage(req, Status(500), e)
	second := r.BuildPage(req, Status(500), e)

	require.Equal(t, first, second)
}

package diag

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// Renderer builds and delivers diagnostic pages. A Renderer holds no mutable
// state, it is safe to share across requests. BuildPage is a pure function of
// its inputs: identical inputs always produce identical output strings.
type Renderer struct {
	o options
}

// New returns a new diagnostic page renderer with the provided options.
func New(opts ...Option) *Renderer {
	return &Renderer{
		o: newOptions(opts...),
	}
}

// BuildPage assembles the complete HTML document for the given diagnostic
// error. The document always contains the shell, header and footer; the
// source-location heading, the source snippet and the trace block are only
// emitted if the corresponding Error fields are set.
func (r *Renderer) BuildPage(req Request, res Result, e *Error) string {
	var b strings.Builder

	b.WriteString(r.renderHeader(req, res, e.Title))
	b.WriteString(renderSourceSnippet(e.SourceLocation, e.SourceLines, e.FirstLineNumber, e.ErrorLineNumber))
	b.WriteString(renderTrace(e.Cause, e.Stack))
	b.WriteString(renderFooter())

	return b.String()
}

// renderHeader produces the document shell, the embedded style sheet and the
// header block with the title and the one-line request summary.
//
// Title and summary are embedded as-is unless the WithEscapedTitle option is
// set. Raw embedding matches the historic behavior of this page layout, see
// the option documentation for the security implications.
func (r *Renderer) renderHeader(req Request, res Result, title string) string {
	summary := summaryLine(req, res)

	if r.o.escapeTitle {
		title = html.EscapeString(title)
		summary = html.EscapeString(summary)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<!-- diagnostic error page -->")
	b.WriteString("<html>\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <title>")
	b.WriteString(title)
	b.WriteString("</title>\n")
	b.WriteString("    ")
	b.WriteString(pageStyle)
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	b.WriteString("    <h1>")
	b.WriteString(`      <img id="logo" src="` + logoImage + `"/>`)
	b.WriteString("      ")
	b.WriteString(title)
	b.WriteString(`      <img id="mode" style="float:right; height:40px;" title="Dev Mode!" src="` + devModeBadge + `"/>`)
	b.WriteString("    </h1>\n")
	b.WriteString("    <p id=\"detail\">\n")
	b.WriteString(summary)
	b.WriteString("\n    </p>\n")

	return b.String()
}

// summaryLine builds the request summary. The "Status code" prefix is only
// present for non-200 results.
func summaryLine(req Request, res Result) string {
	var b strings.Builder

	if res.StatusCode() != 200 {
		fmt.Fprintf(&b, "Status code %d", res.StatusCode())
	}
	fmt.Fprintf(&b, " for request '%s %s'", req.Method(), req.Path())

	return b.String()
}

// renderSourceSnippet produces the optional location heading and the framed
// source excerpt. Location and excerpt toggle independently. The line number
// of entry i is firstLine+i; exactly the entry matching errorLine is classed
// as the error line. No bounds check is made against errorLine, an error line
// outside the excerpt window simply highlights nothing.
func renderSourceSnippet(location string, lines []string, firstLine, errorLine int) string {
	var b strings.Builder

	if location != "" {
		b.WriteString("    <h2>")
		b.WriteString(location)
		b.WriteString("</h2>\n")
	}

	if len(lines) > 0 {
		b.WriteString("    <div>\n")
		for i, line := range lines {
			lineNumber := firstLine + i

			cssClass := "line info"
			if lineNumber == errorLine {
				cssClass = "line error"
			}

			b.WriteString("<pre>")
			fmt.Fprintf(&b, "<span class=%q>%d</span>", cssClass, lineNumber)
			fmt.Fprintf(&b, `<span class="route">%s</span>`, html.EscapeString(line))
			b.WriteString("</pre>")
		}
		b.WriteString("    </div>\n")
	}

	return b.String()
}

// renderTrace produces the optional trace block: the cause message with its
// unwrap chain, followed by the captured goroutine stack if one was given.
// The text is trusted runtime output and is embedded without escaping.
func renderTrace(cause error, stack []byte) string {
	if cause == nil && len(stack) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("    <div>\n")
	b.WriteString("      <pre><span class=\"stacktrace\">\n")
	b.WriteString(formatCauseChain(cause))
	b.Write(stack)
	b.WriteString("      </span></pre>\n")
	b.WriteString("    </div>")

	return b.String()
}

// formatCauseChain renders the error message followed by one "caused by"
// line per wrapped error.
func formatCauseChain(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n")

	for err = errors.Unwrap(err); err != nil; err = errors.Unwrap(err) {
		b.WriteString("caused by: ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}

	return b.String()
}

func renderFooter() string {
	return "  </body>\n</html>\n"
}

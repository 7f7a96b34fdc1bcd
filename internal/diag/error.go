// Package diag renders developer-mode diagnostic error pages for failed
// HTTP requests. A page consists of a header with the error title and a
// request summary, an optional highlighted source excerpt and an optional
// error trace. Building the page is a pure string operation; delivery
// writes the finished document into a response stream obtained from the
// surrounding framework.
package diag

// Error describes a failed request in enough detail to render a diagnostic
// page. It is created by the caller and never modified by the renderer.
// Every optional field independently toggles its own page section.
type Error struct {
	// Title is shown in the page header and as the document title.
	Title string

	// SourceLocation identifies the offending source artifact, for example
	// a file path or a route definition. Empty means no location heading
	// is rendered.
	SourceLocation string

	// SourceLines holds a contiguous excerpt of the offending source.
	// Nil or empty means no snippet block is rendered.
	SourceLines []string

	// FirstLineNumber is the absolute line number of SourceLines[0].
	// It is only meaningful if SourceLines is non-empty.
	FirstLineNumber int

	// ErrorLineNumber is the absolute number of the faulty line. It is used
	// for highlighting only; it may lie outside the excerpt window, in which
	// case no line is highlighted.
	ErrorLineNumber int

	// Cause is the error that triggered the diagnostic. Its message and
	// unwrap chain are rendered in the trace block.
	Cause error

	// Stack is an optional captured goroutine stack (e.g. from
	// debug.Stack()), rendered verbatim below the cause chain.
	Stack []byte
}

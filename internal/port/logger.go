package port

// Logger is the diagnostics sink for upload failures. It is injected so
// tests can assert on logged context instead of capturing process output.
type Logger interface {
	Error(msg string, fields map[string]any)
}

// Package writer serializes a document model into the packaged container
// format: the WordprocessingML parts marshaled to XML and bundled into a
// zip archive. It preserves the declared ordering of sections, blocks,
// rows, cells, paragraphs and runs exactly; byte-level zip and XML concerns
// stay behind this package.
package writer

import (
	"context"
	"io"

	"wordkit/document"
	"wordkit/observability"
)

// Config controls package emission.
type Config struct {
	// Deterministic pins zip entry timestamps so identical models produce
	// identical bytes.
	Deterministic bool

	// Title and Creator populate docProps/core.xml.
	Title   string
	Creator string
}

// Writer emits one package per call. Write buffers the whole package and
// flushes to w only on success, so a failed build never leaves a partially
// written file behind the io.Writer.
type Writer interface {
	Write(ctx context.Context, doc *document.Document, w io.Writer, cfg Config) error
}

// WriterBuilder configures and constructs a Writer.
type WriterBuilder struct {
	logger observability.Logger
}

// WithLogger attaches a logger for non-fatal events (skipped optional images).
func (b *WriterBuilder) WithLogger(l observability.Logger) *WriterBuilder {
	b.logger = l
	return b
}

// Build returns the configured Writer.
func (b *WriterBuilder) Build() Writer {
	log := b.logger
	if log == nil {
		log = observability.NopLogger{}
	}
	return &impl{log: log}
}

// SerializationError reports a package that could not be flushed, typically
// a required image whose bytes were unreadable. The partial package is
// discarded; nothing reaches the destination writer.
type SerializationError struct {
	Part string
	Err  error
}

func (e *SerializationError) Error() string { return "serialize " + e.Part + ": " + e.Err.Error() }

func (e *SerializationError) Unwrap() error { return e.Err }

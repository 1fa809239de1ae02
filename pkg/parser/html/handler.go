// Package html implements a resilient streaming tokenizer for HTML markup.
//
// The tokenizer scans a byte source through a small internal buffer and
// emits start-tag, end-tag, and character-data events to a Handler in
// document order. It is deliberately lenient: malformed input degrades to
// incomplete output rather than an error, with one exception — an element
// name outside the recognized tag set aborts the parse.
package html

import (
	"github.com/yaklabco/htmldom/pkg/dom"
	"github.com/yaklabco/htmldom/pkg/tag"
)

// Handler consumes tokenizer events. Methods are invoked synchronously, in
// document order. Handlers have no error return; an observer that needs to
// fail should record the failure and surface it through its own channel
// after Parse returns.
type Handler interface {
	// HandleStartTag is called when an opening tag has been read, with its
	// attributes in source order.
	HandleStartTag(t tag.Tag, attrs []dom.Attribute)

	// HandleEndTag is called when a closing tag has been read.
	HandleEndTag(t tag.Tag)

	// HandleData is called with accumulated character data, including the
	// raw content of script and style elements. The slice is only valid
	// for the duration of the call.
	HandleData(data []byte)
}

package html

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/yaklabco/htmldom/pkg/dom"
	"github.com/yaklabco/htmldom/pkg/tag"
)

// Buffering parameters: the buffer is topped up with chunkSize-byte reads
// whenever it holds fewer than lowWater bytes and the source is not
// exhausted. lowWater bounds the lookahead any state can require.
const (
	lowWater  = 64
	chunkSize = 2048
)

// state names the seven lexical states of the machine.
type state uint8

const (
	stateFindTag state = iota
	stateSkipComment
	stateTagName
	stateAttrName
	stateAttrValue
	stateData
	stateRawData
)

// pendingAttr accumulates one attribute as raw bytes; conversion to
// dom.Attribute (and UTF-8 validation) happens only when the tag finishes.
type pendingAttr struct {
	name  []byte
	value []byte
}

// pending is the tag under construction. It is reset every time the machine
// returns to stateFindTag and sees the next '<'.
type pending struct {
	// start is the byte offset of the introducing '<' in the whole stream.
	start   int
	name    []byte
	id      tag.Tag
	closing bool
	data    []byte
	attrs   []pendingAttr
}

type parser struct {
	src     io.Reader
	handler Handler

	buf   []byte
	block []byte
	eof   bool

	state    state
	tag      pending
	consumed int
}

// Parse drives the state machine over r, invoking h for every event, until
// the source is exhausted or a fatal condition occurs. It returns the total
// number of bytes consumed; callers can compare it against the source size
// to detect partial consumption. On an unknown tag name the count covers
// the input up to, but not including, the offending tag.
func Parse(r io.Reader, h Handler) (int, error) {
	p := &parser{
		src:     r,
		handler: h,
		block:   make([]byte, chunkSize),
	}
	err := p.run()

	var unknown *tag.UnknownTagError
	if errors.As(err, &unknown) {
		return p.tag.start, err
	}
	return p.consumed, err
}

// run is the outer driver: refill, drain, repeat. It terminates when the
// buffer is empty at end of source, or when the source is exhausted and the
// current state can make no further progress — the latter silently drops a
// truncated trailing construct such as an unterminated comment or raw-text
// block.
func (p *parser) run() error {
	for {
		if !p.eof && len(p.buf) < lowWater {
			n, err := p.src.Read(p.block)
			if n > 0 {
				p.buf = append(p.buf, p.block[:n]...)
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					return fmt.Errorf("read source: %w", err)
				}
				p.eof = true
			} else if n == 0 {
				// An empty read marks end-of-source permanently.
				p.eof = true
			}
		}

		if len(p.buf) == 0 {
			if p.eof {
				return nil
			}
			continue
		}

		progressed, err := p.drain()
		if err != nil {
			return err
		}
		if !progressed && p.eof {
			return nil
		}
	}
}

// drain re-invokes the current state handler until one can no longer make
// progress without more input. Each handler consumes a prefix of the buffer;
// a zero-byte consumption with an unchanged state means "refill and retry".
func (p *parser) drain() (bool, error) {
	progressed := false
	for len(p.buf) > 0 {
		prev := p.state
		n, err := p.step()
		if n > 0 {
			p.buf = p.buf[n:]
			p.consumed += n
			progressed = true
		}
		if err != nil {
			return progressed, err
		}
		if n == 0 && p.state == prev {
			break
		}
	}
	return progressed, nil
}

func (p *parser) step() (int, error) {
	switch p.state {
	case stateFindTag:
		return p.findTag(), nil
	case stateSkipComment:
		return p.skipComment(), nil
	case stateTagName:
		return p.readTagName(), nil
	case stateAttrName:
		return p.readAttrName()
	case stateAttrValue:
		return p.readAttrValue()
	case stateData:
		return p.readData(), nil
	default:
		return p.readRawData(), nil
	}
}

// findTag discards bytes until the next '<', then resets the pending tag
// and hands over to readTagName. The '<' itself is left in the buffer.
func (p *parser) findTag() int {
	n := 0
	for _, b := range p.buf {
		if b == '<' {
			p.tag = pending{start: p.consumed + n}
			p.state = stateTagName
			break
		}
		n++
	}
	return n
}

// skipComment consumes through the terminating "-->". With fewer than three
// bytes of tail the handler consumes nothing further and awaits more input,
// so a terminator split across chunks is never missed.
func (p *parser) skipComment() int {
	n := 0
	for n+3 <= len(p.buf) {
		if p.buf[n] == '-' && p.buf[n+1] == '-' && p.buf[n+2] == '>' {
			p.state = stateData
			return n + 3
		}
		n++
	}
	return n
}

// readTagName accumulates the element name. '/' marks a closing tag, '!'
// followed by '-' routes to skipComment, '!' otherwise discards the markup
// declaration via findTag. '>' or a space ends the name, seeds the first
// placeholder attribute, and hands over to readAttrName without consuming
// the terminator.
func (p *parser) readTagName() int {
	n := 0
	for n < len(p.buf) {
		switch b := p.buf[n]; b {
		case '<', '\r', '\n':
			n++
		case '!':
			if n+1 >= len(p.buf) {
				// Need the byte after '!' to classify the markup.
				return n
			}
			n++
			if p.buf[n] == '-' {
				p.state = stateSkipComment
			} else {
				p.state = stateFindTag
			}
			return n
		case '/':
			p.tag.closing = true
			n++
		case '>', ' ':
			p.tag.attrs = append(p.tag.attrs[:0], pendingAttr{})
			p.state = stateAttrName
			return n
		default:
			p.tag.name = append(p.tag.name, b)
			n++
		}
	}
	return n
}

// readAttrName accumulates a name into the trailing placeholder attribute.
// A space after a non-empty name finalizes it and opens a new placeholder;
// '=' switches to value accumulation; '>' or '/' finishes the whole tag.
func (p *parser) readAttrName() (int, error) {
	n := 0
	for n < len(p.buf) {
		switch b := p.buf[n]; b {
		case '>', '/':
			n++
			return n, p.finishTag()
		case '=':
			n++
			p.state = stateAttrValue
			return n, nil
		case ' ':
			if len(p.lastAttr().name) != 0 {
				p.tag.attrs = append(p.tag.attrs, pendingAttr{})
			}
			n++
		case '\n', '\r', '\t':
			n++
		default:
			a := p.lastAttr()
			a.name = append(a.name, b)
			n++
		}
	}
	return n, nil
}

// readAttrValue accumulates the current attribute's value with quote
// awareness. The first quote character on a still-empty value opens a
// delimiter and is stripped from the stored value when the closing quote
// arrives. A space ends an unquoted value; '>' always ends the tag, even
// inside an open quote.
func (p *parser) readAttrValue() (int, error) {
	n := 0
	for n < len(p.buf) {
		switch b := p.buf[n]; b {
		case '>':
			n++
			return n, p.finishTag()
		case '"', '\'':
			a := p.lastAttr()
			if len(a.value) > 0 {
				a.value = trimQuotes(a.value)
				p.tag.attrs = append(p.tag.attrs, pendingAttr{})
				p.state = stateAttrName
				return n + 1, nil
			}
			a.value = append(a.value, b)
			n++
		case ' ':
			a := p.lastAttr()
			if len(a.value) > 0 && !isQuote(a.value[0]) {
				p.tag.attrs = append(p.tag.attrs, pendingAttr{})
				p.state = stateAttrName
				return n + 1, nil
			}
			a.value = append(a.value, b)
			n++
		default:
			a := p.lastAttr()
			a.value = append(a.value, b)
			n++
		}
	}
	return n, nil
}

// readData accumulates character data until the next '<', then emits it and
// returns to findTag. The '<' is left in the buffer.
func (p *parser) readData() int {
	n := 0
	for n < len(p.buf) {
		if p.buf[n] == '<' {
			p.emitData()
			p.state = stateFindTag
			return n
		}
		p.tag.data = append(p.tag.data, p.buf[n])
		n++
	}
	return n
}

// readRawData accumulates raw content for the open script or style element.
// A '<' is literal data unless the bytes ahead spell the element's exact
// closing tag; with too little lookahead buffered the handler halts and
// awaits more input rather than guessing.
func (p *parser) readRawData() int {
	n := 0
	for n < len(p.buf) {
		b := p.buf[n]
		if b != '<' {
			p.tag.data = append(p.tag.data, b)
			n++
			continue
		}
		match, ok := p.closingAhead(p.buf[n:])
		if !ok {
			return n
		}
		if match {
			p.emitData()
			p.state = stateFindTag
			return n
		}
		p.tag.data = append(p.tag.data, b)
		n++
	}
	return n
}

// closingAhead reports whether buf, which starts at a '<', begins with the
// closing tag of the open raw-text element. ok is false when too little
// input is buffered to decide. The comparison is case-sensitive.
func (p *parser) closingAhead(buf []byte) (match, ok bool) {
	name := p.tag.id.String()
	if len(buf) < len(name)+3 {
		return false, false
	}
	if buf[1] != '/' {
		return false, true
	}
	return string(buf[2:2+len(name)]) == name, true
}

// finishTag resolves the accumulated name — the single fatal condition —
// and emits the tag event. The resolved element decides the follow state:
// raw-text elements hand their content to readRawData, everything else
// returns to character data.
func (p *parser) finishTag() error {
	if last := len(p.tag.attrs) - 1; last >= 0 && len(p.tag.attrs[last].name) == 0 {
		p.tag.attrs = p.tag.attrs[:last]
	}

	id, err := tag.Resolve(string(p.tag.name))
	if err != nil {
		return err
	}
	p.tag.id = id

	attrs, err := p.takeAttrs()
	if err != nil {
		return err
	}

	if p.tag.closing {
		p.handler.HandleEndTag(id)
		p.state = stateData
		return nil
	}

	p.handler.HandleStartTag(id, attrs)
	if id.RawText() {
		p.state = stateRawData
	} else {
		p.state = stateData
	}
	return nil
}

// takeAttrs converts the pending attributes, validating UTF-8 on both names
// and values.
func (p *parser) takeAttrs() ([]dom.Attribute, error) {
	if len(p.tag.attrs) == 0 {
		return nil, nil
	}
	attrs := make([]dom.Attribute, 0, len(p.tag.attrs))
	for _, a := range p.tag.attrs {
		if !utf8.Valid(a.name) || !utf8.Valid(a.value) {
			return nil, fmt.Errorf("attribute on <%s>: %w", p.tag.id, dom.ErrInvalidUTF8)
		}
		attrs = append(attrs, dom.Attribute{Name: string(a.name), Value: string(a.value)})
	}
	return attrs, nil
}

func (p *parser) emitData() {
	if len(p.tag.data) == 0 {
		return
	}
	p.handler.HandleData(p.tag.data)
	p.tag.data = nil
}

func (p *parser) lastAttr() *pendingAttr {
	return &p.tag.attrs[len(p.tag.attrs)-1]
}

func isQuote(b byte) bool { return b == '"' || b == '\'' }

// trimQuotes strips a quote delimiter from either end of a stored value.
func trimQuotes(v []byte) []byte {
	if len(v) > 0 && isQuote(v[0]) {
		v = v[1:]
	}
	if len(v) > 0 && isQuote(v[len(v)-1]) {
		v = v[:len(v)-1]
	}
	return v
}

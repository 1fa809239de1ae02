// Package tag defines the closed set of HTML element names recognized by the
// tokenizer, and the case-insensitive resolution from name text to Tag.
package tag

import (
	"fmt"
	"strings"
)

// Tag identifies a recognized HTML element.
type Tag uint16

// Recognized elements.
const (
	A Tag = iota
	Abbr
	Address
	Area
	Article
	Aside
	Audio
	B
	Base
	Blockquote
	Body
	Br
	Button
	Canvas
	Caption
	Cite
	Code
	Col
	Colgroup
	Data
	Datalist
	Dd
	Del
	Details
	Dfn
	Dialog
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Footer
	Form
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hgroup
	Hr
	Html
	I
	Iframe
	Img
	Input
	Ins
	Kbd
	Label
	Legend
	Li
	Link
	Main
	Map
	Mark
	Menu
	Meta
	Meter
	Nav
	Noscript
	Object
	Ol
	Optgroup
	Option
	Output
	P
	Param
	Picture
	Pre
	Progress
	Q
	Rp
	Rt
	Ruby
	S
	Samp
	Script
	Section
	Select
	Small
	Source
	Span
	Strong
	Style
	Sub
	Summary
	Sup
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Time
	Title
	Tr
	Track
	U
	Ul
	Var
	Video
	Wbr
)

var names = [...]string{
	A:          "a",
	Abbr:       "abbr",
	Address:    "address",
	Area:       "area",
	Article:    "article",
	Aside:      "aside",
	Audio:      "audio",
	B:          "b",
	Base:       "base",
	Blockquote: "blockquote",
	Body:       "body",
	Br:         "br",
	Button:     "button",
	Canvas:     "canvas",
	Caption:    "caption",
	Cite:       "cite",
	Code:       "code",
	Col:        "col",
	Colgroup:   "colgroup",
	Data:       "data",
	Datalist:   "datalist",
	Dd:         "dd",
	Del:        "del",
	Details:    "details",
	Dfn:        "dfn",
	Dialog:     "dialog",
	Div:        "div",
	Dl:         "dl",
	Dt:         "dt",
	Em:         "em",
	Embed:      "embed",
	Fieldset:   "fieldset",
	Figcaption: "figcaption",
	Figure:     "figure",
	Footer:     "footer",
	Form:       "form",
	H1:         "h1",
	H2:         "h2",
	H3:         "h3",
	H4:         "h4",
	H5:         "h5",
	H6:         "h6",
	Head:       "head",
	Header:     "header",
	Hgroup:     "hgroup",
	Hr:         "hr",
	Html:       "html",
	I:          "i",
	Iframe:     "iframe",
	Img:        "img",
	Input:      "input",
	Ins:        "ins",
	Kbd:        "kbd",
	Label:      "label",
	Legend:     "legend",
	Li:         "li",
	Link:       "link",
	Main:       "main",
	Map:        "map",
	Mark:       "mark",
	Menu:       "menu",
	Meta:       "meta",
	Meter:      "meter",
	Nav:        "nav",
	Noscript:   "noscript",
	Object:     "object",
	Ol:         "ol",
	Optgroup:   "optgroup",
	Option:     "option",
	Output:     "output",
	P:          "p",
	Param:      "param",
	Picture:    "picture",
	Pre:        "pre",
	Progress:   "progress",
	Q:          "q",
	Rp:         "rp",
	Rt:         "rt",
	Ruby:       "ruby",
	S:          "s",
	Samp:       "samp",
	Script:     "script",
	Section:    "section",
	Select:     "select",
	Small:      "small",
	Source:     "source",
	Span:       "span",
	Strong:     "strong",
	Style:      "style",
	Sub:        "sub",
	Summary:    "summary",
	Sup:        "sup",
	Table:      "table",
	Tbody:      "tbody",
	Td:         "td",
	Template:   "template",
	Textarea:   "textarea",
	Tfoot:      "tfoot",
	Th:         "th",
	Thead:      "thead",
	Time:       "time",
	Title:      "title",
	Tr:         "tr",
	Track:      "track",
	U:          "u",
	Ul:         "ul",
	Var:        "var",
	Video:      "video",
	Wbr:        "wbr",
}

//nolint:gochecknoglobals // Resolution index over the closed name set
var byName = func() map[string]Tag {
	m := make(map[string]Tag, len(names))
	for t, name := range names {
		m[name] = Tag(t)
	}
	return m
}()

// UnknownTagError reports an element name outside the recognized set.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q", e.Name)
}

// Resolve maps an element name to its Tag, case-insensitively.
func Resolve(name string) (Tag, error) {
	t, ok := byName[strings.ToLower(name)]
	if !ok {
		return 0, &UnknownTagError{Name: name}
	}
	return t, nil
}

// String returns the lowercase element name.
func (t Tag) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("tag(%d)", uint16(t))
}

// RawText reports whether the element's content is not re-tokenized as
// markup until its exact closing tag is seen.
func (t Tag) RawText() bool {
	return t == Script || t == Style
}

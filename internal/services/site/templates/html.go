package templates

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

// htmlWriter writes markup and remembers the first error, so components can
// be written as straight-line code and return w.err once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// htmlComponent turns write into a templ.Component. Output is buffered through
// templ's runtime buffer pool, as generated components do, and flushed once
// the outermost component returns.
func htmlComponent(write func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) (err error) {
		if w == nil {
			return errors.New("templates: nil writer")
		}
		buf, isBuffer := templruntime.GetBuffer(w)
		if !isBuffer {
			defer func() {
				if releaseErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = releaseErr
				}
			}()
		}
		h := newHTMLWriter(buf)
		write(ctx, h)
		return h.err
	})
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name string, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) intAttr(name string, value int) {
	h.attr(name, strconv.Itoa(value))
}

func (h *htmlWriter) boolAttr(name string, value bool) {
	h.attr(name, strconv.FormatBool(value))
}

// urlAttr writes an href-like attribute after templ's scheme sanitization.
func (h *htmlWriter) urlAttr(name string, value string) {
	h.attr(name, string(templ.URL(value)))
}

// open writes "<tag" followed by class, leaving the tag open for attributes.
func (h *htmlWriter) open(tag string, class string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
}

func (h *htmlWriter) element(tag string, class string, text string) {
	h.open(tag, class)
	h.raw(">")
	h.text(text)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// icon writes an outline SVG icon drawn from a single path.
func (h *htmlWriter) icon(class string, path string, strokeWidth string) {
	h.open("svg", class)
	h.attr("fill", "none")
	h.attr("stroke", "currentColor")
	h.attr("viewBox", "0 0 24 24")
	h.attr("aria-hidden", "true")
	h.raw("><path")
	h.attr("stroke-linecap", "round")
	h.attr("stroke-linejoin", "round")
	h.attr("stroke-width", strokeWidth)
	h.attr("d", path)
	h.raw("/></svg>")
}

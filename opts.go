package ruut

import (
	"github.com/signadot/ruut/decode"
	"github.com/signadot/ruut/format"
)

type opts struct {
	format format.Format
	tmpl   decode.TemplateConfig
}

// Option configures Prettify and Decode.
type Option func(*opts)

// WithFormat selects the input format, ParensFormat by default.
func WithFormat(f format.Format) Option {
	return func(o *opts) { o.format = f }
}

// WithTemplate sets the name template of the template formats. The
// default template is empty and names every node "".
func WithTemplate(t string) Option {
	return func(o *opts) { o.tmpl.Template = t }
}

// WithNameKey names each object of the template formats by the string value
// of property k when there is no template.
func WithNameKey(k string) Option {
	return func(o *opts) { o.tmpl.NameKey = k }
}

// WithChildrenKey sets the property holding the children of an object in
// the template formats, "children" by default.
func WithChildrenKey(k string) Option {
	return func(o *opts) { o.tmpl.ChildrenKey = k }
}

// WithDefault sets the value used for properties missing from an object.
func WithDefault(v string) Option {
	return func(o *opts) { o.tmpl.Default = &v }
}

// WithTemplateConfig replaces the whole template configuration.
func WithTemplateConfig(c decode.TemplateConfig) Option {
	return func(o *opts) { o.tmpl = c }
}

func newOpts(options []Option) *opts {
	o := &opts{
		format: format.ParensFormat,
		tmpl:   decode.DefaultTemplateConfig(),
	}
	for _, f := range options {
		f(o)
	}
	return o
}

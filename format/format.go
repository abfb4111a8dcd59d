package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	ParensFormat Format = iota
	JSONFormat
	JSONTemplateFormat
	YAMLFormat
	YAMLTemplateFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":             ParensFormat,
		"parens":        ParensFormat,
		"lisp":          ParensFormat,
		"j":             JSONFormat,
		"json":          JSONFormat,
		"jt":            JSONTemplateFormat,
		"jsonprop":      JSONTemplateFormat,
		"json-template": JSONTemplateFormat,
		"y":             YAMLFormat,
		"yaml":          YAMLFormat,
		"yt":            YAMLTemplateFormat,
		"yamlprop":      YAMLTemplateFormat,
		"yaml-template": YAMLTemplateFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case ParensFormat:
		return []byte("parens"), nil
	case JSONFormat:
		return []byte("json"), nil
	case JSONTemplateFormat:
		return []byte("jsonprop"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case YAMLTemplateFormat:
		return []byte("yamlprop"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsTemplate reports whether node names are synthesized from object
// properties rather than taken from object keys.
func (f Format) IsTemplate() bool {
	return f == JSONTemplateFormat || f == YAMLTemplateFormat
}

// AllFormats returns all supported formats in the order they are
// documented.
func AllFormats() []Format {
	return []Format{ParensFormat, JSONFormat, JSONTemplateFormat, YAMLFormat, YAMLTemplateFormat}
}

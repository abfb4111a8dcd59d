package parse

type parseOpts struct {
	yaml bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return func(o *parseOpts) { o.yaml = true }
}

func ParseJSON() ParseOption {
	return func(o *parseOpts) { o.yaml = false }
}

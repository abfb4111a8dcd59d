package parse

import (
	"fmt"
	"math"
	"slices"

	"github.com/signadot/ruut/ir"

	json "github.com/goccy/go-json"
	"github.com/titanous/json5"
)

// rawJSON5 holds the text of a single JSON5 value as a subslice of the
// buffer being decoded, so its offset in that buffer is
// cap(buffer)-cap(raw).
type rawJSON5 []byte

func (r *rawJSON5) UnmarshalJSON(d []byte) error {
	*r = d
	return nil
}

// parseJSON parses d as JSON5, which includes plain JSON. Object fields keep
// document order.
func parseJSON(d []byte) (*ir.Node, error) {
	var raw rawJSON5
	if err := json5.Unmarshal(d, &raw); err != nil {
		return nil, err
	}
	return parseJSONValue(raw)
}

func parseJSONValue(raw rawJSON5) (*ir.Node, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty json value", errInternal)
	}
	switch raw[0] {
	case '{':
		return parseJSONObject(raw)
	case '[':
		return parseJSONArray(raw)
	}
	var v any
	if err := json5.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return jsonNumber(raw, x), nil
	default:
		return nil, fmt.Errorf("%w: unexpected json value %T", errInternal, v)
	}
}

// jsonNumber keeps the literal text of numbers which are valid JSON and
// normalizes the JSON5 only forms (hex, leading '+' or '.', Infinity, NaN).
func jsonNumber(raw rawJSON5, f float64) *ir.Node {
	if json.Valid(raw) {
		return ir.FromNumber(string(raw))
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ir.Null()
	}
	return ir.FromFloat(f)
}

// parseJSONObject orders fields by where their values start in raw. A
// repeated key keeps its last value, at the position of that value.
func parseJSONObject(raw rawJSON5) (*ir.Node, error) {
	var fields map[string]rawJSON5
	if err := json5.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	offset := func(k string) int { return cap(raw) - cap(fields[k]) }
	slices.SortFunc(keys, func(a, b string) int { return offset(a) - offset(b) })

	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		val, err := parseJSONValue(fields[k])
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func parseJSONArray(raw rawJSON5) (*ir.Node, error) {
	var elts []rawJSON5
	if err := json5.Unmarshal(raw, &elts); err != nil {
		return nil, err
	}
	vals := make([]*ir.Node, 0, len(elts))
	for _, elt := range elts {
		val, err := parseJSONValue(elt)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	return ir.FromSlice(vals), nil
}

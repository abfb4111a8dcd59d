package parse

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/signadot/ruut/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		index := map[string]int{}
		for _, item := range x {
			key := yamlKey(item.Key)
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			if i, ok := index[key]; ok {
				kvs[i].Val = val
				continue
			}
			index[key] = len(kvs)
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := fromYAML(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromNumber(strconv.FormatUint(x, 10)), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	default:
		return ir.FromString(fmt.Sprint(x)), nil
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}

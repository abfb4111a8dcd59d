package decode

const (
	DefaultNameKey     = "name"
	DefaultChildrenKey = "children"
)

// TemplateConfig configures JSONTemplate and YAMLTemplate.
type TemplateConfig struct {
	// Template builds a node's name from its properties, e.g.
	// "{kind}: {id}". An empty template names every node "".
	Template string
	// NameKey, when set and Template is empty, names each object by the
	// string value of that property instead.
	NameKey string
	// ChildrenKey names the property holding the child objects, either
	// as an array or as the values of an object.
	ChildrenKey string
	// Default, when not nil, stands in for missing properties.
	Default *string
}

func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{ChildrenKey: DefaultChildrenKey}
}

func (c TemplateConfig) byNameKey() bool {
	return c.Template == "" && c.NameKey != ""
}

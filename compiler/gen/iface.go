package gen

import (
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// generateInterface renders a plain interface: properties before methods,
// separated by one blank line when both groups are non-empty. Interfaces
// carry no decorators and compute no imports of their own; entities that
// implement one import it through their own import collector.
func (g *Graph) generateInterface(data *schema.InterfaceData) string {
	ind := g.indent()
	props := make([]string, 0, len(data.Properties))
	for _, p := range data.Properties {
		marker := ""
		if p.Nullable {
			marker = "?"
		}
		props = append(props, ind+p.Name+marker+": "+p.Type+";")
	}
	methods := make([]string, 0, len(data.Methods))
	for _, m := range data.Methods {
		params := make([]string, len(m.Parameters))
		for i, pa := range m.Parameters {
			params[i] = pa.Name + ": " + pa.Type
		}
		ret := m.ReturnType
		if ret == "" {
			ret = "void"
		}
		methods = append(methods, ind+m.Name+"("+strings.Join(params, ", ")+"): "+ret+";")
	}

	var groups []string
	if len(props) > 0 {
		groups = append(groups, strings.Join(props, "\n"))
	}
	if len(methods) > 0 {
		groups = append(groups, strings.Join(methods, "\n"))
	}
	name := Sanitize(data.Name)
	if len(groups) == 0 {
		return "export interface " + name + " {}"
	}
	return "export interface " + name + " {\n" + strings.Join(groups, "\n\n") + "\n}"
}

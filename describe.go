package argscan

import (
	"fmt"
	"strings"
)

// Describe renders a one-line-per-parameter listing of a spec: every
// flag's external name, kind, and any alias, followed by its positional
// parameters. It exists for hosts building their own --help-adjacent
// output or debugging a spec before wiring it into a Scanner; argscan
// itself never renders help text (spec §1 non-goals).
func (spec *Spec) Describe() string {
	var b strings.Builder

	aliasOf := make(map[string]rune, len(spec.Aliases))
	for _, a := range spec.Aliases {
		if _, has := aliasOf[a.ExternalName]; !has {
			aliasOf[a.ExternalName] = a.Char
		}
	}

	for _, f := range spec.Flags {
		fmt.Fprintf(&b, "--%s", f.ExternalName)
		if ch, ok := aliasOf[f.ExternalName]; ok {
			fmt.Fprintf(&b, ", -%c", ch)
		}
		fmt.Fprintf(&b, "\t%s", f.Kind)
		if f.Optional {
			b.WriteString(" optional")
		}
		if f.Hidden {
			b.WriteString(" hidden")
		}
		if f.Kind == KindEnum {
			fmt.Fprintf(&b, " {%s}", strings.Join(f.Values, "|"))
		}
		if f.Brief != "" {
			fmt.Fprintf(&b, "\t%s", f.Brief)
		}
		b.WriteByte('\n')
	}

	pos := spec.Positional
	if pos.isArray() {
		fmt.Fprintf(&b, "<%s>...\tarray", pos.Array.Placeholder)
		if pos.Min != nil || pos.Max != nil {
			b.WriteString(" {")
			if pos.Min != nil {
				fmt.Fprintf(&b, "min=%d", *pos.Min)
			}
			if pos.Max != nil {
				if pos.Min != nil {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "max=%d", *pos.Max)
			}
			b.WriteString("}")
		}
		b.WriteByte('\n')
	} else {
		for _, slot := range pos.Tuple {
			fmt.Fprintf(&b, "<%s>\tpositional", slot.Placeholder)
			if slot.Optional {
				b.WriteString(" optional")
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

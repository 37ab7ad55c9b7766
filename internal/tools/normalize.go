package tools

import (
	"fmt"
	"time"

	"github.com/pmalik/teamdinner/internal/timeparse"
)

// normalizeArgs coerces raw model-supplied arguments into the shapes the
// handlers expect, driven entirely by the descriptor:
//
//   - Datetime params accept a natural-language string under either the
//     "<name>_str" alias key or the canonical name. The alias wins when both
//     are present. The resolved value is stored under the canonical name as a
//     time.Time; the alias key is removed.
//   - Integer params accept JSON numbers (float64) and are truncated.
//
// Everything else passes through untouched. Unknown keys are preserved so a
// handler can reject or ignore them itself.
func normalizeArgs(desc Descriptor, raw map[string]any, ref time.Time, loc *time.Location) (map[string]any, error) {
	args := make(map[string]any, len(raw))
	for k, v := range raw {
		args[k] = v
	}

	for _, p := range desc.Params {
		switch p.Type {
		case TypeDatetime:
			if err := resolveDatetimeArg(args, p.Name, ref, loc); err != nil {
				return nil, err
			}
		case TypeInteger:
			if v, ok := args[p.Name]; ok {
				if f, isFloat := v.(float64); isFloat {
					args[p.Name] = int(f)
				}
			}
		}
	}
	return args, nil
}

// resolveDatetimeArg resolves the argument for one datetime parameter,
// preferring the "_str" alias over the canonical key.
func resolveDatetimeArg(args map[string]any, name string, ref time.Time, loc *time.Location) error {
	alias := name + DatetimeAliasSuffix

	var text string
	var found bool
	if v, ok := args[alias]; ok {
		s, isStr := v.(string)
		if !isStr {
			return fmt.Errorf("argument %q must be a string, got %T", alias, v)
		}
		text, found = s, true
	} else if v, ok := args[name]; ok {
		switch tv := v.(type) {
		case time.Time:
			// Already absolute, nothing to resolve.
			return nil
		case string:
			text, found = tv, true
		default:
			return fmt.Errorf("argument %q must be a string, got %T", name, v)
		}
	}
	if !found {
		return nil
	}

	resolved, err := timeparse.Resolve(text, ref, loc)
	if err != nil {
		return err
	}
	delete(args, alias)
	args[name] = resolved
	return nil
}

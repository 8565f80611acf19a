package layout

import "fmt"

// Validate checks a layout definition against the registry's requirement set
// for its layout type.
//
// Missing required zones become errors; zones that are neither required nor
// optional become warnings. A zone is never reported as both. Absent optional
// zones produce nothing. This asymmetry is deliberate: templates may grow new
// zones without breaking older consumers.
//
// An unregistered layout type yields no errors or warnings here; the engine
// records the fallback separately.
func Validate(reg *Registry, def *LayoutDefinition) ValidationResult {
	res := ValidationResult{Errors: []string{}, Warnings: []string{}}

	req, err := reg.Lookup(def.LayoutType)
	if err != nil {
		return res
	}

	for _, name := range req.Required {
		if _, ok := def.Zones[name]; !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("missing required zone %q for layout type %q", name, def.LayoutType))
		}
	}

	for _, name := range def.ZoneNames() {
		if !req.IsExpected(name) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unexpected zone %q for layout type %q", name, def.LayoutType))
		}
	}

	return res
}

// ValidateStrict returns only the hard error list. Unexpected zones stay
// warnings even in strict mode; strict never escalates them.
func ValidateStrict(reg *Registry, def *LayoutDefinition) []string {
	return Validate(reg, def).Errors
}

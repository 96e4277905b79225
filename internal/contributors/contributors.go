package contributors

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
)

// Aliases maps a canonical contributor name to the raw spellings that should
// collapse into it. The canonical name itself always resolves to itself.
type Aliases map[string][]string

// aliasFile is the YAML document shape:
//
//	Timwi:
//	  - timwi
//	  - TimwiTep
type aliasFile map[string][]string

// LoadAliases reads the alias table at path. An empty path means no aliases.
func LoadAliases(path string) (Aliases, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	var raw aliasFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}

	a := make(Aliases, len(raw))
	claimed := make(map[string]string)
	for canonical, variants := range raw {
		canonical = strings.TrimSpace(canonical)
		if canonical == "" {
			return nil, fmt.Errorf("alias file %s: empty canonical name", path)
		}
		for _, v := range variants {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if owner, ok := claimed[v]; ok && owner != canonical {
				return nil, fmt.Errorf("alias file %s: %q claimed by both %q and %q", path, v, owner, canonical)
			}
			claimed[v] = canonical
			a[canonical] = append(a[canonical], v)
		}
	}
	return a, nil
}

// Canonical resolves a raw contributor spelling. Unknown spellings are their
// own canonical name.
func (a Aliases) Canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	for canonical, variants := range a {
		if raw == canonical {
			return canonical
		}
		for _, v := range variants {
			if raw == v {
				return canonical
			}
		}
	}
	return raw
}

// Collect groups module names by resolved contributor. Module order within a
// group follows catalog order; callers sort as their layout requires.
func Collect(mods []catalog.Module, aliases Aliases) map[string][]string {
	groups := make(map[string][]string)
	for _, m := range mods {
		name := aliases.Canonical(m.Contributor)
		groups[name] = append(groups[name], m.Name)
	}
	return groups
}

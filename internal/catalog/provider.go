package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Variant registry. Localized catalogs register under their language tag;
// all variants must share one shape so classification is invariant under
// the choice of language. Registration happens from init() or at startup,
// before any session runs.

var variants = map[string]Catalog{}

// Register adds (or replaces) a localized variant. The catalog must be
// well-formed and, when a default variant exists, structurally identical
// to it.
func Register(c Catalog) error {
	if c.Lang == "" {
		return fmt.Errorf("catalog has no language tag")
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("catalog %q: %w", c.Lang, err)
	}
	if base, ok := variants[DefaultLang]; ok && c.Lang != DefaultLang {
		if err := SameShape(base, c); err != nil {
			return fmt.Errorf("catalog %q: %w", c.Lang, err)
		}
	}
	variants[c.Lang] = c
	return nil
}

// Get returns the variant for a language tag.
func Get(lang string) (Catalog, bool) {
	c, ok := variants[lang]
	return c, ok
}

// Default returns the default-language variant, falling back to the
// built-in catalog if the registry was cleared.
func Default() Catalog {
	if c, ok := variants[DefaultLang]; ok {
		return c
	}
	return Builtin()
}

// Langs lists registered language tags, sorted.
func Langs() []string {
	out := make([]string, 0, len(variants))
	for l := range variants {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Load decodes and validates a catalog from JSON.
func Load(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

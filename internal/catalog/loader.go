package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML catalog from path. Any section left empty in the
// file falls back to the built-in default. The merged catalog is validated.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and merges it over the default. Unknown keys
// are rejected.
func Parse(data []byte) (*Catalog, error) {
	var loaded Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := Default()
	if len(loaded.Strategies) > 0 {
		c.Strategies = loaded.Strategies
	}
	if len(loaded.Traders) > 0 {
		c.Traders = loaded.Traders
	}
	if len(loaded.Scenarios) > 0 {
		c.Scenarios = loaded.Scenarios
	}
	mergeTables(&c.Tables, loaded.Tables)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal encodes the catalog as YAML, suitable as a starting point for a
// custom catalog file.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// mergeTables overrides dst entries with the keys present in src.
func mergeTables(dst *Tables, src Tables) {
	for k, v := range src.MarketEmotions {
		dst.MarketEmotions[k] = v
	}
	for k, v := range src.Triggers {
		dst.Triggers[k] = v
	}
	for k, v := range src.Behaviors {
		dst.Behaviors[k] = v
	}
	for k, v := range src.EmotionReasoning {
		dst.EmotionReasoning[k] = v
	}
	for k, v := range src.ActionReasoning {
		dst.ActionReasoning[k] = v
	}
	for k, v := range src.SessionWindows {
		dst.SessionWindows[k] = v
	}
	for k, v := range src.SessionNotes {
		dst.SessionNotes[k] = v
	}
}

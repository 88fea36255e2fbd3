package bank

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed gametheory.yaml
var defaultBankData []byte

var loadDefault = sync.OnceValues(func() (*Bank, error) {
	return Parse(defaultBankData)
})

// Default returns the embedded game theory bank.
func Default() (*Bank, error) {
	return loadDefault()
}

// document is the on-disk shape of a bank file.
type document struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Load reads a bank file from disk. YAML and JSON are both accepted.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bank: read %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a bank document. The structure is checked
// against the bank schema first, then each record is checked semantically.
func Parse(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bank: parse: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("bank: schema: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("bank: decode: %w", err)
	}

	b, err := New(doc.Title, doc.Questions)
	if err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}
	return b, nil
}

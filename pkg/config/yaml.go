package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a rule set from YAML bytes.
func FromYAML(data []byte) (*RuleSet, error) {
	rs := &RuleSet{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	for i, r := range rs.Rules {
		if r.Prefix == "" || r.Pattern == "" {
			return nil, fmt.Errorf("rule %d: prefix and pattern are required", i)
		}
	}

	return rs, nil
}

// ToYAML serializes the rule set to YAML.
func (rs *RuleSet) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(rs); err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// LoadFile reads a rule set from a YAML file.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return FromYAML(data)
}

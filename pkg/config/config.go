// Package config defines namespace-rule tables for the xmldoc CLI.
// A rule set is pure data; loading and saving live in yaml.go.
package config

import (
	"github.com/yaklabco/xmldoc/pkg/wsd"
	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// Rule is a single namespace substitution rule. Pattern is a
// shell-style glob matched against namespace URIs.
type Rule struct {
	Prefix  string `yaml:"prefix"`
	Pattern string `yaml:"pattern"`
}

// RuleSet is an ordered list of namespace substitution rules.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Table converts the rule set to the namespace-table form the reader
// consumes. A nil or empty rule set yields a nil table, which leaves
// the document's own prefixes in effect.
func (rs *RuleSet) Table() []xmldoc.Namespace {
	if rs == nil || len(rs.Rules) == 0 {
		return nil
	}

	ns := make([]xmldoc.Namespace, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		ns = append(ns, xmldoc.Namespace{Prefix: r.Prefix, URI: r.Pattern})
	}
	return ns
}

// FromTable builds a rule set from a namespace table.
func FromTable(ns []xmldoc.Namespace) *RuleSet {
	rs := &RuleSet{}
	for _, n := range ns {
		rs.Rules = append(rs.Rules, Rule{Prefix: n.Prefix, Pattern: n.URI})
	}
	return rs
}

// Named built-in rule sets, selectable by name on the command line.
const (
	BuiltinNone = "none"
	BuiltinWSD  = "wsd"
)

// Builtin returns the built-in rule set with the given name, or nil
// if the name is unknown. The "none" set is valid and empty.
func Builtin(name string) *RuleSet {
	switch name {
	case BuiltinNone:
		return &RuleSet{}
	case BuiltinWSD:
		return FromTable(wsd.Rules)
	default:
		return nil
	}
}

package lookup

import "strings"

// Built-in entity scopes.
const (
	ScopeDefault    = "DEFAULT"
	ScopeIlluminate = "ILLUMINATE"
)

// ScopeRule tells which changes an entity scope allows.
type ScopeRule struct {
	Mutable   bool `json:"mutable" koanf:"mutable"`
	Deletable bool `json:"deletable" koanf:"deletable"`
}

// Scopes maps scope names to their rules. Lookups are case-insensitive.
type Scopes map[string]ScopeRule

// DefaultScopes returns the built-in scopes.
// Entities shipped by content packs (ILLUMINATE) are read-only.
func DefaultScopes() Scopes {
	return Scopes{
		ScopeDefault:    {Mutable: true, Deletable: true},
		ScopeIlluminate: {Mutable: false, Deletable: false},
	}
}

// Merge returns a copy of s with the rules of other applied on top.
func (s Scopes) Merge(other Scopes) Scopes {
	merged := make(Scopes, len(s)+len(other))
	for name, rule := range s {
		merged[strings.ToUpper(name)] = rule
	}
	for name, rule := range other {
		merged[strings.ToUpper(name)] = rule
	}
	return merged
}

// Rule returns the rule for scope. An empty scope is DEFAULT; unknown
// scopes allow nothing.
func (s Scopes) Rule(scope string) ScopeRule {
	if scope == "" {
		scope = ScopeDefault
	}
	if rule, ok := s[strings.ToUpper(scope)]; ok {
		return rule
	}
	for name, rule := range s {
		if strings.EqualFold(name, scope) {
			return rule
		}
	}
	return ScopeRule{}
}

// IsMutable reports whether entities in scope may be edited.
func (s Scopes) IsMutable(scope string) bool {
	return s.Rule(scope).Mutable
}

// IsDeletable reports whether entities in scope may be deleted.
func (s Scopes) IsDeletable(scope string) bool {
	return s.Rule(scope).Deletable
}

package promise

import "fmt"

// Behavior is a named capability, optionally conditional on other
// behaviors being provided elsewhere. An empty Conditions list means the
// behavior is unconditional.
type Behavior struct {
	Name       string   `yaml:"name"`
	Conditions []string `yaml:"conditions,omitempty"`
}

// NewBehavior builds an unconditional Behavior.
func NewBehavior(name string) Behavior {
	return Behavior{Name: name}
}

// NewBehaviorWithConditions builds a Behavior with the given conditions.
func NewBehaviorWithConditions(name string, conditions []string) Behavior {
	return Behavior{Name: name, Conditions: append([]string(nil), conditions...)}
}

// WithConditions returns a copy of b with conditions replaced.
func (b Behavior) WithConditions(conditions []string) Behavior {
	b.Conditions = append([]string(nil), conditions...)
	return b
}

// AddCondition returns a copy of b with c appended to its conditions.
func (b Behavior) AddCondition(c string) Behavior {
	b.Conditions = append(append([]string(nil), b.Conditions...), c)
	return b
}

// IsUnconditional reports whether b has no conditions.
func (b Behavior) IsUnconditional() bool {
	return len(b.Conditions) == 0
}

// HasBehavior reports whether n is b's own name or one of its conditions.
func (b Behavior) HasBehavior(n string) bool {
	if b.Name == n {
		return true
	}
	for _, c := range b.Conditions {
		if c == n {
			return true
		}
	}
	return false
}

// HasNoneOf reports whether none of b's conditions appear in set.
func (b Behavior) HasNoneOf(set map[string]struct{}) bool {
	for _, c := range b.Conditions {
		if _, ok := set[c]; ok {
			return false
		}
	}
	return true
}

// MakeInstance returns a copy of b tagged for a super-agent instance: the
// name becomes "{name} | {providesSuffix}" (unchanged if providesSuffix is
// empty) and every condition becomes "{c} | {conditionsSuffix}" (unchanged
// if conditionsSuffix is empty). Implementers MUST reproduce this literal
// "name | tag" form; downstream name matching depends on it byte-for-byte.
func (b Behavior) MakeInstance(providesSuffix, conditionsSuffix string) Behavior {
	out := Behavior{Name: taggedName(b.Name, providesSuffix)}
	if len(b.Conditions) > 0 {
		out.Conditions = make([]string, len(b.Conditions))
		for i, c := range b.Conditions {
			out.Conditions[i] = taggedName(c, conditionsSuffix)
		}
	}
	return out
}

func taggedName(name, suffix string) string {
	if suffix == "" {
		return name
	}
	return fmt.Sprintf("%s | %s", name, suffix)
}

// Equal reports structural equality: same name, same conditions in the
// same order.
func (b Behavior) Equal(other Behavior) bool {
	if b.Name != other.Name {
		return false
	}
	if len(b.Conditions) != len(other.Conditions) {
		return false
	}
	for i, c := range b.Conditions {
		if other.Conditions[i] != c {
			return false
		}
	}
	return true
}

// sortKey is the lexicographic key used to order provides after Reduce:
// name, then its conditions joined in order.
func (b Behavior) sortKey() string {
	key := b.Name
	for _, c := range b.Conditions {
		key += "\x00" + c
	}
	return key
}

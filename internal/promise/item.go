package promise

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind discriminates an Item document.
type Kind string

const (
	KindAgent      Kind = "Agent"
	KindSuperAgent Kind = "SuperAgent"
)

// Item is the tagged union over Agent and SuperAgent declarations
// (spec §6). Exactly one of Agent/SuperAgent is populated, selected by
// Kind.
type Item struct {
	Kind       Kind
	Agent      *Agent
	SuperAgent *SuperAgent
}

// GetName returns the item's qualified display name, e.g. "Agent/foo" or
// "SuperAgent/bar".
func (it Item) GetName() string {
	switch it.Kind {
	case KindAgent:
		return fmt.Sprintf("Agent/%s", it.Agent.Name)
	case KindSuperAgent:
		return fmt.Sprintf("SuperAgent/%s", it.SuperAgent.Name)
	default:
		return ""
	}
}

// kindEnvelope is used only to sniff the discriminator before deciding
// which strict document shape to decode against.
type kindEnvelope struct {
	Kind string `yaml:"kind"`
}

// agentDoc is the strict surface-YAML shape of an Agent document,
// including the globalConditions presentation field (spec §3).
type agentDoc struct {
	Kind             string     `yaml:"kind"`
	Name             string     `yaml:"name"`
	Comment          string     `yaml:"comment,omitempty"`
	Provides         []Behavior `yaml:"provides,omitempty"`
	Wants            []Behavior `yaml:"wants,omitempty"`
	GlobalConditions []string   `yaml:"globalConditions,omitempty"`
}

// superAgentDoc is the strict surface-YAML shape of a SuperAgent document.
type superAgentDoc struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name"`
	Comment   string     `yaml:"comment,omitempty"`
	Agents    []string   `yaml:"agents,omitempty"`
	Instances []Instance `yaml:"instances,omitempty"`
}

// ParseItem decodes a single YAML document into an Item, rejecting
// unknown fields and unrecognized kinds. Global conditions on an Agent
// document are prepended to every provide's conditions before the Agent
// value is returned (see applyGlobalConditions).
func ParseItem(data []byte) (Item, error) {
	var env kindEnvelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return Item{}, NewParseError(err)
	}

	switch Kind(env.Kind) {
	case KindAgent:
		var doc agentDoc
		if err := decodeStrict(data, &doc); err != nil {
			return Item{}, err
		}
		if doc.Name == "" {
			return Item{}, NewSchemaError("agent missing required field \"name\"")
		}
		a := Agent{Name: doc.Name, Provides: doc.Provides, Wants: doc.Wants}
		applyGlobalConditions(&a, doc.GlobalConditions)
		return Item{Kind: KindAgent, Agent: &a}, nil

	case KindSuperAgent:
		var doc superAgentDoc
		if err := decodeStrict(data, &doc); err != nil {
			return Item{}, err
		}
		if doc.Name == "" {
			return Item{}, NewSchemaError("superagent missing required field \"name\"")
		}
		sa := SuperAgent{Name: doc.Name, Agents: doc.Agents, Instances: doc.Instances}
		return Item{Kind: KindSuperAgent, SuperAgent: &sa}, nil

	case "":
		return Item{}, NewSchemaError("missing required field \"kind\"")
	default:
		return Item{}, NewSchemaError(fmt.Sprintf("unrecognized kind %q", env.Kind))
	}
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return NewSchemaError(err.Error())
	}
	return nil
}

// applyGlobalConditions prepends each global condition to every provide's
// conditions, in place. Prepending (rather than appending) keeps this the
// exact inverse of SerializeAgent's common-prefix hoist below, which is
// what makes the parse(serialize(a)) == a round trip (spec invariant 8)
// hold.
func applyGlobalConditions(a *Agent, globals []string) {
	if len(globals) == 0 {
		return
	}
	for i, p := range a.Provides {
		merged := append(append([]string(nil), globals...), p.Conditions...)
		a.Provides[i] = p.WithConditions(merged)
	}
}

// SerializeAgent computes the maximal prefix of condition names common to
// every provide and factors it back out as globalConditions, stripping it
// from the per-provide conditions. This is a presentation-level transform
// only (spec §4.2); it is skipped (conditions stay per-provide) when there
// is no common, non-empty prefix, or when the agent has no provides.
func SerializeAgent(a Agent) ([]byte, error) {
	globals, stripped := hoistGlobalConditions(a.Provides)
	doc := agentDoc{
		Kind:             string(KindAgent),
		Name:             a.Name,
		Provides:         stripped,
		Wants:            a.Wants,
		GlobalConditions: globals,
	}
	return yaml.Marshal(doc)
}

func hoistGlobalConditions(provides []Behavior) (globals []string, stripped []Behavior) {
	if len(provides) == 0 {
		return nil, provides
	}
	prefixLen := len(provides[0].Conditions)
	for _, p := range provides[1:] {
		if len(p.Conditions) < prefixLen {
			prefixLen = len(p.Conditions)
		}
	}
	for prefixLen > 0 {
		candidate := provides[0].Conditions[:prefixLen]
		common := true
		for _, p := range provides[1:] {
			for i, c := range candidate {
				if p.Conditions[i] != c {
					common = false
					break
				}
			}
			if !common {
				break
			}
		}
		if common {
			break
		}
		prefixLen--
	}
	if prefixLen == 0 {
		return nil, provides
	}
	globals = append([]string(nil), provides[0].Conditions[:prefixLen]...)
	stripped = make([]Behavior, len(provides))
	for i, p := range provides {
		stripped[i] = p.WithConditions(append([]string(nil), p.Conditions[prefixLen:]...))
	}
	return globals, stripped
}

// SerializeSuperAgent marshals a SuperAgent document (no hoisting applies
// to super-agents).
func SerializeSuperAgent(sa SuperAgent) ([]byte, error) {
	doc := superAgentDoc{
		Kind:      string(KindSuperAgent),
		Name:      sa.Name,
		Agents:    sa.Agents,
		Instances: sa.Instances,
	}
	return yaml.Marshal(doc)
}

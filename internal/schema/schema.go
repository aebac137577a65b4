// Package schema hand-builds the JSON Schema describing the surface YAML
// Item union (spec §6): an Agent or a SuperAgent, discriminated by the
// "kind" field. No reflection-based JSON Schema generator appears
// anywhere in the examples pack (see DESIGN.md), so this is written
// directly as a map[string]any literal, the same way the teacher hand
// writes its own schema-shaped config defaults rather than deriving them.
package schema

// behaviorSchema describes one entry of a "provides" or "wants" list.
func behaviorSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"conditions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"name"},
		"additionalProperties": false,
	}
}

func instanceSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":          map[string]any{"type": "string"},
			"comment":       map[string]any{"type": "string"},
			"providesTag":   map[string]any{"type": "string"},
			"conditionsTag": map[string]any{"type": "string"},
			"provides": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Behavior"},
			},
			"wants": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Behavior"},
			},
		},
		"required":             []any{"name", "providesTag", "conditionsTag"},
		"additionalProperties": false,
	}
}

func agentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind":    map[string]any{"const": "Agent"},
			"name":    map[string]any{"type": "string"},
			"comment": map[string]any{"type": "string"},
			"provides": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Behavior"},
			},
			"wants": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Behavior"},
			},
			"globalConditions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"kind", "name"},
		"additionalProperties": false,
	}
}

func superAgentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind":    map[string]any{"const": "SuperAgent"},
			"name":    map[string]any{"type": "string"},
			"comment": map[string]any{"type": "string"},
			"agents": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"instances": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Instance"},
			},
		},
		"required":             []any{"kind", "name", "agents"},
		"additionalProperties": false,
	}
}

// Item returns the complete JSON Schema object for the Item union:
// Agent and SuperAgent definitions joined with oneOf, discriminated by
// the "kind" field (spec §6).
func Item() map[string]any {
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": map[string]any{
			"Behavior":   behaviorSchema(),
			"Instance":   instanceSchema(),
			"Agent":      agentSchema(),
			"SuperAgent": superAgentSchema(),
		},
		"oneOf": []any{
			map[string]any{"$ref": "#/$defs/Agent"},
			map[string]any{"$ref": "#/$defs/SuperAgent"},
		},
		"required": []any{"kind", "name"},
	}
}

package codec

// Schema is a named JSON Schema definition for a request document.
type Schema struct {
	Name       string
	Definition map[string]any
}

var expressionDef = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"maxProperties": 1,
	"properties": map[string]any{
		"constant": map[string]any{"type": "number"},
		"variable": map[string]any{"type": "string", "minLength": 1},
		"binary": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"op":       map[string]any{"type": "string"},
				"left":     map[string]any{"$ref": "#/$defs/expression"},
				"right":    map[string]any{"$ref": "#/$defs/expression"},
				"implicit": map[string]any{"type": "boolean"},
			},
			"required":             []any{"op", "left", "right"},
			"additionalProperties": false,
		},
		"unary": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"op":      map[string]any{"type": "string"},
				"operand": map[string]any{"$ref": "#/$defs/expression"},
			},
			"required":             []any{"op", "operand"},
			"additionalProperties": false,
		},
		"function": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":     map[string]any{"type": "string"},
				"argument": map[string]any{"$ref": "#/$defs/expression"},
			},
			"required":             []any{"name", "argument"},
			"additionalProperties": false,
		},
		"group": map[string]any{"$ref": "#/$defs/expression"},
	},
	"additionalProperties": false,
}

var equationDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"left":  map[string]any{"$ref": "#/$defs/expression"},
		"right": map[string]any{"$ref": "#/$defs/expression"},
	},
	"required":             []any{"left", "right"},
	"additionalProperties": false,
}

var valueDef = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"maxProperties": 1,
	"properties": map[string]any{
		"real":    map[string]any{"type": "number"},
		"integer": map[string]any{"type": "integer"},
		"string":  map[string]any{"type": "string"},
		"set": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"ratio": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer", "minimum": 0, "maximum": 4294967295},
		},
		"expression": map[string]any{"$ref": "#/$defs/expression"},
	},
	"additionalProperties": false,
}

// ClassifyRequestSchema validates a classification request document.
var ClassifyRequestSchema = &Schema{
	Name: "classify-request",
	Definition: map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"expression": expressionDef,
			"value":      valueDef,
		},
		"properties": map[string]any{
			"interaction": map[string]any{"type": "string", "minLength": 1},
			"rule":        map[string]any{"type": "string", "minLength": 1},
			"answer":      map[string]any{"$ref": "#/$defs/value"},
			"inputs": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"$ref": "#/$defs/value"},
			},
		},
		"required":             []any{"interaction", "rule", "answer", "inputs"},
		"additionalProperties": false,
	},
}

// RenderRequestSchema validates a render request document. Exactly one of
// expression or equation must be present.
var RenderRequestSchema = &Schema{
	Name: "render-request",
	Definition: map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"expression": expressionDef,
			"equation":   equationDef,
		},
		"properties": map[string]any{
			"language":   map[string]any{"type": "string"},
			"fractions":  map[string]any{"type": "boolean"},
			"expression": map[string]any{"$ref": "#/$defs/expression"},
			"equation":   map[string]any{"$ref": "#/$defs/equation"},
		},
		"oneOf": []any{
			map[string]any{"required": []any{"expression"}},
			map[string]any{"required": []any{"equation"}},
		},
		"additionalProperties": false,
	},
}

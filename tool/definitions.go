package tool

// Definition describes a tool to a model that calls functions.  Parameters
// is a JSON schema.
type Definition struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type Function struct {
	Name        Name           `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

const pathHelp = `Path to a field, fields separated by '.' and array elements addressed with [n], e.g. "basic.name" or "education[0].school".`

func editSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": pathHelp,
			},
			"action": map[string]any{
				"type": "string",
				"enum": []any{"update", "add", "delete"},
				"description": "update replaces the value at path; add appends value to the array at path, " +
					"replacing a non-array value with an empty array first; delete removes the value at path, " +
					"or empties it when path is a top-level field.",
			},
			"value": map[string]any{
				"description": "The new value, required for update and add.",
			},
		},
		"required": []any{"path", "action"},
	}
}

// Definitions returns the definitions of the three tools.
func Definitions() []Definition {
	return []Definition{
		{
			Type: "function",
			Function: Function{
				Name:        CVReader,
				Description: "Read the resume, or the value at one path of it.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"path": map[string]any{
							"type":        "string",
							"description": pathHelp + " Omit to read the whole resume.",
						},
					},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        CVEditor,
				Description: "Make one change to the resume.",
				Parameters:  editSchema(),
			},
		},
		{
			Type: "function",
			Function: Function{
				Name: CVBatchEditor,
				Description: "Make several changes to the resume in order. " +
					"Each change sees the ones before it; a failing change does not stop the others.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"operations": map[string]any{
							"type":  "array",
							"items": editSchema(),
						},
					},
					"required": []any{"operations"},
				},
			},
		},
	}
}

// Lookup returns the definition of the named tool.
func Lookup(name Name) (Definition, bool) {
	for _, def := range Definitions() {
		if def.Function.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

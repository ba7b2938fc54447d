package common

// Vars carries template variables as an arbitrary JSON object. Values
// are serialized as-is; the provider substitutes them into
// [[var:name]] placeholders.
type Vars map[string]any

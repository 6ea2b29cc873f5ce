package openapi

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSON returns the indented JSON encoding of d. The paths and tags keys are
// always present, empty when d has none.
func (d *Document) JSON() ([]byte, error) {
	b, err := json.Marshal(d.T)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if _, ok := m["paths"]; !ok {
		m["paths"] = json.RawMessage(`{}`)
	}
	if _, ok := m["tags"]; !ok {
		m["tags"] = json.RawMessage(`[]`)
	}
	return json.MarshalIndent(m, "", "  ")
}

// YAML returns the YAML encoding of d, with the keys of [Document.JSON].
func (d *Document) YAML() ([]byte, error) {
	b, err := d.JSON()
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle clears the flow and quoting styles yaml.v3 records when it
// parses JSON. The encoder re-quotes scalars that would otherwise change type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

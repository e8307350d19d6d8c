package encoder

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// yamlIndent is the number of spaces per nesting level.
const yamlIndent = 2

// encodeYAML renders records as a sequence of mappings.
//
// The document is built as a yaml.Node tree so that mapping keys keep header
// order. Every scalar is tagged !!str; the encoder quotes values such as "30"
// or "true" that would otherwise read back as numbers or booleans.
func encodeYAML(records []types.Record) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range records {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range r.Fields() {
			m.Content = append(m.Content, stringNode(f.Key), stringNode(f.Value))
		}
		seq.Content = append(seq.Content, m)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, serializationError(format.YAML, err)
	}
	if err := enc.Close(); err != nil {
		return nil, serializationError(format.YAML, err)
	}
	return buf.Bytes(), nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

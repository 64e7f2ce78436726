/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cascade-design/cascade/token"
)

// ParseYAML decodes a YAML token document. Decoding walks yaml.Node
// directly, since unmarshalling through map[string]any would lose
// key order.
func ParseYAML(data []byte) (*token.Set, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	set := token.NewSet()
	if len(root.Content) == 0 {
		return set, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML root must be a mapping")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		path := doc.Content[i].Value
		tok, err := decodeYAMLEntry(path, doc.Content[i+1])
		if err != nil {
			return nil, err
		}
		set.Set(path, tok)
	}
	return set, nil
}

func decodeYAMLEntry(path string, node *yaml.Node) (*token.Token, error) {
	node = derefYAML(node)

	if node.Kind == yaml.MappingNode && isYAMLTokenEntry(node) {
		value, err := decodeYAMLValue(yamlMapGet(node, "value"))
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", path, err)
		}
		tok := &token.Token{Name: path, Value: value}
		if comment := yamlMapGet(node, "comment"); comment != nil {
			tok.Comment = comment.Value
		}
		return tok, nil
	}

	value, err := decodeYAMLValue(node)
	if err != nil {
		return nil, fmt.Errorf("token %q: %w", path, err)
	}
	return &token.Token{Name: path, Value: value}, nil
}

// isYAMLTokenEntry mirrors the JSON entry-shape rule: a mapping with a
// "value" key and no keys beyond value, comment and name.
func isYAMLTokenEntry(node *yaml.Node) bool {
	hasValue := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "value":
			hasValue = true
		case "comment", "name":
		default:
			return false
		}
	}
	return hasValue
}

func decodeYAMLValue(node *yaml.Node) (token.Value, error) {
	if node == nil {
		return token.Null{}, nil
	}
	node = derefYAML(node)

	switch node.Kind {
	case yaml.ScalarNode:
		return decodeYAMLScalar(node)

	case yaml.SequenceNode:
		obj := token.NewObject()
		for i, item := range node.Content {
			v, err := decodeYAMLValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			obj.Set(strconv.Itoa(i), v)
		}
		return obj, nil

	case yaml.MappingNode:
		return decodeYAMLMapping(node)
	}

	return nil, fmt.Errorf("unsupported YAML node kind %d", node.Kind)
}

func decodeYAMLScalar(node *yaml.Node) (token.Value, error) {
	switch node.Tag {
	case "!!null":
		return token.Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return token.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return token.Number(f), nil
	default:
		return stringValue(node.Value), nil
	}
}

// decodeYAMLMapping applies the same shape priority as the JSON decoder:
// alias > reference > dimension > transform > generic object.
func decodeYAMLMapping(node *yaml.Node) (token.Value, error) {
	if alias := yamlMapGet(node, "alias"); alias != nil {
		return token.Alias(alias.Value), nil
	}
	if ref := yamlMapGet(node, "reference"); ref != nil {
		return token.Reference(ref.Value), nil
	}

	if kind := yamlMapGet(node, "type"); kind != nil && kind.Value == "dimension" {
		valueNode := yamlMapGet(node, "value")
		if valueNode == nil {
			return nil, fmt.Errorf("dimension missing value")
		}
		var d token.Dimension
		if err := valueNode.Decode(&d.Value); err != nil {
			return nil, fmt.Errorf("dimension value must be a number: %w", err)
		}
		if unit := yamlMapGet(node, "unit"); unit != nil {
			d.Unit = unit.Value
		}
		return d, nil
	}

	if steps := yamlMapGet(node, "steps"); steps != nil {
		return decodeYAMLTransform(steps)
	}

	obj := token.NewObject()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		member, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj.Set(key, member)
	}
	return obj, nil
}

func decodeYAMLTransform(steps *yaml.Node) (token.Value, error) {
	steps = derefYAML(steps)
	if steps.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("steps must be a sequence")
	}

	pipeline := token.Transform{}
	for i, stepNode := range steps.Content {
		stepNode = derefYAML(stepNode)
		if stepNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("step %d: must be a mapping", i)
		}
		kind := yamlMapGet(stepNode, "type")
		if kind == nil {
			return nil, fmt.Errorf("step %d: missing type", i)
		}

		step := token.Step{Name: kind.Value}
		if args := yamlMapGet(stepNode, "args"); args != nil {
			args = derefYAML(args)
			if args.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("step %d: args must be a sequence", i)
			}
			for j, argNode := range args.Content {
				arg, err := decodeYAMLValue(argNode)
				if err != nil {
					return nil, fmt.Errorf("step %d arg %d: %w", i, j, err)
				}
				step.Args = append(step.Args, arg)
			}
		}
		pipeline.Steps = append(pipeline.Steps, step)
	}
	return pipeline, nil
}

// yamlMapGet returns the value node for key in a mapping node.
func yamlMapGet(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return derefYAML(node.Content[i+1])
		}
	}
	return nil
}

// derefYAML follows anchor aliases.
func derefYAML(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nargs

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the mapping as a JSON object, preserving insertion
// order. Scalars become strings, lists become arrays, flags become booleans.
func (a *Args) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(plain(a.values[key]))
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the mapping as a YAML mapping node, preserving
// insertion order.
func (a *Args) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range a.keys {
		var kn, vn yaml.Node
		if err := kn.Encode(key); err != nil {
			return nil, err
		}
		if err := vn.Encode(plain(a.values[key])); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

func plain(v Value) any {
	switch v := v.(type) {
	case Scalar:
		return string(v)
	case List:
		return []string(v)
	case Flag:
		return bool(v)
	}
	return nil
}

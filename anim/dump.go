// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"encoding/xml"
	"io"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/tree"
	"cogentcore.org/animator/types"
)

// Dump writes the current state of the document as a document,
// with the members that differ from their defaults as attributes.
func (m *Maker) Dump(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := m.dumpNode(enc, m.root); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (m *Maker) dumpNode(enc *xml.Encoder, n Node) error {
	nb := n.AsNode()
	start := xml.StartElement{Name: xml.Name{Local: nb.Kind.Name}}
	if nb.Name != "" && n != Node(m.root) {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "id"}, Value: nb.Name})
	}
	var def Node
	if nb.Kind.New != nil {
		def, _ = nb.Kind.New().(Node)
		if def != nil {
			tree.InitNode(def)
		}
	}
	for _, mb := range nb.Kind.AllMembers() {
		if mb.IsReadOnly() || mb.Get == nil || (mb.Kind != types.Field && mb.Kind != types.ArrayField) {
			continue
		}
		v := mb.Get(n)
		if def != nil && valuesEqual(v, mb.Get(def)) {
			continue
		}
		if !v.IsValid() {
			continue
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: mb.Name}, Value: m.formatValue(mb, v)})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range nodeChildren(n) {
		if err := m.dumpNode(enc, k); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// formatValue formats the value of the member as attribute text.
func (m *Maker) formatValue(mb *types.Member, v operand.Value) string {
	switch mb.Type {
	case operand.Object:
		if n := m.node(v.Ref); n != nil && n.AsNode().Name != "" {
			return n.AsNode().Name
		}
		return v.String()
	case operand.Enum:
		if int(v.Int) >= 0 && int(v.Int) < len(mb.Enum) {
			return mb.Enum[v.Int]
		}
	case operand.Color:
		return colors.AsHex(colors.FromARGB(uint32(v.Int)))
	case operand.Boolean:
		if v.Int != 0 {
			return "true"
		}
		return "false"
	}
	if v.Type == operand.Array {
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return v.String()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/animator/operand"
	"golang.org/x/net/html/charset"
)

// LoadFile loads the document in the given file. Bitmap and movie
// sources are relative to the directory of the file unless
// [Maker.Dir] is already set.
func (m *Maker) LoadFile(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if m.Dir == "" {
		m.Dir = filepath.Dir(filename)
	}
	return m.Load(bufio.NewReader(fp))
}

// Load replaces the document with the one read from the reader.
// Problems with the document are reported as [Diagnostics], which
// are also returned as the error. Elements with structural problems
// are dropped with their subtrees, and elements with references that
// cannot be resolved are kept but are neither drawn nor run.
func (m *Maker) Load(r io.Reader) error {
	m.reset()
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	stack := []Node{m.root}
	rootOpen := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				line, _ := decoder.InputPos()
				m.addDiag(&Diagnostic{Code: XMLSyntax, Line: line, Err: err})
			}
			break
		}
		switch se := t.(type) {
		case xml.StartElement:
			line, _ := decoder.InputPos()
			nm := se.Name.Local
			if nm == "screenplay" && len(stack) == 1 && !rootOpen {
				rootOpen = true
				for _, attr := range se.Attr {
					if !isNamespace(attr) {
						m.setAttr(m.root, attr.Name.Local, attr.Value)
					}
				}
				stack = append(stack, m.root)
				continue
			}
			if len(stack) > MaxDepth {
				m.addDiag(&Diagnostic{Code: TreeTooDeep, Noun: nm, Line: line, Err: fmt.Errorf("anim: more than %d levels", MaxDepth)})
				decoder.Skip()
				continue
			}
			n, err := m.startElement(stack[len(stack)-1], se, line)
			if err != nil {
				decoder.Skip()
				continue
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 1 {
				continue
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n != Node(m.root) {
				m.endElement(n)
			}
		case xml.CharData:
			text := strings.TrimSpace(string(se))
			if text == "" {
				continue
			}
			switch n := stack[len(stack)-1].(type) {
			case *Text:
				n.Text += text
			case *StringData:
				n.Value += text
			}
		}
	}
	for len(stack) > 1 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n != Node(m.root) {
			m.endElement(n)
		}
	}
	m.finishLoad()
	slog.Debug("anim.Maker.Load", "nodes", len(m.nodes)-1, "ids", len(m.ids), "diagnostics", len(m.diags))
	if len(m.diags) > 0 {
		return m.diags
	}
	return nil
}

// startElement creates the node for the element as a child of the
// parent and sets its attributes. The node is discarded with an error
// if the element or any of its attributes is unknown, or its id is a
// duplicate.
func (m *Maker) startElement(parent Node, se xml.StartElement, line int) (Node, error) {
	nm := se.Name.Local
	v, tp, err := m.Registry.Create(nm)
	if err == nil {
		if _, ok := v.(Node); !ok {
			err = errors.New("anim: not a scene element")
		}
	}
	if err != nil {
		d := &Diagnostic{Code: UnknownElement, Noun: nm, Line: line, Err: err}
		m.addDiag(d)
		return nil, d
	}
	n := v.(Node)
	parent.AsTree().AddChild(n)
	m.register(n, tp)
	n.AsNode().Line = line
	discard := func(err error) (Node, error) {
		m.nodes[n.AsNode().Ref] = nil
		if id := n.AsNode().Name; id != "" && m.ids[id] == n.AsNode().Ref {
			delete(m.ids, id)
		}
		parent.AsTree().DeleteChild(n)
		return nil, err
	}
	for _, attr := range se.Attr {
		if attr.Name.Local != "id" {
			continue
		}
		if !m.bind(n, attr.Value) {
			return discard(m.fail(n, DuplicateID, attr.Value, fmt.Errorf("anim: id %q is already used", attr.Value)))
		}
	}
	for _, attr := range se.Attr {
		if attr.Name.Local == "id" || isNamespace(attr) {
			continue
		}
		if err := m.setAttr(n, attr.Name.Local, attr.Value); err != nil {
			var d *Diagnostic
			if errors.As(err, &d) && d.Code.Structural() {
				return discard(err)
			}
		}
	}
	return n, nil
}

// setAttr sets the attribute of the node from its text. Object
// references and expressions referring to ids not defined yet are
// resolved when the element closes.
func (m *Maker) setAttr(n Node, name, text string) error {
	nb := n.AsNode()
	mb, err := m.Registry.Resolve(nb.Kind, name)
	if err != nil {
		return m.fail(n, UnknownAttribute, name, err)
	}
	if mb.IsReadOnly() || mb.Set == nil {
		return m.fail(n, UnknownAttribute, name, fmt.Errorf("anim: %s.%s is read only", nb.Kind.Name, name))
	}
	if mb.Type == operand.Object {
		nb.pending = append(nb.pending, pendingRef{member: mb, text: text})
		return nil
	}
	v, err := m.parseValue(n, mb, text)
	if err != nil {
		if isMissingRef(err) {
			nb.pending = append(nb.pending, pendingRef{member: mb, text: text})
			return nil
		}
		nb.broken = true
		return m.fail(n, ScriptError, text, err)
	}
	if err := m.setValue(n, mb, v); err != nil {
		nb.broken = true
		return m.fail(n, ScriptError, text, err)
	}
	return nil
}

// resolvePending resolves the pending references of the node. Unless
// final, references to ids not defined yet are kept pending and false
// is returned.
func (m *Maker) resolvePending(n Node, final bool) bool {
	nb := n.AsNode()
	var left []pendingRef
	for _, p := range nb.pending {
		v, err := m.parseValue(n, p.member, p.text)
		if err == nil {
			err = m.setValue(n, p.member, v)
		}
		switch {
		case err == nil:
		case isMissingRef(err) && !final:
			left = append(left, p)
		case isMissingRef(err):
			nb.broken = true
			m.fail(n, IDNotFound, strings.TrimSpace(p.text), err)
		default:
			nb.broken = true
			m.fail(n, ScriptError, p.text, err)
		}
	}
	nb.pending = left
	return len(left) == 0
}

// endElement finishes the node when its element closes: it resolves
// its references, checks it, and attaches it to its parent.
func (m *Maker) endElement(n Node) {
	nb := n.AsNode()
	if m.resolvePending(n, false) {
		if m.checkElement(n) {
			return
		}
	} else {
		m.deferred = append(m.deferred, n)
	}
	parent := parentNode(n)
	if parent != nil && !parent.Contain(n) {
		m.fail(n, ParentCannotContain, nb.Kind.Name, fmt.Errorf("anim: %s cannot contain %s", parent.AsNode().Kind.Name, nb.Kind.Name))
		m.destroy(n)
		return
	}
	switch x := n.(type) {
	case *EventHandler:
		m.handlers = append(m.handlers, x)
	case *Movie:
		m.movies = append(m.movies, x)
	}
}

// checkElement runs the end of element checks of the node, destroying
// it and returning true if it has a structural problem.
func (m *Maker) checkElement(n Node) bool {
	err := n.EndElement(m)
	if err == nil {
		return false
	}
	var d *Diagnostic
	if errors.As(err, &d) && d.Code.Structural() {
		m.destroy(n)
		return true
	}
	n.AsNode().broken = true
	return false
}

// finishLoad resolves the forward references and builds the display list.
func (m *Maker) finishLoad() {
	for _, n := range m.deferred {
		if m.node(n.AsNode().Ref) == nil {
			continue
		}
		m.resolvePending(n, true)
		m.checkElement(n)
	}
	m.deferred = nil
	m.list.Entries = m.list.Entries[:0]
	for _, n := range nodeChildren(m.root) {
		if n.Caps().Has(CapDrawable) && !n.AsNode().broken {
			m.list.Entries = append(m.list.Entries, n)
		}
	}
	m.handlers = slices.DeleteFunc(m.handlers, func(h *EventHandler) bool { return m.node(h.Ref) == nil })
	m.started = false
}

// isNamespace returns whether the attribute is a namespace declaration.
func isNamespace(attr xml.Attr) bool {
	return attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns"
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cogentcore.org/animator/base/iox/yamlx"
)

// ErrorCode identifies the kind of a [Diagnostic].
type ErrorCode string

const (
	// XMLSyntax indicates the document is not well formed.
	XMLSyntax ErrorCode = "xml-syntax"

	// UnknownElement indicates an element name with no registered type.
	UnknownElement ErrorCode = "unknown-element"

	// UnknownAttribute indicates an attribute the element type does not have,
	// or one that is read-only.
	UnknownAttribute ErrorCode = "unknown-attribute"

	// DuplicateID indicates a second element with an id already bound.
	DuplicateID ErrorCode = "duplicate-id"

	// ParentCannotContain indicates a child element its parent has no slot for.
	ParentCannotContain ErrorCode = "parent-cannot-contain"

	// ApplyScopesItself indicates an apply whose scope is the apply.
	ApplyScopesItself ErrorCode = "apply-scopes-itself"

	// TreeTooDeep indicates elements nested deeper than [MaxDepth].
	TreeTooDeep ErrorCode = "tree-too-deep"

	// GradientOffsets indicates malformed gradient offsets.
	GradientOffsets ErrorCode = "gradient-offsets"

	// SaveLayerNeedsBounds indicates a saveLayer without bounds.
	SaveLayerNeedsBounds ErrorCode = "save-layer-needs-bounds"

	// IDNotFound indicates a reference to an id that is never bound.
	IDNotFound ErrorCode = "id-not-found"

	// FieldNotFound indicates a reference to a member the target does not have.
	FieldNotFound ErrorCode = "field-not-found"

	// ScriptError indicates an expression that failed to evaluate.
	ScriptError ErrorCode = "script-error"

	// IndexOutOfRange indicates an add, move or replace offset
	// outside of its list.
	IndexOutOfRange ErrorCode = "index-out-of-range"

	// ResourceNotFound indicates a bitmap or movie source that could not be loaded.
	ResourceNotFound ErrorCode = "resource-not-found"
)

// Structural returns whether the code discards the offending subtree.
// Other codes leave the node in place but out of the display list.
func (c ErrorCode) Structural() bool {
	switch c {
	case XMLSyntax, UnknownElement, UnknownAttribute, DuplicateID, ParentCannotContain, ApplyScopesItself,
		TreeTooDeep, GradientOffsets, SaveLayerNeedsBounds:
		return true
	}
	return false
}

// Diagnostic is one problem found while loading or running a document.
type Diagnostic struct {

	// Code is the kind of problem.
	Code ErrorCode `yaml:"code"`

	// Noun is what the problem is about: an element or attribute name,
	// an id or an expression.
	Noun string `yaml:"noun"`

	// Line is the line of the element in the document, or 0.
	Line int `yaml:"line"`

	// Message is the text of Err, kept for serialization.
	Message string `yaml:"message,omitempty"`

	// Err is the underlying error, if any.
	Err error `yaml:"-"`
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", d.Line)
	}
	fmt.Fprintf(&b, "%s %q", d.Code, d.Noun)
	if d.Err != nil {
		b.WriteString(": " + d.Err.Error())
	}
	return b.String()
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is the list of problems of one document.
// It is an error summarizing its first entry.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", ds[0].Error(), len(ds)-1)
}

// Has returns whether there is a diagnostic with the given code.
func (ds Diagnostics) Has(code ErrorCode) bool {
	return ds.Find(code) != nil
}

// Find returns the first diagnostic with the given code, or nil.
func (ds Diagnostics) Find(code ErrorCode) *Diagnostic {
	for _, d := range ds {
		if d.Code == code {
			return d
		}
	}
	return nil
}

// Codes returns the codes of the diagnostics in order.
func (ds Diagnostics) Codes() []ErrorCode {
	codes := make([]ErrorCode, len(ds))
	for i, d := range ds {
		codes[i] = d.Code
	}
	return codes
}

// WriteTable writes the diagnostics as an aligned table.
func (ds Diagnostics) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tCODE\tNOUN\tMESSAGE")
	for _, d := range ds {
		msg := ""
		if d.Err != nil {
			msg = d.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", d.Line, d.Code, d.Noun, msg)
	}
	return tw.Flush()
}

// WriteYAML writes the diagnostics as a YAML list.
func (ds Diagnostics) WriteYAML(w io.Writer) error {
	for _, d := range ds {
		if d.Err != nil {
			d.Message = d.Err.Error()
		}
	}
	return yamlx.Write(ds, w)
}

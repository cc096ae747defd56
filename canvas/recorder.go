// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
)

// Op is one drawing operation recorded by a [Recorder].
type Op struct {

	// Name is the name of the [Canvas] method, such as "DrawRect".
	Name string

	// Matrix is the transform in effect when the op was recorded.
	Matrix math32.Matrix2

	// Clip is the device space clip bounds in effect.
	Clip math32.Box2

	// Bounds is the local bounds of the shape for drawing ops,
	// or the clip rectangle for ClipRect.
	Bounds math32.Box2

	// Paint is a copy of the paint for drawing ops.
	Paint *Paint

	// Path is a copy of the path for DrawPath and ClipPath.
	Path *Path

	// Text is the text drawn by DrawText.
	Text string

	// Color is the color of DrawColor.
	Color color.NRGBA
}

func (o *Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	if !o.Bounds.IsEmpty() {
		fmt.Fprintf(&b, " %v", o.Bounds)
	}
	if o.Text != "" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	if o.Name == "DrawColor" {
		b.WriteString(" " + colors.AsHex(o.Color))
	}
	if o.Paint != nil {
		b.WriteString(" " + o.Paint.String())
	}
	return b.String()
}

type recState struct {
	matrix math32.Matrix2
	clip   math32.Box2
}

// Recorder is a [Canvas] that records the operations drawn to it
// without rendering anything, for inspecting and testing scenes.
type Recorder struct {

	// Ops are the recorded operations, including state changes.
	Ops []Op

	// Size is the size of the surface, which is the initial clip.
	Size math32.Vector2

	cur   recState
	stack []recState
}

// NewRecorder returns a new [Recorder] with the given surface size.
func NewRecorder(w, h float32) *Recorder {
	r := &Recorder{Size: math32.Vec2(w, h)}
	r.Reset()
	return r
}

// Reset removes all ops and restores the initial state.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.stack = nil
	r.cur = recState{matrix: math32.Identity2(), clip: math32.B2(0, 0, r.Size.X, r.Size.Y)}
}

// Names returns the names of all recorded ops in order.
func (r *Recorder) Names() []string {
	nms := make([]string, len(r.Ops))
	for i := range r.Ops {
		nms[i] = r.Ops[i].Name
	}
	return nms
}

// Draws returns the recorded ops that draw something, skipping
// state changes.
func (r *Recorder) Draws() []Op {
	var ds []Op
	for _, o := range r.Ops {
		if strings.HasPrefix(o.Name, "Draw") {
			ds = append(ds, o)
		}
	}
	return ds
}

func (r *Recorder) String() string {
	var b strings.Builder
	for i := range r.Ops {
		b.WriteString(r.Ops[i].String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Recorder) record(name string, bounds math32.Box2, p *Paint) *Op {
	o := Op{Name: name, Matrix: r.cur.matrix, Clip: r.cur.clip, Bounds: bounds}
	if p != nil {
		o.Paint = p.Clone()
	}
	r.Ops = append(r.Ops, o)
	return &r.Ops[len(r.Ops)-1]
}

func (r *Recorder) Save() int {
	n := len(r.stack)
	r.stack = append(r.stack, r.cur)
	r.record("Save", math32.B2Empty(), nil)
	return n
}

func (r *Recorder) SaveLayer(bounds math32.Box2, p *Paint) int {
	n := len(r.stack)
	r.stack = append(r.stack, r.cur)
	r.record("SaveLayer", bounds, p)
	return n
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.record("Restore", math32.B2Empty(), nil)
}

func (r *Recorder) SaveCount() int {
	return len(r.stack)
}

func (r *Recorder) Concat(m math32.Matrix2) {
	r.cur.matrix = r.cur.matrix.Mul(m)
	r.record("Concat", math32.B2Empty(), nil)
}

func (r *Recorder) Matrix() math32.Matrix2 {
	return r.cur.matrix
}

// Clip returns the current clip bounds in device space.
func (r *Recorder) Clip() math32.Box2 {
	return r.cur.clip
}

func (r *Recorder) ClipRect(rc math32.Box2) {
	r.cur.clip = r.cur.clip.Intersect(rc.MulMatrix2(r.cur.matrix))
	r.record("ClipRect", rc, nil)
}

func (r *Recorder) ClipPath(p *Path) {
	r.cur.clip = r.cur.clip.Intersect(p.Bounds().MulMatrix2(r.cur.matrix))
	o := r.record("ClipPath", p.Bounds(), nil)
	o.Path = p.Clone()
}

func (r *Recorder) DrawColor(c color.Color) {
	o := r.record("DrawColor", math32.B2Empty(), nil)
	o.Color = colors.AsNRGBA(c)
}

func (r *Recorder) DrawRect(rc math32.Box2, p *Paint) {
	r.record("DrawRect", rc, p)
}

func (r *Recorder) DrawOval(rc math32.Box2, p *Paint) {
	r.record("DrawOval", rc, p)
}

func (r *Recorder) DrawRoundRect(rc math32.Box2, rx, ry float32, p *Paint) {
	r.record("DrawRoundRect", rc, p)
}

func (r *Recorder) DrawPath(path *Path, p *Paint) {
	o := r.record("DrawPath", path.Bounds(), p)
	o.Path = path.Clone()
}

func (r *Recorder) DrawText(text string, x, y float32, p *Paint) {
	o := r.record("DrawText", TextBounds(text, x, y, p), p)
	o.Text = text
}

func (r *Recorder) DrawBitmap(img image.Image, x, y float32, p *Paint) {
	sz := img.Bounds().Size()
	r.record("DrawBitmap", math32.B2(x, y, x+float32(sz.X), y+float32(sz.Y)), p)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"image/color"

	"cogentcore.org/animator/base/errors"
	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/events"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/types"
)

// NewRegistry returns a registry with all of the element types.
func NewRegistry() *types.Registry {
	r := types.NewRegistry()
	add := func(name string, base *types.Type, nw func() any, doc string, members ...*types.Member) *types.Type {
		for i, mb := range members {
			mb.Index = i
		}
		return errors.Must1(r.AddType(&types.Type{Name: name, Base: base, New: nw, Doc: doc, Members: members}))
	}

	add("screenplay", nil, nil, "the document root",
		property("time", operand.MSec, func(n *Screenplay) operand.Value {
			return operand.ScalarValue(float32(n.maker.time) / 1000)
		}, nil))

	// shapes
	shape := add("shape", nil, nil, "",
		refField("paint", func(n shapeNode) *operand.Ref { return &n.AsShape().Paint }))
	rect := add("rect", shape, func() any { return &Rect{} }, "a rectangle", rectMembers()...)
	add("oval", rect, func() any { return &Oval{} }, "an ellipse inscribed in its rectangle")
	add("roundRect", rect, func() any { return &RoundRect{} }, "a rectangle with rounded corners",
		scalarField("rx", func(n *RoundRect) *float32 { return &n.RX }),
		scalarField("ry", func(n *RoundRect) *float32 { return &n.RY }))
	add("line", shape, func() any { return &Line{} }, "a line segment",
		scalarField("x1", func(n *Line) *float32 { return &n.X1 }),
		scalarField("y1", func(n *Line) *float32 { return &n.Y1 }),
		scalarField("x2", func(n *Line) *float32 { return &n.X2 }),
		scalarField("y2", func(n *Line) *float32 { return &n.Y2 }))
	polyline := add("polyline", shape, func() any { return &Polyline{} }, "an open polygonal line",
		scalarsField("points", func(n polyNode) *[]float32 { return &n.AsPolyline().Points }))
	add("polygon", polyline, func() any { return &Polygon{} }, "a closed polygon")
	add("text", shape, func() any { return &Text{} }, "a string of text",
		stringField("text", func(n *Text) *string { return &n.Text }),
		scalarField("x", func(n *Text) *float32 { return &n.X }),
		scalarField("y", func(n *Text) *float32 { return &n.Y }),
		property("length", operand.Int, func(n *Text) operand.Value {
			return operand.IntValue(int32(len([]rune(n.Text))))
		}, nil))
	add("bitmap", shape, func() any { return &Bitmap{} }, "an image file",
		stringField("src", func(n *Bitmap) *string { return &n.Src }),
		scalarField("x", func(n *Bitmap) *float32 { return &n.X }),
		scalarField("y", func(n *Bitmap) *float32 { return &n.Y }),
		property("width", operand.Scalar, func(n *Bitmap) operand.Value {
			return operand.ScalarValue(n.Size(n.maker).X)
		}, nil),
		property("height", operand.Scalar, func(n *Bitmap) operand.Value {
			return operand.ScalarValue(n.Size(n.maker).Y)
		}, nil))
	add("movie", nil, func() any { return &Movie{} }, "a nested document",
		stringField("src", func(n *Movie) *string { return &n.Src }))

	// paths
	add("path", shape, func() any { return &Path{} }, "SVG path data and path parts",
		stringField("d", func(n *Path) *string { return &n.D }),
		enumField("fillType", fillTypeNames, func(n *Path) *FillTypes { return &n.FillType }),
		property("length", operand.Scalar, func(n *Path) operand.Value {
			return operand.ScalarValue(n.Build().Length())
		}, nil))
	part := add("pathPart", nil, nil, "",
		boolField("rel", func(n pathPartNode) *bool { return &n.asPathPart().Rel }))
	add("moveTo", part, func() any { return &MoveTo{} }, "",
		scalarField("x", func(n *MoveTo) *float32 { return &n.X }),
		scalarField("y", func(n *MoveTo) *float32 { return &n.Y }))
	add("lineTo", part, func() any { return &LineTo{} }, "",
		scalarField("x", func(n *LineTo) *float32 { return &n.X }),
		scalarField("y", func(n *LineTo) *float32 { return &n.Y }))
	add("quadTo", part, func() any { return &QuadTo{} }, "",
		scalarField("x1", func(n *QuadTo) *float32 { return &n.X1 }),
		scalarField("y1", func(n *QuadTo) *float32 { return &n.Y1 }),
		scalarField("x2", func(n *QuadTo) *float32 { return &n.X2 }),
		scalarField("y2", func(n *QuadTo) *float32 { return &n.Y2 }))
	add("cubicTo", part, func() any { return &CubicTo{} }, "",
		scalarField("x1", func(n *CubicTo) *float32 { return &n.X1 }),
		scalarField("y1", func(n *CubicTo) *float32 { return &n.Y1 }),
		scalarField("x2", func(n *CubicTo) *float32 { return &n.X2 }),
		scalarField("y2", func(n *CubicTo) *float32 { return &n.Y2 }),
		scalarField("x3", func(n *CubicTo) *float32 { return &n.X3 }),
		scalarField("y3", func(n *CubicTo) *float32 { return &n.Y3 }))
	add("arcTo", part, func() any { return &ArcTo{} }, "",
		scalarField("rx", func(n *ArcTo) *float32 { return &n.RX }),
		scalarField("ry", func(n *ArcTo) *float32 { return &n.RY }),
		scalarField("rotation", func(n *ArcTo) *float32 { return &n.Rotation }),
		boolField("largeArc", func(n *ArcTo) *bool { return &n.LargeArc }),
		boolField("sweep", func(n *ArcTo) *bool { return &n.Sweep }),
		scalarField("x", func(n *ArcTo) *float32 { return &n.X }),
		scalarField("y", func(n *ArcTo) *float32 { return &n.Y }))
	add("close", part, func() any { return &Close{} }, "")

	// paint
	add("paint", nil, func() any { return &Paint{} }, "the paint of shapes", paintMembers()...)
	add("color", nil, func() any { return &Color{} }, "a color", colorMembers()...)
	gradient := add("gradient", nil, nil, "",
		scalarsField("offsets", func(n gradientNode) *[]float32 { return &n.AsGradient().Offsets }),
		enumField("tileMode", tileModeNames, func(n gradientNode) *canvas.TileModes { return &n.AsGradient().TileMode }),
		refField("matrix", func(n gradientNode) *operand.Ref { return &n.AsGradient().Matrix }))
	add("linearGradient", gradient, func() any { return &LinearGradient{} }, "a linear gradient shader",
		scalarsField("points", func(n *LinearGradient) *[]float32 { return &n.Points }))
	add("radialGradient", gradient, func() any { return &RadialGradient{} }, "a radial gradient shader",
		pointField("center", func(n *RadialGradient) *math32.Vector2 { return &n.Center }),
		scalarField("radius", func(n *RadialGradient) *float32 { return &n.Radius }))
	add("blur", nil, func() any { return &Blur{} }, "a blur mask filter",
		scalarField("radius", func(n *Blur) *float32 { return &n.Radius }),
		enumField("blurStyle", blurStyleNames, func(n *Blur) *canvas.BlurStyles { return &n.BlurStyle }))
	add("emboss", nil, func() any { return &Emboss{} }, "an emboss mask filter",
		scalarField("radius", func(n *Emboss) *float32 { return &n.Radius }),
		scalarsField("direction", func(n *Emboss) *[]float32 { return &n.Direction }),
		scalarField("ambient", func(n *Emboss) *float32 { return &n.Ambient }),
		scalarField("specular", func(n *Emboss) *float32 { return &n.Specular }))
	add("dash", nil, func() any { return &Dash{} }, "a dash path effect",
		scalarsField("intervals", func(n *Dash) *[]float32 { return &n.Intervals }),
		scalarField("phase", func(n *Dash) *float32 { return &n.Phase }))

	// matrices
	add("matrix", nil, func() any { return &Matrix{} }, "a transform", matrixMembers()...)
	add("rotate", nil, func() any { return &RotatePart{} }, "",
		scalarField("degrees", func(n *RotatePart) *float32 { return &n.Degrees }),
		pointField("center", func(n *RotatePart) *math32.Vector2 { return &n.Center }))
	add("scale", nil, func() any { return &ScalePart{} }, "",
		scalarField("x", func(n *ScalePart) *float32 { return &n.X }),
		scalarField("y", func(n *ScalePart) *float32 { return &n.Y }),
		pointField("center", func(n *ScalePart) *math32.Vector2 { return &n.Center }))
	add("translate", nil, func() any { return &TranslatePart{} }, "",
		scalarField("x", func(n *TranslatePart) *float32 { return &n.X }),
		scalarField("y", func(n *TranslatePart) *float32 { return &n.Y }))
	add("skew", nil, func() any { return &SkewPart{} }, "",
		scalarField("x", func(n *SkewPart) *float32 { return &n.X }),
		scalarField("y", func(n *SkewPart) *float32 { return &n.Y }))

	// groups
	group := add("group", nil, func() any { return &Group{} }, "a group of drawables",
		stringField("condition", func(n groupNode) *string { return &n.AsGroup().Condition }),
		stringField("enableCondition", func(n groupNode) *string { return &n.AsGroup().EnableCondition }))
	add("save", group, func() any { return &Save{} }, "a group")
	add("saveLayer", group, func() any { return &SaveLayer{} }, "a group drawn in a layer",
		scalarsField("bounds", func(n *SaveLayer) *[]float32 { return &n.Bounds }),
		refField("paint", func(n *SaveLayer) *operand.Ref { return &n.Paint }))
	add("clip", nil, func() any { return &Clip{} }, "a clip",
		refField("rect", func(n *Clip) *operand.Ref { return &n.Rect }),
		refField("path", func(n *Clip) *operand.Ref { return &n.Path }))

	// data
	add("int", nil, func() any { return &IntData{} }, "an integer",
		intField("value", func(n *IntData) *int32 { return &n.Value }))
	add("float", nil, func() any { return &FloatData{} }, "a scalar",
		scalarField("value", func(n *FloatData) *float32 { return &n.Value }))
	add("boolean", nil, func() any { return &BoolData{} }, "a boolean",
		boolField("value", func(n *BoolData) *bool { return &n.Value }))
	add("string", nil, func() any { return &StringData{} }, "a string",
		stringField("value", func(n *StringData) *string { return &n.Value }),
		property("length", operand.Int, func(n *StringData) operand.Value {
			return operand.IntValue(int32(len([]rune(n.Value))))
		}, nil),
		function("slice", operand.String, 2, func(n *StringData, args []operand.Value) (operand.Value, error) {
			return sliceString(n, args)
		}))
	add("array", nil, func() any { return &ArrayData{} }, "an array",
		valueField("values", operand.Array, func(n *ArrayData) *operand.Value { return &n.Values }),
		property("length", operand.Int, func(n *ArrayData) operand.Value {
			return operand.IntValue(int32(len(n.Values.Elems)))
		}, nil))
	add("random", nil, func() any { return &RandomData{} }, "a random number generator",
		scalarField("min", func(n *RandomData) *float32 { return &n.Min }),
		scalarField("max", func(n *RandomData) *float32 { return &n.Max }),
		intField("seed", func(n *RandomData) *int32 { return &n.Seed }),
		scalarField("blend", func(n *RandomData) *float32 { return &n.Blend }),
		property("random", operand.Scalar, func(n *RandomData) operand.Value {
			return operand.ScalarValue(n.Random())
		}, nil))
	add("data", nil, func() any { return &PostData{} }, "a value sent with a post",
		stringField("name", func(n *PostData) *string { return &n.Key }),
		stringField("value", func(n *PostData) *string { return &n.Value }))

	// animation
	animate := add("animate", nil, func() any { return &Animate{} }, "animates a field", animateMembers()...)
	add("set", animate, func() any { return &Set{} }, "sets a field")
	add("apply", nil, func() any { return &Apply{} }, "enables animators on a scope", applyMembers()...)

	// events and statements
	add("event", nil, func() any { return &EventHandler{} }, "an event handler",
		enumField("kind", eventKindNames, func(n *EventHandler) *events.Types { return &n.Kind }),
		intField("code", func(n *EventHandler) *int32 { return &n.Code }),
		stringField("key", func(n *EventHandler) *string { return &n.Key }),
		stringField("keys", func(n *EventHandler) *string { return &n.Keys }),
		refField("target", func(n *EventHandler) *operand.Ref { return &n.Target }),
		boolField("disable", func(n *EventHandler) *bool { return &n.Disable }),
		stringField("type", func(n *EventHandler) *string { return &n.Type }),
		property("x", operand.Scalar, func(n *EventHandler) operand.Value { return operand.ScalarValue(n.X) }, nil),
		property("y", operand.Scalar, func(n *EventHandler) operand.Value { return operand.ScalarValue(n.Y) }, nil))
	addBase := add("add", nil, func() any { return &Add{} }, "adds a drawable to the display list",
		refField("use", func(n addNode) *operand.Ref { return &n.AsAdd().Use }),
		refField("where", func(n addNode) *operand.Ref { return &n.AsAdd().Where }),
		intField("offset", func(n addNode) *int32 { return &n.AsAdd().Offset }),
		enumField("mode", addModeNames, func(n addNode) *AddModes { return &n.AsAdd().Mode }))
	add("move", addBase, func() any { return &Move{} }, "moves a drawable in the display list")
	add("replace", addBase, func() any { return &Replace{} }, "replaces a drawable in the display list")
	add("remove", addBase, func() any { return &Remove{} }, "removes a drawable from the display list",
		boolField("delete", func(n *Remove) *bool { return &n.Delete }))
	add("post", nil, func() any { return &Post{} }, "posts a user event",
		stringField("sink", func(n *Post) *string { return &n.Sink }),
		refField("target", func(n *Post) *operand.Ref { return &n.Target }),
		stringField("type", func(n *Post) *string { return &n.Type }),
		msecField("delay", func(n *Post) *int32 { return &n.Delay }),
		enumField("mode", postModeNames, func(n *Post) *PostModes { return &n.Mode }))
	return r
}

func scalarArg(v operand.Value) (float32, error) {
	s, err := operand.Convert(v, operand.Scalar)
	return s.Scalar, err
}

func rectMembers() []*types.Member {
	rect := func(n rectNode) *Rect { return n.AsRect() }
	return []*types.Member{
		scalarField("left", func(n rectNode) *float32 { return &rect(n).Left }),
		scalarField("top", func(n rectNode) *float32 { return &rect(n).Top }),
		scalarField("right", func(n rectNode) *float32 { return &rect(n).Right }),
		scalarField("bottom", func(n rectNode) *float32 { return &rect(n).Bottom }),
		property("width", operand.Scalar, func(n rectNode) operand.Value {
			return operand.ScalarValue(rect(n).Right - rect(n).Left)
		}, func(n rectNode, v operand.Value) error {
			w, err := scalarArg(v)
			rect(n).Right = rect(n).Left + w
			return err
		}),
		property("height", operand.Scalar, func(n rectNode) operand.Value {
			return operand.ScalarValue(rect(n).Bottom - rect(n).Top)
		}, func(n rectNode, v operand.Value) error {
			h, err := scalarArg(v)
			rect(n).Bottom = rect(n).Top + h
			return err
		}),
		property("centerX", operand.Scalar, func(n rectNode) operand.Value {
			return operand.ScalarValue((rect(n).Left + rect(n).Right) / 2)
		}, func(n rectNode, v operand.Value) error {
			c, err := scalarArg(v)
			if err != nil {
				return err
			}
			d := c - (rect(n).Left+rect(n).Right)/2
			rect(n).Left += d
			rect(n).Right += d
			return nil
		}),
		property("centerY", operand.Scalar, func(n rectNode) operand.Value {
			return operand.ScalarValue((rect(n).Top + rect(n).Bottom) / 2)
		}, func(n rectNode, v operand.Value) error {
			c, err := scalarArg(v)
			if err != nil {
				return err
			}
			d := c - (rect(n).Top+rect(n).Bottom)/2
			rect(n).Top += d
			rect(n).Bottom += d
			return nil
		}),
	}
}

func paintMembers() []*types.Member {
	return []*types.Member{
		colorField("color", func(n *Paint) *color.NRGBA { return &n.Color }),
		enumField("style", styleNames, func(n *Paint) *canvas.Styles { return &n.Style }),
		property("stroke", operand.Boolean, func(n *Paint) operand.Value {
			return operand.BoolValue(n.Style != canvas.Fill)
		}, func(n *Paint, v operand.Value) error {
			b, err := operand.Truth(v)
			if b {
				n.Style = canvas.Stroke
			} else {
				n.Style = canvas.Fill
			}
			return err
		}),
		scalarField("strokeWidth", func(n *Paint) *float32 { return &n.StrokeWidth }),
		scalarField("strokeMiter", func(n *Paint) *float32 { return &n.StrokeMiter }),
		enumField("strokeCap", capNames, func(n *Paint) *canvas.Caps { return &n.StrokeCap }),
		enumField("strokeJoin", joinNames, func(n *Paint) *canvas.Joins { return &n.StrokeJoin }),
		boolField("antiAlias", func(n *Paint) *bool { return &n.AntiAlias }),
		scalarField("textSize", func(n *Paint) *float32 { return &n.TextSize }),
		enumField("textAlign", alignNames, func(n *Paint) *canvas.Aligns { return &n.TextAlign }),
		refField("shader", func(n *Paint) *operand.Ref { return &n.Shader }),
		refField("maskFilter", func(n *Paint) *operand.Ref { return &n.MaskFilter }),
		refField("pathEffect", func(n *Paint) *operand.Ref { return &n.PathEffect }),
	}
}

func colorMembers() []*types.Member {
	channel := func(name string, get func(c color.NRGBA) uint8, set func(c *color.NRGBA, v uint8)) *types.Member {
		return property(name, operand.Int, func(n *Color) operand.Value {
			return operand.IntValue(int32(get(n.Color)))
		}, func(n *Color, v operand.Value) error {
			i, err := operand.Convert(v, operand.Int)
			if err != nil {
				return err
			}
			set(&n.Color, uint8(max(0, min(i.Int, 255))))
			return nil
		})
	}
	hsv := func(name string, get func(h, s, v float32) float32, set func(h, s, v *float32, x float32)) *types.Member {
		return property(name, operand.Scalar, func(n *Color) operand.Value {
			return operand.ScalarValue(get(n.hsv()))
		}, func(n *Color, v operand.Value) error {
			x, err := scalarArg(v)
			if err != nil {
				return err
			}
			h, s, val := n.hsv()
			set(&h, &s, &val, x)
			n.Color = colors.FromHSV(h, s, val, n.Color.A)
			return nil
		})
	}
	return []*types.Member{
		colorField("color", func(n *Color) *color.NRGBA { return &n.Color }),
		property("alpha", operand.Scalar, func(n *Color) operand.Value {
			return operand.ScalarValue(float32(n.Color.A) / 255)
		}, func(n *Color, v operand.Value) error {
			a, err := scalarArg(v)
			if err != nil {
				return err
			}
			n.Color.A = uint8(math32.Round(math32.Clamp(a, 0, 1) * 255))
			return nil
		}),
		channel("red", func(c color.NRGBA) uint8 { return c.R }, func(c *color.NRGBA, v uint8) { c.R = v }),
		channel("green", func(c color.NRGBA) uint8 { return c.G }, func(c *color.NRGBA, v uint8) { c.G = v }),
		channel("blue", func(c color.NRGBA) uint8 { return c.B }, func(c *color.NRGBA, v uint8) { c.B = v }),
		hsv("hue", func(h, s, v float32) float32 { return h }, func(h, s, v *float32, x float32) { *h = x }),
		hsv("saturation", func(h, s, v float32) float32 { return s }, func(h, s, v *float32, x float32) { *s = x }),
		hsv("value", func(h, s, v float32) float32 { return v }, func(h, s, v *float32, x float32) { *v = x }),
	}
}

func matrixMembers() []*types.Member {
	return []*types.Member{
		scalarsField("matrix", func(n *Matrix) *[]float32 { return &n.Values }),
		pointField("translate", func(n *Matrix) *math32.Vector2 { return &n.Translate }),
		scalarField("translateX", func(n *Matrix) *float32 { return &n.Translate.X }),
		scalarField("translateY", func(n *Matrix) *float32 { return &n.Translate.Y }),
		scalarField("rotate", func(n *Matrix) *float32 { return &n.Rotate }),
		property("scale", operand.Scalar, func(n *Matrix) operand.Value {
			return operand.ScalarValue(n.ScaleX)
		}, func(n *Matrix, v operand.Value) error {
			s, err := scalarArg(v)
			if err != nil {
				return err
			}
			n.ScaleX, n.ScaleY = s, s
			return nil
		}),
		scalarField("scaleX", func(n *Matrix) *float32 { return &n.ScaleX }),
		scalarField("scaleY", func(n *Matrix) *float32 { return &n.ScaleY }),
		scalarField("skewX", func(n *Matrix) *float32 { return &n.SkewX }),
		scalarField("skewY", func(n *Matrix) *float32 { return &n.SkewY }),
	}
}

func animateMembers() []*types.Member {
	an := func(n animatorNode) *Animate { return n.AsAnimate() }
	return []*types.Member{
		refField("target", func(n animatorNode) *operand.Ref { return &an(n).Target }),
		stringField("field", func(n animatorNode) *string { return &an(n).Field }),
		stringField("from", func(n animatorNode) *string { return &an(n).From }),
		stringField("to", func(n animatorNode) *string { return &an(n).To }),
		stringField("values", func(n animatorNode) *string { return &an(n).Values }),
		msecField("begin", func(n animatorNode) *int32 { return &an(n).Begin }),
		msecField("dur", func(n animatorNode) *int32 { return &an(n).Dur }),
		scalarField("repeat", func(n animatorNode) *float32 { return &an(n).Repeat }),
		boolField("mirror", func(n animatorNode) *bool { return &an(n).Mirror }),
		boolField("reset", func(n animatorNode) *bool { return &an(n).Reset }),
		scalarsField("blend", func(n animatorNode) *[]float32 { return &an(n).Blend }),
		boolField("dynamic", func(n animatorNode) *bool { return &an(n).Dynamic }),
	}
}

func applyMembers() []*types.Member {
	return []*types.Member{
		refField("scope", func(n *Apply) *operand.Ref { return &n.Scope }),
		refField("animator", func(n *Apply) *operand.Ref { return &n.Animator }),
		enumField("mode", applyModeNames, func(n *Apply) *ApplyModes { return &n.Mode }),
		enumField("transition", transitionNames, func(n *Apply) *Transitions { return &n.Transition }),
		intField("steps", func(n *Apply) *int32 { return &n.Steps }),
		boolField("restore", func(n *Apply) *bool { return &n.Restore }),
		boolField("enabled", func(n *Apply) *bool { return &n.Enabled }),
		msecField("interval", func(n *Apply) *int32 { return &n.Interval }),
		stringField("dynamicScope", func(n *Apply) *string { return &n.DynamicScope }),
	}
}

// sliceString implements the slice function of string data.
func sliceString(n *StringData, args []operand.Value) (operand.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return operand.Value{}, fmt.Errorf("anim: slice takes 1 or 2 arguments, not %d", len(args))
	}
	start, err := operand.Convert(args[0], operand.Int)
	if err != nil {
		return operand.Value{}, err
	}
	end := int32(len([]rune(n.Value)))
	if len(args) == 2 {
		e, err := operand.Convert(args[1], operand.Int)
		if err != nil {
			return operand.Value{}, err
		}
		end = e.Int
	}
	return operand.StringValue(n.Slice(int(start.Int), int(end))), nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/events"
	"cogentcore.org/animator/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func left(t *testing.T, m *Maker, id string) float32 {
	t.Helper()
	r, ok := m.Lookup(id).(rectNode)
	require.True(t, ok, id)
	return r.AsRect().Left
}

func TestAnimateEndpoints(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply id="ap" scope="r"><animate field="left" from="0" to="100" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(0), left(t, m, "r"))
	assert.Equal(t, int32(0), m.Interval())

	m.Advance(500)
	assert.InDelta(t, 50, left(t, m, "r"), 0.01)
	wake, ok := m.NextWake()
	assert.True(t, ok)
	assert.Equal(t, int32(500), wake)

	m.Advance(1000)
	assert.Equal(t, float32(100), left(t, m, "r"))
	assert.True(t, m.Lookup("ap").(*Apply).done)
	assert.Equal(t, NoInterval, m.Interval())

	m.Advance(2000)
	assert.Equal(t, float32(100), left(t, m, "r"))
}

func TestAnimateBegin(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" left="5" right="10" bottom="10"/>
<apply scope="r"><animate field="left" from="10" to="20" begin="1" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(5), left(t, m, "r"))
	wake, ok := m.NextWake()
	assert.True(t, ok)
	assert.Equal(t, int32(1000), wake)

	m.Advance(1000)
	assert.Equal(t, float32(10), left(t, m, "r"))
	m.Advance(2500)
	assert.Equal(t, float32(20), left(t, m, "r"))
}

func TestAnimateKeyframes(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply scope="r"><animate field="left" values="0;100;50" dur="2"/></apply>
</screenplay>`)
	m.Advance(0)
	m.Advance(1000)
	assert.Equal(t, float32(100), left(t, m, "r"))
	m.Advance(1500)
	assert.InDelta(t, 75, left(t, m, "r"), 0.01)
	m.Advance(2000)
	assert.Equal(t, float32(50), left(t, m, "r"))
}

func TestAnimateColor(t *testing.T) {
	m := load(t, `<screenplay>
<color id="c" color="#000000"/>
<apply scope="c"><animate field="color" from="#000000" to="#ff0000" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	m.Advance(1000)
	v, err := m.Attribute("c", "red")
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(255), v)
}

func TestApplyMerge(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply id="a1" scope="r"><animate field="left" from="0" to="100" dur="1"/></apply>
<apply id="a2" scope="r"><animate field="left" from="200" to="300" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Empty(t, m.Lookup("a1").(*Apply).actives)
	assert.Len(t, m.Lookup("a2").(*Apply).actives, 1)
	m.Advance(500)
	assert.InDelta(t, 250, left(t, m, "r"), 0.01)
}

func TestApplyRestore(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" left="5" right="10" bottom="10"/>
<apply id="ap" scope="r" restore="true"><animate field="left" from="0" to="100" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	m.Advance(500)
	assert.InDelta(t, 50, left(t, m, "r"), 0.01)
	ap := m.Lookup("ap").(*Apply)
	assert.True(t, ap.IsEnabled())

	require.NoError(t, m.SetAttribute("ap", "enabled", operand.BoolValue(false)))
	assert.False(t, ap.IsEnabled())
	assert.Equal(t, float32(5), left(t, m, "r"))
	m.Advance(700)
	assert.Equal(t, float32(5), left(t, m, "r"))

	require.NoError(t, m.SetAttribute("ap", "enabled", operand.BoolValue(true)))
	assert.True(t, ap.IsEnabled())
	m.Advance(1200)
	assert.InDelta(t, 50, left(t, m, "r"), 0.01)
}

func TestApplyOnce(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply id="ap" scope="r" mode="once"><animate field="left" from="0" to="10" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	m.Advance(1000)
	ap := m.Lookup("ap").(*Apply)
	assert.True(t, ap.spent)
	assert.False(t, ap.Enabled)
	assert.False(t, ap.IsEnabled())

	require.NoError(t, m.SetAttribute("ap", "enabled", operand.BoolValue(true)))
	assert.False(t, ap.IsEnabled())
}

func TestApplyDynamic(t *testing.T) {
	m := load(t, `<screenplay>
<float id="x" value="10"/>
<rect id="r" right="10" bottom="10"/>
<apply scope="r"><set field="left" to="x.value" dynamic="true"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(10), left(t, m, "r"))

	require.NoError(t, m.SetAttribute("x", "value", operand.ScalarValue(20)))
	m.Advance(100)
	assert.Equal(t, float32(20), left(t, m, "r"))
}

func TestApplyStatic(t *testing.T) {
	m := load(t, `<screenplay>
<float id="x" value="10"/>
<rect id="r" right="10" bottom="10"/>
<apply scope="r"><set field="left" to="x.value"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(10), left(t, m, "r"))

	require.NoError(t, m.SetAttribute("x", "value", operand.ScalarValue(20)))
	m.Advance(100)
	assert.Equal(t, float32(10), left(t, m, "r"))
}

func TestApplyEndEvent(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<rect id="s" right="10" bottom="10"/>
<apply id="ap" scope="r"><animate field="left" from="0" to="10" dur="1"/></apply>
<event kind="onEnd" target="ap">
  <apply scope="s" mode="immediate"><set field="left" to="33"/></apply>
</event>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(0), left(t, m, "s"))
	m.Advance(1000)
	assert.Equal(t, float32(33), left(t, m, "s"))
}

func TestApplyDrawsOwnedScope(t *testing.T) {
	m := load(t, `<screenplay>
<apply><oval id="o" right="10" bottom="10"/><set field="left" to="2"/></apply>
</screenplay>`)
	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)
	require.Len(t, rec.Draws(), 1)
	assert.Equal(t, "DrawOval", rec.Draws()[0].Name)
	assert.Equal(t, float32(2), left(t, m, "o"))

	n := m.hit(5, 5)
	require.NotNil(t, n)
	assert.Equal(t, "o", n.AsNode().ID())
	assert.False(t, m.Dispatch(&events.Event{Type: events.OnLoad}))
}

func TestApplyCreate(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" left="5" right="10" bottom="10"/>
<apply id="ap" scope="r" mode="create" steps="2"><animate field="left" from="0" to="100" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	ap := m.Lookup("ap").(*Apply)
	require.Len(t, ap.instances, 3)
	var lefts []float32
	for _, in := range ap.instances {
		r, ok := in.(rectNode)
		require.True(t, ok)
		lefts = append(lefts, r.AsRect().Left)
	}
	assert.Equal(t, []float32{0, 50, 100}, lefts)

	tmpl := m.Lookup("r")
	assert.Equal(t, float32(5), left(t, m, "r"))
	for _, in := range ap.instances {
		assert.NotSame(t, tmpl, in)
		assert.NotEqual(t, tmpl.AsNode().Ref, in.AsNode().Ref)
	}
	ap.instances[0].(rectNode).AsRect().Left = 77
	assert.Equal(t, float32(5), left(t, m, "r"))
	assert.Equal(t, float32(50), ap.instances[1].(rectNode).AsRect().Left)
}

func TestApplyReverse(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply scope="r" transition="reverse"><animate field="left" from="0" to="100" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	assert.Equal(t, float32(100), left(t, m, "r"))
	m.Advance(250)
	assert.InDelta(t, 75, left(t, m, "r"), 0.01)
	m.Advance(1000)
	assert.Equal(t, float32(0), left(t, m, "r"))
}

func TestApplyMirrorRepeat(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply scope="r"><animate field="left" from="0" to="100" dur="1" mirror="true" repeat="2"/></apply>
</screenplay>`)
	times := []int32{0, 500, 1000, 1500, 2000, 2500, 4000}
	want := []float32{0, 50, 100, 50, 0, 50, 0}
	for i, tm := range times {
		m.Advance(tm)
		assert.InDelta(t, want[i], left(t, m, "r"), 0.01, "at %d", tm)
	}
}

func TestAnimateFromAtBegin(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" left="5" right="10" bottom="10"/>
<apply id="ap" scope="r"><animate field="left" to="100" begin="1" dur="1"/></apply>
</screenplay>`)
	m.Advance(0)
	ap := m.Lookup("ap").(*Apply)
	require.Len(t, ap.actives, 1)
	assert.Equal(t, started, ap.actives[0].state)
	assert.Nil(t, ap.actives[0].track)

	require.NoError(t, m.SetAttribute("r", "left", operand.ScalarValue(20)))
	m.Advance(1000)
	assert.Equal(t, sampling, ap.actives[0].state)
	assert.Equal(t, float32(20), left(t, m, "r"))
	m.Advance(1500)
	assert.InDelta(t, 60, left(t, m, "r"), 0.01)
	m.Advance(2000)
	assert.Equal(t, finished, ap.actives[0].state)
}

package prefab

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func TestNewNode2D(t *testing.T) {
	w := engine.NewWorld()
	root, err := NewNode2D(w, Node2D{Position: vmath.V2(1, 2)})
	require.NoError(t, err)

	child, err := NewNode2D(w, Node2D{Parent: root, ProcessPriority: 5, Rotation: 0.5, TopLevel: true})
	require.NoError(t, err)

	assert.Equal(t, root, w.Parent(child))
	assert.Equal(t, 5, w.Components.Node.MustGet(child).ProcessPriority)
	tr := w.Components.Transform.MustGet(child)
	assert.Equal(t, 0.5, tr.Rotation)
	assert.True(t, tr.TopLevel)
	assert.Equal(t, vmath.V2(1, 2), w.Components.Transform.MustGet(root).Position)
}

func TestNewNode2DUnknownParent(t *testing.T) {
	w := engine.NewWorld()
	e, err := NewNode2D(w, Node2D{Parent: core.Entity(99)})
	assert.ErrorIs(t, err, engine.ErrUnknownEntity)
	assert.Equal(t, core.None, e)
	assert.Equal(t, 0, w.EntityCount())
}

func TestNewSprite(t *testing.T) {
	w := engine.NewWorld()
	rows := []string{"ab"}
	e, err := NewSprite(w, Sprite{
		Rows:     rows,
		Centered: true,
		ZIndex:   3,
		Color:    tcell.ColorRed,
		Hitbox:   &component.Hitbox{Size: vmath.V2(2, 1)},
	})
	require.NoError(t, err)

	tex := w.Components.Texture.MustGet(e)
	assert.True(t, tex.Visible)
	assert.True(t, tex.Centered)
	assert.Equal(t, 3, tex.ZIndex)
	assert.Equal(t, tcell.ColorRed, w.Components.Color.MustGet(e).Color)
	assert.Equal(t, vmath.V2(2, 1), w.Components.Collider.MustGet(e).Hitbox.Size)

	tex.Rows[0] = "zz"
	assert.Equal(t, "ab", rows[0])
}

func TestNewSpriteDefaults(t *testing.T) {
	w := engine.NewWorld()
	e, err := NewSprite(w, Sprite{Hidden: true})
	require.NoError(t, err)

	assert.False(t, w.Components.Texture.MustGet(e).Visible)
	assert.False(t, w.Components.Color.Has(e))
	assert.False(t, w.Components.Collider.Has(e))
}

func TestNewAnimatedSprite(t *testing.T) {
	w := engine.NewWorld()
	set := component.AnimationSet{"blink": {Frames: [][]string{{"o"}, {"-"}}}}

	e, err := NewAnimatedSprite(w, AnimatedSprite{Animations: set, Repeat: true, Play: "blink"})
	require.NoError(t, err)

	a := w.Components.Animated.MustGet(e)
	assert.Equal(t, component.AnimationPlaying, a.State)
	assert.Equal(t, "blink", a.CurrentName)
	assert.True(t, a.Repeat)

	idle, err := NewAnimatedSprite(w, AnimatedSprite{Animations: set, Play: "missing"})
	require.NoError(t, err)
	assert.Equal(t, component.AnimationIdle, w.Components.Animated.MustGet(idle).State)
}

func TestNewCamera(t *testing.T) {
	w := engine.NewWorld()
	fixed, err := NewCamera(w, Camera{})
	require.NoError(t, err)
	assert.Equal(t, component.CameraFixed, w.Components.Camera.MustGet(fixed).Mode)

	centered, err := NewCamera(w, Camera{Mode: component.CameraCentered | component.CameraIncludeSize})
	require.NoError(t, err)
	assert.True(t, w.Components.Camera.MustGet(centered).Mode.Has(component.CameraIncludeSize))
}

func TestLabelText(t *testing.T) {
	w := engine.NewWorld()
	l, err := NewLabel(w, LabelOptions{Text: "a\tb\nc"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a    b", "c"}, w.Components.Texture.MustGet(l.Entity).Rows)
	assert.Equal(t, "a\tb\nc", l.Text())

	l.SetText("x")
	assert.Equal(t, []string{"x"}, w.Components.Texture.MustGet(l.Entity).Rows)
}

func TestLabelCustomTabs(t *testing.T) {
	w := engine.NewWorld()
	l, err := NewLabel(w, LabelOptions{
		Text:    "1|2;3",
		Newline: ";",
		TabSize: 2,
		TabChar: '|',
		TabFill: '.',
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1..2", "3"}, w.Components.Texture.MustGet(l.Entity).Rows)
	assert.Equal(t, "1|2;3", l.Text())
}

func TestPanel(t *testing.T) {
	w := engine.NewWorld()
	p, err := NewPanel(w, PanelOptions{Width: 4, Height: 3})
	require.NoError(t, err)

	rows := func() []string { return w.Components.Texture.MustGet(p.Entity).Rows }
	assert.Equal(t, []string{"+--+", "|  |", "+--+"}, rows())

	require.NoError(t, p.SetWidth(2))
	assert.Equal(t, []string{"++", "||", "++"}, rows())

	require.NoError(t, p.SetHeight(2))
	assert.Equal(t, []string{"++", "++"}, rows())

	p.SetStyle(DoublePanelStyle)
	require.NoError(t, p.SetWidth(3))
	assert.Equal(t, []string{"╔═╗", "╚═╝"}, rows())
}

func TestPanelRejectsSmallSizes(t *testing.T) {
	w := engine.NewWorld()

	_, err := NewPanel(w, PanelOptions{Width: 1, Height: 5})
	assert.ErrorIs(t, err, ErrPanelTooSmall)
	assert.Equal(t, 0, w.EntityCount())

	p, err := NewPanel(w, PanelOptions{})
	require.NoError(t, err)
	assert.Equal(t, 12, p.Width())
	assert.Equal(t, 8, p.Height())

	assert.ErrorIs(t, p.SetWidth(1), ErrPanelTooSmall)
	assert.ErrorIs(t, p.SetHeight(-3), ErrPanelTooSmall)
	assert.Equal(t, 12, p.Width())
	assert.Len(t, w.Components.Texture.MustGet(p.Entity).Rows, 8)
}

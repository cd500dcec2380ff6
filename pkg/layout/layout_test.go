package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type textViewer struct {
	text  string
	width int
}

func (v *textViewer) View() string { return v.text }
func (v *textViewer) SetSize(width, height int) { v.width = width }

func TestRoot_ContainersKeepOrder(t *testing.T) {
	root := NewRoot("wrap", "block")
	a := root.NewContainer("node")
	b := root.NewContainer("node")
	c := root.NewContainer("node")

	assert.Equal(t, []*Container{a, b, c}, root.Children())
	assert.Equal(t, []string{"wrap", "block"}, root.Classes())

	c.Remove()
	c.Remove()
	assert.True(t, c.Removed())
	assert.Equal(t, []*Container{a, b}, root.Children())
}

func TestRoot_Style(t *testing.T) {
	root := NewRoot()
	_, ok := root.Style("--count")
	assert.False(t, ok)
	assert.Equal(t, 9, root.StyleInt("--count", 9))

	root.SetStyle("--count", "3")
	assert.Equal(t, 3, root.StyleInt("--count", 9))

	root.SetStyle("--count", "three")
	assert.Equal(t, 9, root.StyleInt("--count", 9))
}

func TestRoot_ViewSplitsWidth(t *testing.T) {
	root := NewRoot("wrap")
	root.SetStyle("--count", "2")
	left := &textViewer{text: "left"}
	right := &textViewer{text: "right"}
	root.NewContainer("node").Mount(left)
	root.NewContainer("node").Mount(right)

	view := root.View(40, "--count")

	assert.Equal(t, 20, left.width)
	assert.Equal(t, 20, right.width)
	first := strings.Split(view, "\n")[0]
	assert.Contains(t, first, "left")
	assert.Contains(t, first, "right")
	assert.Less(t, strings.Index(first, "left"), strings.Index(first, "right"))
}

func TestRoot_ViewUsesStylesheet(t *testing.T) {
	root := NewRoot("wrap")
	root.UseStylesheet(Stylesheet{
		"node": lipgloss.NewStyle().Padding(0, 1),
	})
	v := &textViewer{text: "x"}
	c := root.NewContainer("node")
	c.Mount(v)
	c.SetFocused(true)

	root.View(30, "--count")
	assert.Equal(t, 28, v.width)
}

func TestRoot_EmptyView(t *testing.T) {
	root := NewRoot()
	assert.Equal(t, "", root.View(80, "--count"))
	root.Detach()
	assert.True(t, root.Detached())
}

// Package layout provides owned layout handles for block tools: a Root per
// block and Containers appended to it. Handles are created and destroyed
// explicitly by their owner; nothing is registered globally.
package layout

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Viewer is anything that can be drawn inside a Container.
type Viewer interface {
	View() string
	SetSize(width, height int)
}

// Root is the single top level handle of a block.
type Root struct {
	classes  []string
	style    map[string]string
	children []*Container
	sheet    Stylesheet
	detached bool
}

// NewRoot creates a root carrying the given class names.
func NewRoot(classes ...string) *Root {
	return &Root{
		classes: append([]string(nil), classes...),
		style:   make(map[string]string),
	}
}

// Classes returns the class names attached to the root.
func (r *Root) Classes() []string {
	return append([]string(nil), r.classes...)
}

// SetStyle sets a style parameter such as "--multicolumn-column-count".
func (r *Root) SetStyle(key, value string) {
	r.style[key] = value
}

// Style returns a style parameter and whether it is set.
func (r *Root) Style(key string) (string, bool) {
	v, ok := r.style[key]
	return v, ok
}

// StyleInt returns a style parameter parsed as an integer, or def.
func (r *Root) StyleInt(key string, def int) int {
	v, ok := r.style[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// UseStylesheet sets the stylesheet consulted by View.
func (r *Root) UseStylesheet(s Stylesheet) {
	r.sheet = s
}

// NewContainer creates a container and appends it as the last child.
func (r *Root) NewContainer(class string) *Container {
	c := &Container{class: class, parent: r}
	r.children = append(r.children, c)
	return c
}

// Children returns the attached containers in order.
func (r *Root) Children() []*Container {
	return append([]*Container(nil), r.children...)
}

// Detach marks the root as no longer displayed by its host.
func (r *Root) Detach() {
	r.detached = true
}

// Detached reports whether Detach was called.
func (r *Root) Detached() bool {
	return r.detached
}

func (r *Root) remove(c *Container) bool {
	for i, child := range r.children {
		if child == c {
			r.children = append(r.children[:i], r.children[i+1:]...)
			return true
		}
	}
	return false
}

// View renders the children side by side inside width cells. The column
// count style parameter decides the share each child receives.
func (r *Root) View(width int, columnKey string) string {
	if len(r.children) == 0 {
		return ""
	}
	n := r.StyleInt(columnKey, len(r.children))
	if n < 1 {
		n = 1
	}

	wrapper := r.sheet.lookup(r.classes...)
	inner := width - wrapper.GetHorizontalFrameSize()
	if inner < n {
		inner = n
	}

	views := make([]string, 0, len(r.children))
	for i, c := range r.children {
		if i >= n {
			break
		}
		w := inner / n
		if i == n-1 {
			w = inner - w*(n-1)
		}
		views = append(views, c.render(w))
	}

	return wrapper.Render(lipgloss.JoinHorizontal(lipgloss.Top, views...))
}

// Container is a child handle owned by exactly one region.
type Container struct {
	class   string
	parent  *Root
	viewer  Viewer
	focused bool
	removed bool
}

// Class returns the container's class name.
func (c *Container) Class() string {
	return c.class
}

// Mount attaches the viewer drawn inside the container.
func (c *Container) Mount(v Viewer) {
	c.viewer = v
}

// SetFocused toggles the focused class modifier used by View.
func (c *Container) SetFocused(focused bool) {
	c.focused = focused
}

// Remove detaches the container from its root. Calling it again is a no-op.
func (c *Container) Remove() {
	if c.removed {
		return
	}
	c.removed = true
	if c.parent != nil {
		c.parent.remove(c)
	}
	c.viewer = nil
}

// Removed reports whether Remove was called.
func (c *Container) Removed() bool {
	return c.removed
}

func (c *Container) render(width int) string {
	style := c.parent.sheet.lookup(c.class)
	if c.focused {
		style = c.parent.sheet.lookup(c.class, c.class+FocusedSuffix)
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	body := ""
	if c.viewer != nil {
		c.viewer.SetSize(inner, 0)
		body = c.viewer.View()
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}

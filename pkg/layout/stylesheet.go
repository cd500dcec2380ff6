package layout

import "github.com/charmbracelet/lipgloss"

// FocusedSuffix is appended to a container class to look up its focused style.
const FocusedSuffix = "--focused"

// Stylesheet maps class names to lipgloss styles.
type Stylesheet map[string]lipgloss.Style

// lookup merges the styles of every known class, later classes winning.
func (s Stylesheet) lookup(classes ...string) lipgloss.Style {
	out := lipgloss.NewStyle()
	for i := len(classes) - 1; i >= 0; i-- {
		if st, ok := s[classes[i]]; ok {
			out = out.Inherit(st)
		}
	}

	// Inherit skips margins and padding.
	for _, class := range classes {
		st, ok := s[class]
		if !ok {
			continue
		}
		if top, right, bottom, left := st.GetPadding(); top+right+bottom+left > 0 {
			out = out.Padding(top, right, bottom, left)
		}
		if top, right, bottom, left := st.GetMargin(); top+right+bottom+left > 0 {
			out = out.Margin(top, right, bottom, left)
		}
	}
	return out
}

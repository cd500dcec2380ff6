package columns

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pluqqy/pluqqy-columns/pkg/layout"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// ErrRegionGap is returned when the live region indices stop being [0, n).
var ErrRegionGap = errors.New("columns: live regions are not contiguous")

// Region pairs a container with the nested editor rendered inside it.
type Region struct {
	Index     int
	Container *layout.Container
	Editor    Editor
}

// regionSet owns every live region of a block, keyed by column index.
type regionSet struct {
	byIndex  map[int]*Region
	factory  EditorFactory
	template EditorConfig
}

func newRegionSet(factory EditorFactory, template EditorConfig) *regionSet {
	return &regionSet{
		byIndex:  make(map[int]*Region),
		factory:  factory,
		template: template,
	}
}

// ensure creates the region at index seeded with blocks, or re-renders the
// existing editor in place. It reports whether a region was created.
func (s *regionSet) ensure(ctx context.Context, root *layout.Root, index int, blocks []models.ContentBlock) (bool, error) {
	if r, ok := s.byIndex[index]; ok {
		return false, r.Editor.Render(ctx, blocks)
	}

	container := root.NewContainer(ClassNode)
	cfg := s.template
	cfg.Holder = container
	cfg.Data = blocks

	editor, err := s.factory(cfg)
	if err != nil {
		container.Remove()
		return false, err
	}
	if editor == nil {
		container.Remove()
		return false, fmt.Errorf("editor factory returned nil editor")
	}

	s.byIndex[index] = &Region{
		Index:     index,
		Container: container,
		Editor:    editor,
	}
	return true, nil
}

// teardown removes the region at index. Unknown indices are ignored.
func (s *regionSet) teardown(index int) bool {
	r, ok := s.byIndex[index]
	if !ok {
		return false
	}
	delete(s.byIndex, index)
	r.Container.Remove()
	r.Editor.Destroy()
	return true
}

func (s *regionSet) count() int {
	return len(s.byIndex)
}

func (s *regionSet) get(index int) (*Region, bool) {
	r, ok := s.byIndex[index]
	return r, ok
}

// indices returns the live indices in ascending order.
func (s *regionSet) indices() []int {
	out := make([]int, 0, len(s.byIndex))
	for i := range s.byIndex {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s *regionSet) checkContiguous() error {
	for pos, index := range s.indices() {
		if pos != index {
			return fmt.Errorf("%w: found index %d at position %d", ErrRegionGap, index, pos)
		}
	}
	return nil
}

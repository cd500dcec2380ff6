package columns

import (
	"context"
	"fmt"
)

// SettingsAction is one entry of the block's settings menu.
type SettingsAction struct {
	Icon            string
	Label           string
	IsActive        func() bool
	OnActivate      func(ctx context.Context) error
	CloseOnActivate bool
}

var columnIcons = map[int]string{
	2: "▌▐",
	3: "▌┃▐",
}

// RenderSettings returns one action per allowed column count.
func (b *Block) RenderSettings() []SettingsAction {
	actions := make([]SettingsAction, 0, len(AllowedColumns))
	for _, n := range AllowedColumns {
		target := n
		actions = append(actions, SettingsAction{
			Icon:  columnIcons[target],
			Label: fmt.Sprintf("%d columns", target),
			IsActive: func() bool {
				return b.data.Columns == target
			},
			OnActivate: func(ctx context.Context) error {
				return b.SetColumns(ctx, target)
			},
			CloseOnActivate: true,
		})
	}
	return actions
}

// SetColumns drains the live editors, then changes the column count and
// reconciles. The steps never interleave. A column whose editor could not
// be drained keeps its previous model content, and its editor is not
// re-rendered, so the text on screen survives the switch.
func (b *Block) SetColumns(ctx context.Context, count int) error {
	b.keepLive = b.drainAll(ctx, true)
	defer func() { b.keepLive = nil }()

	data := b.data
	data.Columns = count
	return b.SetData(ctx, &data)
}

package debugui

import (
	"context"
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// GamePanel shows the score, landing counters and stack profile of a session,
// with controls to reset it and to start the auto-drop driver.
type GamePanel struct {
	session *engine.Session
	ctx     context.Context

	// ShowProjection is toggled from the panel and read by renderers.
	ShowProjection bool
}

// NewGamePanel creates a panel over session. Drivers started from the panel
// stop when ctx is cancelled.
func NewGamePanel(ctx context.Context, session *engine.Session) *GamePanel {
	return &GamePanel{
		session:        session,
		ctx:            ctx,
		ShowProjection: true,
	}
}

func (gp *GamePanel) Render() {
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := gp.session.DisplayState()

	imgui.Text(fmt.Sprintf("State: %v", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Area: %dx%d", snap.Area.Width, snap.Area.Height))
	imgui.Text(fmt.Sprintf("Settled blocks: %d", len(snap.Blocks)))

	if imgui.Button("Reset") {
		gp.Restart()
	}
	imgui.SameLine()
	if imgui.Button("Start driver") {
		gp.session.Start(gp.ctx)
	}
	imgui.Checkbox("Show projection", &gp.ShowProjection)

	imgui.Separator()

	if imgui.TreeNodeStr("Landings") {
		imgui.Text(fmt.Sprintf("Pieces: %d", snap.Stats.Pieces))
		imgui.Text(fmt.Sprintf("Lines: %d", snap.Stats.Lines))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows cleared")
			imgui.TableSetupColumn("Landings")
			imgui.TableHeadersRow()

			for rows, count := range snap.Stats.Clears {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Stack profile") {
		heights := ColumnHeights(snap)
		for x, h := range heights {
			imgui.Text(fmt.Sprintf("%2d: %2d", x, h))
			if h > 0 {
				barWidth := float32(h) / float32(snap.Area.Height) * 120.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Falling piece") {
		for _, c := range snap.Player {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", c.X, c.Y))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Restart starts a fresh game and relaunches the auto-drop driver, as a
// front end's own reset key does.
func (gp *GamePanel) Restart() bool {
	gp.session.Reset()
	return gp.session.Start(gp.ctx)
}

// ColumnHeights derives the height of each column from the settled blocks of
// snap. A column whose topmost block sits at y has height Area.Height-y.
func ColumnHeights(snap engine.Snapshot) []int {
	heights := make([]int, snap.Area.Width)
	for _, c := range snap.Blocks {
		heights[c.X] = max(heights[c.X], snap.Area.Height-c.Y)
	}
	return heights
}

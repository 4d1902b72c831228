package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// DriverPanel plots the intervals chosen by a session's auto-drop driver.
type DriverPanel struct {
	session *engine.Session
	history []float32
}

func NewDriverPanel(session *engine.Session) *DriverPanel {
	return &DriverPanel{session: session}
}

func (dp *DriverPanel) Render() {
	if !imgui.BeginV("Driver", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := dp.session.DriverStats()

	imgui.Text(fmt.Sprintf("Running: %v", stats.Running))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Last interval: %v", stats.LastInterval))
	imgui.Text(fmt.Sprintf("Min/Max: %v / %v", stats.MinInterval, stats.MaxInterval))

	dp.history = Millis(dp.history[:0], stats.History)
	if len(dp.history) > 0 {
		imgui.Separator()
		imgui.Text("Interval Graph (ms)")
		imgui.PlotLinesFloatPtr("##intervals", &dp.history[0], int32(len(dp.history)))
	}

	imgui.End()
}

// Millis appends each duration of history to dst in milliseconds.
func Millis(dst []float32, history []time.Duration) []float32 {
	for _, d := range history {
		dst = append(dst, float32(d.Seconds()*1000.0))
	}
	return dst
}

// Package ebiten draws a debugui Layer on top of an Ebiten game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend and the layer it draws.
// Call Update from the game's Update, Draw last in the game's Draw, and
// Layout from the game's Layout.
type Overlay struct {
	*ebitenbackend.EbitenBackend
	layer *debugui.Layer
	input debugui.InputState
}

// NewOverlay creates the Ebiten window through the ImGui backend.
func NewOverlay(title string, width, height int, layer *debugui.Layer) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		layer:         layer,
	}
}

// Update renders one ImGui frame.
func (o *Overlay) Update() {
	o.BeginFrame()
	o.input = o.layer.Render()
	o.EndFrame()
}

// Draw paints the last ImGui frame onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.EbitenBackend.Draw(screen)
}

// Input reports whether ImGui captured input during the last Update.
func (o *Overlay) Input() debugui.InputState {
	return o.input
}

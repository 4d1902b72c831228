// Package debugui provides Dear ImGui panels for inspecting a running game session.
// Panels are collected on a Layer, which renders them once per frame and reports
// whether ImGui wants to keep mouse or keyboard input for itself.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to decide whether game input should be ignored for the frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Layer is an ordered set of panels drawn inside one ImGui frame.
type Layer struct {
	items []Item
}

// Add appends a render function. Items draw in the order they were added.
func (l *Layer) Add(render func()) {
	l.items = append(l.items, Item{Render: render})
}

// Render draws every item and returns the input capture state. It must be
// called between the backend's BeginFrame and EndFrame.
func (l *Layer) Render() InputState {
	state := InputState{
		WantCaptureMouse:    imgui.CurrentIO().WantCaptureMouse(),
		WantCaptureKeyboard: imgui.CurrentIO().WantCaptureKeyboard(),
	}
	for _, item := range l.items {
		item.Render()
	}
	return state
}

// Len returns the number of registered items.
func (l *Layer) Len() int {
	return len(l.items)
}

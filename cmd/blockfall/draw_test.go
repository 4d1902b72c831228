package main

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	geo := geometry{area: engine.Area{Width: 10, Height: 20}, cell: 20}

	x, y, size := geo.cellRect(engine.Cell{X: 0, Y: 0})
	assert.Equal(t, float32(margin), x)
	assert.Equal(t, float32(margin), y)
	assert.Equal(t, float32(20), size)

	x, y, _ = geo.cellRect(engine.Cell{X: 9, Y: 19})
	assert.Equal(t, float32(margin+180), x)
	assert.Equal(t, float32(margin+380), y)

	px, py := geo.panelOrigin()
	assert.Equal(t, 2*margin+200, px)
	assert.Equal(t, margin, py)

	w, h := geo.windowSize()
	assert.Equal(t, 200+6*20+3*margin, w)
	assert.Equal(t, 400+2*margin, h)

	x, y, size = geo.previewRect(engine.Cell{X: 3, Y: 3})
	assert.Equal(t, float32(15), size)
	assert.Equal(t, float32(px)+45, x)
	assert.Equal(t, float32(py+margin)+45, y)
}

func TestRepeats(t *testing.T) {
	var fired []int
	for d := range 25 {
		if repeats(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, 12, 15, 18, 21, 24}, fired)
}

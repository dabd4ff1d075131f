// Package view implements the zoom state machine of the graph viewer.
//
// A [Controller] owns a single zoom value in [MinZoom, MaxZoom], starting at
// [MaxZoom] (the whole graph visible). [ZoomOut] lowers the value and
// [ZoomIn] raises it. Above 0.2 each step is 0.1; at or below 0.2 it is 0.01,
// so the last stretch towards [MinZoom] is fine-grained. The step is chosen
// from the value before the transition.
//
// The transition itself is the pure function [Next]. After every accepted
// transition [Controller.Dispatch] pushes the new value to the bound
// [Camera]; rejected or unknown events leave both untouched.
package view

import "math"

// Zoom bounds and steps.
const (
	MinZoom     = 0.01
	MaxZoom     = 1.0
	CoarseStep  = 0.1
	FineStep    = 0.01
	FineBelowEq = 0.2 // zoom values at or below this use FineStep
)

// Event is a discrete input to the zoom state machine.
type Event int

const (
	// EventNone is any input the controller ignores.
	EventNone Event = iota
	// ZoomIn raises the zoom value.
	ZoomIn
	// ZoomOut lowers the zoom value.
	ZoomOut
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	}
	return "none"
}

// Camera receives the zoom value as a fractional view percent.
type Camera interface {
	SetViewPercent(p float64)
}

// Step returns the step size for a pre-transition zoom value.
func Step(zoom float64) float64 {
	if zoom > FineBelowEq {
		return CoarseStep
	}
	return FineStep
}

// Next applies ev to zoom. It returns the new value and whether the event
// was accepted.
func Next(zoom float64, ev Event) (float64, bool) {
	switch ev {
	case ZoomOut:
		if zoom > MinZoom {
			return settle(zoom - Step(zoom)), true
		}
	case ZoomIn:
		if zoom < MaxZoom {
			return settle(zoom + Step(zoom)), true
		}
	}
	return zoom, false
}

// settle rounds to hundredths, cancelling binary drift from repeated steps,
// and clamps into range.
func settle(z float64) float64 {
	z = math.Round(z*100) / 100
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// Controller holds the zoom state and the camera it drives.
//
// It is meant to be driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	zoom   float64
	camera Camera
}

// NewController returns a controller at [MaxZoom] bound to camera.
// camera may be nil.
func NewController(camera Camera) *Controller {
	return &Controller{zoom: MaxZoom, camera: camera}
}

// Zoom returns the current zoom value.
func (c *Controller) Zoom() float64 { return c.zoom }

// Bind replaces the camera and pushes the current zoom to it.
func (c *Controller) Bind(camera Camera) {
	c.camera = camera
	if camera != nil {
		camera.SetViewPercent(c.zoom)
	}
}

// Dispatch applies ev and, if accepted, pushes the new zoom to the camera.
func (c *Controller) Dispatch(ev Event) bool {
	z, ok := Next(c.zoom, ev)
	if !ok {
		return false
	}
	c.zoom = z
	if c.camera != nil {
		c.camera.SetViewPercent(z)
	}
	return true
}

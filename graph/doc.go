// Package graph implements a scrolling time-series chart for monochrome framebuffers.
//
// A Widget owns a fixed-capacity ring of samples, keeps the pixel position of every slot
// up to date as samples are admitted, and projects that state onto a Surface on demand.
// Scrolling is driven by admitted samples, not by frames: Render can be called at any rate.
//
// The package does no allocation after the first SetGeometry call and never blocks, so
// Feed and Render can share a frame budget on TinyGo targets.
package graph

// Package evade implements a pointer-evading element: a proximity detector that
// decides when the pointer threatens the element, and a controller that runs a
// frame-synchronized escape loop against the viewport walls.
//
// Features:
//   - Frame-time integrated motion, wall clock speed independent of refresh rate
//   - Wall steering that slides along touched edges instead of pressing into them
//   - Wall-kick detachment from edges and corners
//   - Iterative inward clamp keeping the element box inside padded viewport bounds
//   - One-shot reconciliation on viewport resize
//   - Accept gate with a cooldown after the last chase stop
//
// Geometry, frame scheduling and time are supplied by the host through Surface,
// engine.FrameScheduler and engine.TimeProvider. All geometry failures degrade to
// inaction; nothing in this package returns an error.
package evade

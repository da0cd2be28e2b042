// Package engine implements the neon-snake simulation.
//
// Frame Model
//
// The controller is driven once per rendered frame. Inside a frame the order is
// fixed: input events feed the InputBuffer, the Scheduler decides whether logical
// ticks are due, due ticks run the collision and growth rules, then the head
// Interpolator and ParticleSystem advance. The renderer reads the resulting
// Snapshot after the frame returns.
//
// Logical ticks move the snake by exactly one cell. Everything continuous (the
// eased head, particles, screen shake) is presentation and never feeds back into
// collision or scoring.
//
// Ownership
//
// A Session owns the snake, food, score and effects of one play-through. The
// Controller owns the Session and discards it when the phase machine leaves
// Playing. Nothing in this package is safe for concurrent use; all calls are
// expected on the loop goroutine.
package engine

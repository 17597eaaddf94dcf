// Package verlet provides the core primitives for 2D position-Verlet
// simulation with distance constraints:
//
//   - [Vec2]: 2D vector value type
//   - [Point]: a simulated mass storing current and previous position
//   - [Stick]: a distance constraint between two points, optionally tearable
//   - [Body]: an ordered collection of points and sticks stepped as a unit
//   - [ShapeMatcher]: soft rigidity via rest-shape matching
//
// Velocity is never stored; it is implicit in the difference between a
// point's current and previous positions. Forces are injected either as
// acceleration during integration or by displacing previous positions.
//
// # Thread Safety
//
// Bodies are NOT thread-safe. The stepping model is single-threaded and
// cooperative: exactly one caller mutates a body per frame.
package verlet

// Package variant implements the engine's 2D value types used at the native
// extension boundary: integer and float vectors, rectangles, and the side
// enumeration.
//
// The central type is [Rect2i], an integer axis-aligned rectangle stored as a
// position and a size. Sizes may be negative; [Rect2i.Abs] produces the
// equivalent rectangle with a non-negative size. Components are int32 to match
// the engine's native layout, and arithmetic wraps on overflow.
//
// Types are re-exported through the root godot package for public consumption.
package variant

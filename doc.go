// Package godot provides the engine's 2D integer rectangle value type and the
// companion vector, float rectangle and side types it converts between.
//
// Users import this single package for the public API. [Rect2i] stores a
// position and a size with int32 components; sizes may be negative and
// [Rect2i.Abs] normalizes them. Rectangles compare with ==, format with
// String, and encode to YAML as [x, y, width, height].
package godot

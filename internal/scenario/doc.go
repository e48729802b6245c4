// Package scenario loads and evaluates YAML rectangle scenarios.
//
// A scenario is an ordered list of steps, each naming a Rect2i operation, its
// operands, and optionally the expected result:
//
//	name: hud layout
//	steps:
//	  - op: intersection
//	    rect: [0, 0, 10, 10]
//	    other: [5, 5, 10, 10]
//	    want: [5, 5, 5, 5]
//
// [Run] evaluates every step and returns a [Report]. A [Watcher] reports
// scenario files that change on disk.
package scenario

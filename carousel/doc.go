// Package carousel implements the interaction engine behind a circular, horizontally
// scrolling list of items.
//
// The engine turns drag gestures and frame deltas into:
//   - an authoritative current index (the counter)
//   - a continuous container offset
//   - a bounded activation window and indicator state, emitted as a Plan
//
// It holds no view objects. Hosts apply the Plan to their own item and indicator
// handles every frame, and feed gestures through BeginDrag/Drag/EndDrag or Handle.
//
// Lifecycle of a gesture:
//
//	Idle -> Dragging (BeginDrag) -> Sliding (EndDrag) -> Idle (slide complete, refresh)
//
// Autoplay advances only while Idle. BeginDrag is the only cancellation path.
// All entry points must be called from one goroutine.
package carousel

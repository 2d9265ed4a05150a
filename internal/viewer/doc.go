// Package viewer shows a scene in an interactive 3D window.
//
// A [Viewer] moves through three states:
//
//	Uninitialized --Open--> Running --Run/Close--> Closed
//
// Open creates the window, registers the point and gizmo geometry, applies
// render options and frames the camera. Run blocks in the event loop until
// the user closes the window. Drawing and input go through a [Backend]; the
// production backend is [Raylib].
//
// # Controls
//
//	Left drag   - Orbit around the target
//	Right drag  - Pan
//	Wheel       - Zoom
//	R           - Reset view to frame the whole cloud
//	Q / Esc     - Close
package viewer

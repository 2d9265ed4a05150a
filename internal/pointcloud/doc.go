// Package pointcloud holds the in-memory point set shared by every stage of
// the viewer pipeline.
//
//   - [Cloud]: ordered float64 coordinates plus optional native colors
//   - [RGB16]: a 16-bit red/green/blue triple as stored in LAS point records
//   - [Bounds]: axis-aligned bounding box with center and diagonal
//
// A Cloud is never mutated once a stage has produced it. Stages that reduce
// or transform points return a new Cloud.
package pointcloud

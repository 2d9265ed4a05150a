package pointcloud

import "errors"

var (
	// ErrEmptyCloud indicates an operation that needs at least one point.
	ErrEmptyCloud = errors.New("pointcloud: empty point set")

	// ErrLengthMismatch indicates native colors not parallel to the points.
	ErrLengthMismatch = errors.New("pointcloud: color count does not match point count")
)

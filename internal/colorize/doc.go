// Package colorize turns a point cloud into a parallel slice of unit-range
// RGB colors.
//
// Two modes exist:
//
//   - [ModeNative]: the cloud's own red/green/blue channels scaled to [0,1]
//   - [ModeElevation]: z normalized over the cloud and mapped through [Viridis]
//
// [SelectMode] picks native colors only when they were requested and the
// cloud actually carries them; every other case falls back to elevation.
package colorize

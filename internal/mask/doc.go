// Package mask implements the patch-grid annotation core: tiling a
// grayscale intensity grid into equal-size patches, auto-seeding a binary
// foreground mask per patch with Otsu's method, and editing each mask with
// circular brush operations while keeping a display overlay in sync.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Patch grid positions use (row, col) block indices, also 0-based, with
// patches ordered row-major within an Image.
//
// # State and Invariants
//
// A Patch owns three pieces of state: its immutable intensity data, its
// mutable binary mask, and an RGB overlay derived from the two. The overlay
// is recomputed before every mutating call returns, so it is never stale.
// Masks are never handed out as mutable references; callers read them via
// MaskAt or a cloned Bitmap and mutate them only through AddRegion,
// RemoveRegion, ClearMask, and ApplyThreshold.
//
// # Error Handling
//
// The package defines a small typed taxonomy, matched with errors.As:
//   - *InvalidDimensionError: empty grids or a patch count below 1
//   - *DegenerateInputError: constant-intensity data, where the Otsu
//     threshold is undefined
//   - *OutOfBoundsError: a brush center outside the patch
//
// All conditions are local and recoverable by the caller; nothing is
// retried or swallowed inside the package.
//
// # Thread Safety
//
// Operations are synchronous and CPU-local. Distinct Images are independent
// and safe to process concurrently, but edits to a single Patch must be
// serialized by the caller.
package mask

// Package detection dispatches feature-point detection to OpenCV's built-in
// detectors.
//
// Three detectors are supported, each delegated wholesale to the underlying
// library:
//
//   - SIFT: scale-invariant keypoints with 128-dimensional float descriptors
//   - ORB: FAST corners with rotation-aware 32-byte binary descriptors
//   - BRISK: scale-space corners with 64-byte binary descriptors
//
// The package contributes no detection logic of its own. Its job is name
// whitelisting, resource management around the cgo detector handles, and
// converting the library's keypoints into plain JSON-friendly values that
// the rest of the program can print and render.
//
// # Coordinate System
//
// Keypoint positions use the standard image convention: origin at the
// top-left corner, X increasing rightward, Y increasing downward. Size is
// the keypoint's diameter in pixels; Angle is its orientation in degrees
// (-1 when the detector does not compute orientation).
//
// # Descriptors
//
// DetectAndCompute produces one descriptor row per keypoint. Descriptor
// length depends on the detector: 128 columns for SIFT, 32 for ORB, 64 for
// BRISK. Descriptor matrices are released before returning; only their
// shape is reported.
package detection

// Package render produces the visual outputs: per-detector keypoint overlay
// images and the multi-detector comparison chart. Keypoint drawing is
// delegated to OpenCV; chart composition is plain pixel work plus a small
// built-in bitmap font.
package render

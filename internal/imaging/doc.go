// Package imaging loads images from disk and prepares them for feature
// detection.
//
// Loading goes through OpenCV's decoder, so every format OpenCV supports
// (JPEG, PNG, BMP, TIFF, WebP, ...) is accepted. A loaded Image carries both
// the BGR color matrix and a grayscale conversion; feature detectors consume
// the grayscale while visualization draws on the color matrix.
//
// Two optional preprocessing steps can run between decode and detection:
// a bounded downscale for very large inputs and a Gaussian denoise pass.
//
// Matrices are backed by native OpenCV memory. Callers own the returned
// Image and must Close it.
package imaging

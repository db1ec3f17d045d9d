// Package imaging is the host-facing half of the chart tools: everything
// that touches files and standard Go images lives here, while the
// segmentation engine in the detection package stays pure data-in,
// data-out.
//
// It provides:
//
//   - Loading and caching of scans (ImageCache), with PNG, JPEG, GIF,
//     BMP, TIFF and WebP decoders registered.
//   - The PixelBuffer luminance abstraction the engine consumes, plus
//     GrayBuffer, analysis-scale computation and box-filter downscaling.
//   - Crop geometry (ComponentCrop) mapping analysis-space components
//     back to padded, bounds-clamped full-resolution rectangles, and the
//     ApplyCrop/ApplyMask helpers that realize engine output on images.
//   - Export of results to PNG, JPEG or WebP, and debug overlays.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner, X increasing rightward and Y increasing downward. CropRect
// uses an origin plus width/height, with width and height always >= 1.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Everything else is stateless;
// operations on distinct images may run concurrently, and a single
// GrayBuffer must not be mutated while the engine reads it.
package imaging

// Package detection implements the segmentation core for scanned
// recording-chart discs: adaptive thresholding, connected-component
// labeling, region selection, morphological cleanup and ellipse masking.
//
// # Pipeline
//
// The two front-end pipelines share the same first stages:
//
//  1. Thresholding: a 256-bucket luminance histogram feeds Otsu's method
//     (OtsuThreshold), producing the cut between the light scanner
//     background and the darker disc content.
//  2. Binarization: Binarize turns luminance samples into a Mask, with
//     foreground = luminance below the threshold.
//  3. Labeling: FindComponents groups 4-connected foreground pixels into
//     Components with bounding boxes and pixel areas.
//
// For splitting a scan into discs, SplitFilter drops noise specks and
// orders the survivors in reading order. For cleaning a single disc,
// CleanIslands keeps only the largest island and reports its centroid,
// or InscribedEllipseMask clears everything outside a padded ellipse.
//
// # Coordinate system
//
// All coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y increasing downward. Component bounding
// boxes are inclusive on all four edges. Masks index pixels row-major as
// y*Width + x.
//
// # Determinism
//
// Every function in this package is a pure function of its inputs.
// Identical masks always produce the identical component set, identical
// histograms the identical threshold, and selection ties break by fixed
// rules (smallest threshold; smallest MinY, then MinX). Outputs are
// freshly allocated; nothing is shared or retained between calls, so
// callers may process images concurrently without coordination.
//
// # Error handling
//
// Failures are returned as typed errors, never raised mid-computation:
// NoComponentsFoundError means filtering or cleanup found no usable
// region and the current image cannot proceed with these parameters.
// Degenerate histograms are not an error; OtsuThreshold resolves them
// with a documented mid-range fallback.
package detection

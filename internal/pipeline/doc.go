// Package pipeline wires the detection engine and the imaging helpers
// into the two user-facing operations: Split, which locates every disc
// in a scan and returns crop rectangles, and Cleanup/CleanupEllipse,
// which strip the background from a single cropped disc.
//
// Every parameter that affects output travels in an explicit Options
// value; there is no shared or ambient state, so distinct images may be
// processed concurrently without coordination. Failures carry the stage
// name and the parameters in play, giving the caller enough context to
// retry with adjusted settings or skip the image.
package pipeline

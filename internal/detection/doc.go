// Package detection extracts object detection centroids from analytics event logs.
//
// The supported log format is the JSON document produced by an Elasticsearch-style
// query over DeepStream analytics events. Each hit carries a "deepstream-msg" field
// holding pipe-delimited detection messages of the form:
//
//	id|x_min|y_min|x_max|y_max|class|region
//
// Extraction reduces each matching message to the centroid of its bounding box,
// expressed in the pixel coordinate space of the source video frame.
//
// # Coordinate System
//
// Centroids use the standard image convention: origin (0, 0) at the top-left
// corner, X increasing rightward, Y increasing downward. Coordinates are kept as
// floating point; mapping to discrete grid cells happens downstream.
//
// # Error Handling
//
// The extractor is deliberately lenient with individual records: a message that
// does not split into exactly seven fields, or whose coordinates fail to parse,
// is skipped rather than surfaced as an error. Missing nodes anywhere in the
// document tree contribute no detections. Only a malformed document as a whole
// (invalid JSON) is reported to the caller.
//
// An empty result is a valid outcome, not an error; callers decide whether
// "zero detections" is significant for their use case.
package detection

// Package server exposes the heatmap pipeline over HTTP.
//
// The service accepts a multipart upload of a base image and an event-log
// JSON document, runs the rendering pipeline, and answers with the composited
// overlay as a PNG attachment.
//
// # Endpoints
//
//	POST /generate-overlay   multipart form with "image" and "json_data" files
//	GET  /health             liveness check
//
// # Status Mapping
//
// Request handling distinguishes client mistakes from processing failures:
//
//   - 400: wrong content type, missing part, undecodable image, or an
//     event-log document that is not valid JSON
//   - 413: an upload exceeding the configured size limits
//   - 422: a valid request whose event log contains no detections of the
//     target class — structurally fine, nothing to render
//   - 500: an unexpected pipeline failure
//
// Upload size limits are enforced from the multipart part sizes before any
// decode work happens.
package server

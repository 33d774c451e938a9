package detection

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// messageFieldCount is the exact number of pipe-delimited fields in a valid
// DeepStream detection message: id, x_min, y_min, x_max, y_max, class, region.
const messageFieldCount = 7

// Detection is a single object detection reduced to the centroid of its
// bounding box, in pixel coordinates of the source frame.
type Detection struct {
	X float64 `json:"x"` // Horizontal centroid position
	Y float64 `json:"y"` // Vertical centroid position
}

// document mirrors the subset of the event-log JSON that extraction reads.
// Absent nodes decode to zero values, which naturally yield no detections.
type document struct {
	Hits struct {
		Hits []struct {
			Fields struct {
				Messages []string `json:"deepstream-msg"`
			} `json:"fields"`
		} `json:"hits"`
	} `json:"hits"`
}

// ExtractCentroids parses an event-log JSON document and returns the bounding
// box centroids of every detection whose class label matches class
// (case-insensitive).
//
// Parameters:
//   - data: Raw JSON bytes of the event-log document.
//   - class: Target class label, e.g. "person". Matching ignores case.
//
// Returns:
//   - []Detection: Centroids in document order. Empty (non-nil) when no
//     messages match; this is a valid result, not an error.
//   - error: Non-nil only if the document itself is not valid JSON.
//
// Individual messages are skipped silently when they do not split into exactly
// seven fields or when any of the four coordinate fields is not numeric.
func ExtractCentroids(data []byte, class string) ([]Detection, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse event log: %w", err)
	}

	detections := make([]Detection, 0)
	for _, hit := range doc.Hits.Hits {
		for _, msg := range hit.Fields.Messages {
			det, ok := parseMessage(msg, class)
			if !ok {
				continue
			}
			detections = append(detections, det)
		}
	}
	return detections, nil
}

// parseMessage converts one pipe-delimited detection message into a centroid.
// The second return value is false for malformed messages and class mismatches.
func parseMessage(msg, class string) (Detection, bool) {
	parts := strings.Split(msg, "|")
	if len(parts) != messageFieldCount {
		return Detection{}, false
	}

	xMin, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Detection{}, false
	}
	yMin, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Detection{}, false
	}
	xMax, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return Detection{}, false
	}
	yMax, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return Detection{}, false
	}

	if !strings.EqualFold(parts[5], class) {
		return Detection{}, false
	}

	return Detection{
		X: (xMin + xMax) / 2,
		Y: (yMin + yMax) / 2,
	}, true
}

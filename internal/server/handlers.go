package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sightline-labs/heatmap-overlay/internal/detection"
	"github.com/sightline-labs/heatmap-overlay/internal/heatmap"
)

// handleHealth answers liveness probes.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerateOverlay accepts an image and an event-log JSON document and
// returns the heatmap-overlayed image as a PNG attachment.
//
// See the package documentation for the full status mapping.
func (s *Server) handleGenerateOverlay(c *gin.Context) {
	imageHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	jsonHeader, err := c.FormFile("json_data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON file required"})
		return
	}

	if !strings.HasPrefix(imageHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image file type"})
		return
	}
	if !strings.HasSuffix(jsonHeader.Filename, ".json") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON file required"})
		return
	}

	// Size limits come first, before any decode work.
	if jsonHeader.Size > s.cfg.Server.MaxJSONBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("JSON file too large (max %d bytes allowed)", s.cfg.Server.MaxJSONBytes),
		})
		return
	}
	if imageHeader.Size > s.cfg.Server.MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("image file too large (max %d bytes allowed)", s.cfg.Server.MaxImageBytes),
		})
		return
	}

	jsonData, err := readPart(jsonHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read JSON upload"})
		return
	}
	imageData, err := readPart(imageHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image upload"})
		return
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image file"})
		return
	}

	dets, err := detection.ExtractCentroids(jsonData, s.cfg.Heatmap.Class)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON detection data"})
		return
	}
	if len(dets) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("no %s detections found in JSON data", s.cfg.Heatmap.Class),
		})
		return
	}

	result, err := heatmap.Render(img, dets, s.cfg.Options())
	if err != nil {
		// The empty list is already answered above; a sentinel here means a
		// race between validation layers, still a client condition.
		if errors.Is(err, heatmap.ErrNoDetections) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("processing error: %v", err)})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to encode result: %v", err)})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=overlay.png")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// readPart reads one multipart upload fully into memory. Part sizes are
// checked against the configured limits before this is called.
func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}

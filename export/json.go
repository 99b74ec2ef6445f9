package export

import (
	"asciigfx/canvas"
	"encoding/json"
)

// jsonCanvas is the document written by JSONExporter.
type jsonCanvas struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// JSONExporter exports a canvas as a JSON document
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a canvas to JSON
func (e *JSONExporter) Export(c *canvas.Canvas) (string, error) {
	if err := checkCanvas(c); err != nil {
		return "", err
	}

	width, height := c.Size()
	data, err := json.MarshalIndent(jsonCanvas{
		Width:  width,
		Height: height,
		Rows:   Render(c),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

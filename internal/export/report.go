package export

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// Report is the machine-readable summary of a headless run.
type Report struct {
	Scenario   string             `json:"scenario"`
	Integrator string             `json:"integrator"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Steps      uint64             `json:"steps"`
	SimTime    float64            `json:"sim_time"`
	Stars      int                `json:"stars"`
	Timestamp  time.Time          `json:"timestamp"`
	Metrics    map[string]float64 `json:"metrics"`
}

// WriteReport encodes the report as indented JSON.
func WriteReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// SaveReport writes the report to a file, or to stdout when path is "-".
func SaveReport(path string, r Report) error {
	if path == "-" {
		return WriteReport(os.Stdout, r)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteReport(f, r)
}

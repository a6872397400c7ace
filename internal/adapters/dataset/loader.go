package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"field-service-scheduler/internal/domain"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("dataset: unknown file format")

// EngineerRecord and the sibling records mirror the on-disk layout.
type EngineerRecord struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Location string   `json:"location" yaml:"location"`
	Skills   []string `json:"skills" yaml:"skills"`
}

type JobRecord struct {
	ID             int      `json:"id" yaml:"id"`
	Location       string   `json:"location" yaml:"location"`
	Time           string   `json:"time" yaml:"time"`
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`
}

type File struct {
	Engineers []EngineerRecord              `json:"engineers" yaml:"engineers"`
	Jobs      []JobRecord                   `json:"jobs" yaml:"jobs"`
	Distances map[string]map[string]float64 `json:"distances" yaml:"distances"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and validates a dataset from a JSON or YAML file.
func Load(path string) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", path, err)
	}

	d, err := Decode(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	return d, nil
}

// Decode parses and validates a dataset in the given format.
func Decode(r io.Reader, format Format) (*Dataset, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return f.Dataset()
}

// Dataset converts records into normalized domain values and validates them.
func (f File) Dataset() (*Dataset, error) {
	d := &Dataset{
		Engineers: make([]domain.Engineer, 0, len(f.Engineers)),
		Jobs:      make([]domain.Job, 0, len(f.Jobs)),
		Distances: make(domain.DistanceMatrix, len(f.Distances)),
	}

	for _, e := range f.Engineers {
		d.Engineers = append(d.Engineers, domain.NewEngineer(
			e.ID,
			strings.TrimSpace(e.Name),
			domain.Location(strings.TrimSpace(e.Location)),
			e.Skills...,
		))
	}

	for _, j := range f.Jobs {
		d.Jobs = append(d.Jobs, domain.NewJob(
			j.ID,
			domain.Location(strings.TrimSpace(j.Location)),
			j.Time,
			j.RequiredSkills...,
		))
	}

	for from, row := range f.Distances {
		for to, cost := range row {
			d.Distances.Set(domain.Location(strings.TrimSpace(from)), domain.Location(strings.TrimSpace(to)), cost)
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Records converts the dataset back into its on-disk layout.
func (d *Dataset) Records() File {
	f := File{
		Engineers: make([]EngineerRecord, 0, len(d.Engineers)),
		Jobs:      make([]JobRecord, 0, len(d.Jobs)),
		Distances: make(map[string]map[string]float64, len(d.Distances)),
	}
	for _, e := range d.Engineers {
		f.Engineers = append(f.Engineers, EngineerRecord{
			ID:       e.ID,
			Name:     e.Name,
			Location: string(e.Location),
			Skills:   append([]string(nil), e.Skills...),
		})
	}
	for _, j := range d.Jobs {
		f.Jobs = append(f.Jobs, JobRecord{
			ID:             j.ID,
			Location:       string(j.Location),
			Time:           j.Time,
			RequiredSkills: append([]string(nil), j.RequiredSkills...),
		})
	}
	for from, row := range d.Distances {
		out := make(map[string]float64, len(row))
		for to, cost := range row {
			out[string(to)] = cost
		}
		f.Distances[string(from)] = out
	}
	return f
}

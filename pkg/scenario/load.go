package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseEvents decodes a JSON array of event definitions.
func ParseEvents(data []byte) ([]Event, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEventData, err)
	}
	events := make([]Event, 0, len(records))
	for i := range records {
		e, err := records[i].Event(i)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// ParseLocation decodes a location's event definitions.
func ParseLocation(name string, data []byte) (*Location, error) {
	events, err := ParseEvents(data)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", name, err)
	}
	return &Location{Name: name, Events: events}, nil
}

// LoadLocation reads a location from a JSON file. The location is named
// after the file without its extension.
func LoadLocation(path string) (*Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return ParseLocation(LocationName(path), data)
}

// LocationName derives a location name from a file path.
func LocationName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"peaknear-tools/pntools/peak"
)

// ParseError describes a malformed record in the peak catalog.
type ParseError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("peak record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("peak record %d: field '%s' %s", e.Index, e.Field, e.Reason)
}

// coordinate accepts a JSON number or a string using either a dot or a
// comma decimal separator ("46,3725"), as exported by some locales.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a coordinate", s)
	}

	*c = coordinate(v)
	return nil
}

type record struct {
	Name      *string     `json:"name"`
	Country   *string     `json:"country"`
	Range     *string     `json:"mountain_range"`
	Latitude  *coordinate `json:"latitude"`
	Longitude *coordinate `json:"longitude"`
	Elevation *int        `json:"elevation"`
}

func (r record) missingField() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Country == nil:
		return "country"
	case r.Range == nil:
		return "mountain_range"
	case r.Latitude == nil:
		return "latitude"
	case r.Longitude == nil:
		return "longitude"
	case r.Elevation == nil:
		return "elevation"
	}
	return ""
}

// Load parses a JSON array of peak records, keeping source order. It does
// not dedup or sort.
func Load(r io.Reader) ([]peak.Peak, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't read peak catalog: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("peak catalog is not a valid record array: %w", err)
	}

	peaks := make([]peak.Peak, len(raw))
	for i, msg := range raw {
		var rec record
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, &ParseError{Index: i, Field: fieldOf(err), Reason: err.Error()}
		}
		if field := rec.missingField(); field != "" {
			return nil, &ParseError{Index: i, Field: field, Reason: "is required"}
		}

		peaks[i] = peak.Peak{
			Name:      *rec.Name,
			Country:   *rec.Country,
			Range:     *rec.Range,
			Latitude:  float64(*rec.Latitude),
			Longitude: float64(*rec.Longitude),
			Elevation: *rec.Elevation,
		}
	}

	return peaks, nil
}

// LoadFile reads and parses the peak catalog at the given path.
func LoadFile(path string) ([]peak.Peak, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open peak catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func fieldOf(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}

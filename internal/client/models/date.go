package models

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Backend wire format vs. the format shown in forms. The backend is not
// fully consistent across endpoints, so unmarshalling tries the wire format
// first and falls back to the display format and RFC3339; marshalling always
// emits the wire format so a loaded value round-trips unchanged.
const (
	DateWireFormat    = "02/01/2006"
	DateDisplayFormat = "2006-01-02"
)

// WireDate is a calendar date as the backend transports it. The zero value
// marshals as an empty string and displays as "". A value that failed every
// parse strategy keeps the raw string so it can still be displayed and sent
// back unmodified.
type WireDate struct {
	time.Time
	raw string
}

// ParseWireDate accepts any of the supported interchange formats.
func ParseWireDate(s string) (WireDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WireDate{}, nil
	}
	for _, layout := range []string{DateWireFormat, DateDisplayFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return WireDate{Time: t}, nil
		}
	}
	return WireDate{raw: s}, fmt.Errorf("unrecognized date %q", s)
}

// ParseDisplayDate parses user input from a form field.
func ParseDisplayDate(s string) (WireDate, error) {
	return ParseWireDate(s)
}

// Display renders the date the way forms show it, or the raw string when the
// value never parsed.
func (d WireDate) Display() string {
	if d.raw != "" {
		return d.raw
	}
	if d.IsZero() {
		return ""
	}
	return d.Format(DateDisplayFormat)
}

// Wire renders the date the way the backend expects it.
func (d WireDate) Wire() string {
	if d.raw != "" {
		return d.raw
	}
	if d.IsZero() {
		return ""
	}
	return d.Format(DateWireFormat)
}

func (d WireDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Wire() + `"`), nil
}

func (d *WireDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = WireDate{}
		return nil
	}
	s := strings.Trim(string(data), `"`)
	// An unparseable date degrades to its raw form rather than failing the
	// whole record decode.
	parsed, _ := ParseWireDate(s)
	*d = parsed
	return nil
}

// Today returns the current date truncated to a calendar day.
func Today() WireDate {
	y, m, day := time.Now().Date()
	return WireDate{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC)}
}

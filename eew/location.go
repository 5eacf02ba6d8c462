package eew

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Epicenter is the named region of the epicenter (震央地名).
type Epicenter struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (e Epicenter) String() string {
	return e.Name
}

// Position is the location of the epicenter in tenths of a degree, as given in the telegram.
// Southern latitudes and western longitudes are negative.
type Position struct {
	lat   int
	lon   int
	south bool
	west  bool
}

var positionExpression = regexp.MustCompile(`^([NS])(\d{3}) ([EW])(\d{4})$`)

const unsetPosition = "//// /////"

// ParsePosition parses the position notation of the telegram, e.g. "N370 E1408". The placeholder "//// /////"
// results in an unspecified value.
func ParsePosition(s string) (Value[Position], error) {
	if s == unsetPosition {
		return Unspecified[Position](), nil
	}
	parts := positionExpression.FindStringSubmatch(s)
	if len(parts) != 5 {
		return Value[Position]{}, fmt.Errorf("invalid position %q", s)
	}

	lat, _ := strconv.Atoi(parts[2])
	lon, _ := strconv.Atoi(parts[4])
	return Specified(Position{lat: lat, lon: lon, south: parts[1] == "S", west: parts[3] == "W"}), nil
}

// Latitude in degrees.
func (p Position) Latitude() float64 {
	if p.south {
		return -float64(p.lat) / 10
	}
	return float64(p.lat) / 10
}

// Longitude in degrees.
func (p Position) Longitude() float64 {
	if p.west {
		return -float64(p.lon) / 10
	}
	return float64(p.lon) / 10
}

// String returns the position with decimal points inserted, e.g. "N37.0 E140.8".
func (p Position) String() string {
	ns := "N"
	if p.south {
		ns = "S"
	}
	ew := "E"
	if p.west {
		ew = "W"
	}
	return fmt.Sprintf("%s%02d.%d %s%03d.%d", ns, p.lat/10, p.lat%10, ew, p.lon/10, p.lon%10)
}

// MarshalJSON encodes the position as an object with latitude and longitude in degrees.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Latitude  float64 `json:"lat"`
		Longitude float64 `json:"lon"`
	}{p.Latitude(), p.Longitude()})
}

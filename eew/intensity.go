package eew

import (
	"encoding/json"
	"fmt"
)

// Intensity is a class of the JMA seismic intensity scale (震度階級). The classes are ordered by severity.
type Intensity byte

// All intensity classes that may appear in a fastcast telegram.
const (
	Intensity1 Intensity = iota + 1
	Intensity2
	Intensity3
	Intensity4
	Intensity5Lower
	Intensity5Upper
	Intensity6Lower
	Intensity6Upper
	Intensity7
)

var intensityCodes = map[string]Intensity{
	"01": Intensity1,
	"02": Intensity2,
	"03": Intensity3,
	"04": Intensity4,
	"5-": Intensity5Lower,
	"5+": Intensity5Upper,
	"6-": Intensity6Lower,
	"6+": Intensity6Upper,
	"07": Intensity7,
}

var intensityLabels = map[Intensity]string{
	Intensity1:      "1",
	Intensity2:      "2",
	Intensity3:      "3",
	Intensity4:      "4",
	Intensity5Lower: "5弱",
	Intensity5Upper: "5強",
	Intensity6Lower: "6弱",
	Intensity6Upper: "6強",
	Intensity7:      "7",
}

func (i Intensity) String() string {
	label, ok := intensityLabels[i]
	if !ok {
		return fmt.Sprintf("Intensity(%d)", byte(i))
	}
	return label
}

// MarshalJSON encodes the intensity as its label.
func (i Intensity) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// ParseIntensity parses the two character intensity code used in the telegram ("01" to "07", "5-", "5+", "6-", "6+").
// The placeholder "//" results in an unspecified value.
func ParseIntensity(s string) (Value[Intensity], error) {
	if s == "//" {
		return Unspecified[Intensity](), nil
	}
	result, ok := intensityCodes[s]
	if !ok {
		return Value[Intensity]{}, fmt.Errorf("unknown intensity code %q", s)
	}
	return Specified(result), nil
}

// IntensityRange describes the forecast intensity of a single area.
// An open range means "From or above" (以上) and has no To.
type IntensityRange struct {
	From Value[Intensity]
	To   Value[Intensity]
	Open bool
}

// IsOpen reports whether the range has no upper bound.
func (r IntensityRange) IsOpen() bool {
	return r.Open
}

// IsSingle reports whether the range covers exactly one class.
func (r IntensityRange) IsSingle() bool {
	return !r.Open && r.From == r.To
}

func (r IntensityRange) String() string {
	switch {
	case r.IsOpen():
		return r.From.String() + "以上"
	case r.IsSingle():
		return r.From.String()
	default:
		return r.From.String() + "から" + r.To.String()
	}
}

// MarshalJSON encodes the range as its label.
func (r IntensityRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// parseIntensityRange parses the "eeff" part of an EBI record: ee at [5,7), ff at [7,9).
// An unset ff means "ee or above", equal sub-fields mean the single class ee,
// all other pairs are rendered in telegram order as "ff から ee".
func parseIntensityRange(ee, ff string) (IntensityRange, error) {
	first, err := ParseIntensity(ee)
	if err != nil {
		return IntensityRange{}, err
	}
	second, err := ParseIntensity(ff)
	if err != nil {
		return IntensityRange{}, err
	}

	switch {
	case ee == ff:
		return IntensityRange{From: first, To: first}, nil
	case ff == "//":
		return IntensityRange{From: first, Open: true}, nil
	default:
		return IntensityRange{From: second, To: first}, nil
	}
}

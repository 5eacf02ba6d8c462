package eew

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Forecast is the decoded EBI record of a single area (地域毎の警報の判別、最大予測震度及び主要動到達予測時刻).
type Forecast struct {
	AreaCode    int              `json:"area_code"`
	AreaName    string           `json:"area_name"`
	Intensity   IntensityRange   `json:"intensity"`
	ArrivalTime Value[time.Time] `json:"arrival_time"`
	Warning     Value[bool]      `json:"warning"`
	Arrived     Value[bool]      `json:"arrival"`
}

const (
	ebiMarker       = "EBI"
	ebiMarkerOffset = 135
	ebiOffset       = 139
	ebiRecordSize   = 20
)

// HasForecasts reports whether the telegram contains an EBI block.
func (b *Bulletin) HasForecasts() bool {
	marker, err := b.telegram.Slice(ebiMarkerOffset, len(ebiMarker))
	return err == nil && marker == ebiMarker
}

// Forecasts returns the decoded EBI records in telegram order. The result is empty if the telegram has no EBI block.
// The records are decoded once, the caller gets its own copy.
func (b *Bulletin) Forecasts() ([]Forecast, error) {
	b.forecastsOnce.Do(func() {
		b.forecasts, b.forecastsErr = b.decodeForecasts()
	})
	if b.forecastsErr != nil {
		return nil, b.forecastsErr
	}
	return slices.Clone(b.forecasts), nil
}

func (b *Bulletin) decodeForecasts() ([]Forecast, error) {
	result := []Forecast{}
	if !b.HasForecasts() {
		return result, nil
	}

	for offset := ebiOffset; offset+ebiRecordSize < b.telegram.Len(); offset += ebiRecordSize {
		record, err := b.telegram.Slice(offset, ebiRecordSize)
		if err != nil {
			return nil, &FormatError{Field: FieldEBI, Err: err}
		}
		forecast, err := b.decodeForecast(record)
		if err != nil {
			return nil, err
		}
		result = append(result, forecast)
	}
	return result, nil
}

// decodeForecast decodes a single record "aaa Seeff hhmmss yz".
func (b *Bulletin) decodeForecast(record string) (Forecast, error) {
	var result Forecast

	rawCode := record[0:3]
	if !isDigits(rawCode) {
		return Forecast{}, formatError(FieldEBIAreaCode, rawCode)
	}
	result.AreaCode, _ = strconv.Atoi(rawCode)
	name, ok := b.decoder.areas.Lookup(result.AreaCode)
	if !ok {
		return Forecast{}, &FormatError{Field: FieldEBIAreaName, Raw: rawCode, Err: fmt.Errorf("unknown area code %d", result.AreaCode)}
	}
	result.AreaName = name

	rawIntensity := record[5:9]
	intensity, err := parseIntensityRange(rawIntensity[0:2], rawIntensity[2:4])
	if err != nil {
		return Forecast{}, &FormatError{Field: FieldEBIIntensity, Raw: rawIntensity, Err: err}
	}
	result.Intensity = intensity

	result.ArrivalTime, err = b.arrivalTime(record[10:16])
	if err != nil {
		return Forecast{}, err
	}

	result.Warning, err = parseFlag(FieldEBIWarning, record[17:18])
	if err != nil {
		return Forecast{}, err
	}
	result.Arrived, err = parseFlag(FieldEBIArrival, record[18:19])
	if err != nil {
		return Forecast{}, err
	}

	return result, nil
}

// arrivalTime combines the time of day given in the record with the date of the earthquake time.
func (b *Bulletin) arrivalTime(raw string) (Value[time.Time], error) {
	if raw == "//////" {
		return Unspecified[time.Time](), nil
	}
	earthquakeTime, err := b.EarthquakeTime()
	if err != nil {
		return Value[time.Time]{}, err
	}
	result, err := parseTimestamp(FieldEBIArrivalTime, raw, earthquakeTime.Format("20060102")+raw)
	if err != nil {
		return Value[time.Time]{}, err
	}
	return Specified(result), nil
}

// parseFlag decodes the flags of an EBI record. Reserved digits are treated like the unset placeholder.
func parseFlag(field Field, raw string) (Value[bool], error) {
	kind, ok := flagCodes[raw]
	if !ok {
		return Value[bool]{}, formatError(field, raw)
	}
	if kind != Defined {
		return Unspecified[bool](), nil
	}
	return Specified(raw == "1"), nil
}

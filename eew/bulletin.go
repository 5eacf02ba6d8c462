package eew

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// JST is the time zone of all times in the telegram.
var JST = time.FixedZone("JST", 9*60*60)

const timestampLayout = "20060102150405"

// Bulletin is a telegram bound to a Decoder. All fields are decoded on access, each one independently of the others.
// A Bulletin is safe for concurrent use.
type Bulletin struct {
	telegram *Telegram
	decoder  *Decoder

	forecastsOnce sync.Once
	forecasts     []Forecast
	forecastsErr  error
}

// Telegram returns the underlying telegram.
func (b *Bulletin) Telegram() *Telegram {
	return b.telegram
}

// Equal reports whether both bulletins are based on exactly the same telegram text.
func (b *Bulletin) Equal(other *Bulletin) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.telegram.Equal(other.telegram)
}

// Type of the telegram (電文種別コード).
func (b *Bulletin) Type() (Code, error) {
	return b.decoder.code(b.telegram, typeField)
}

// IsCanceled reports whether this is a cancellation (キャンセル報).
func (b *Bulletin) IsCanceled() bool {
	raw, err := b.telegram.Slice(typeField.offset, typeField.length)
	return err == nil && raw == "39"
}

// Origin returns the issuing office (発信官署).
func (b *Bulletin) Origin() (Code, error) {
	return b.decoder.code(b.telegram, originField)
}

// DrillType returns the drill indicator (訓練等の識別符).
func (b *Bulletin) DrillType() (Code, error) {
	return b.decoder.code(b.telegram, drillTypeField)
}

// IsDrill reports whether the telegram belongs to a drill or a delivery test.
func (b *Bulletin) IsDrill() (bool, error) {
	code, err := b.DrillType()
	if err != nil {
		return false, err
	}
	switch code.Raw {
	case "01", "11", "30":
		return true, nil
	default:
		return false, nil
	}
}

// ReportTime returns the time when the telegram was issued (電文の発表時刻).
func (b *Bulletin) ReportTime() (time.Time, error) {
	return b.timestamp(FieldReportTime, 9)
}

// NumberOfTelegrams returns how many telegrams, including this one, make up the message.
func (b *Bulletin) NumberOfTelegrams() (int, error) {
	return b.integer(FieldNumberOfTelegrams, 23, 1)
}

// Continued reports whether the code part continues in the next telegram.
func (b *Bulletin) Continued() (bool, error) {
	raw, err := b.telegram.field(FieldContinued, 24, 1)
	if err != nil {
		return false, err
	}
	switch raw {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, formatError(FieldContinued, raw)
	}
}

// EarthquakeTime returns the origin time of the earthquake, or the time of detection (地震発生時刻もしくは地震検知時刻).
func (b *Bulletin) EarthquakeTime() (time.Time, error) {
	return b.timestamp(FieldEarthquakeTime, 26)
}

// ID returns the earthquake identifier (地震識別番号). All telegrams about the same earthquake share this identifier.
// The identifier is returned as the 14 digit numeral of the telegram.
func (b *Bulletin) ID() (string, error) {
	raw, err := b.telegram.field(FieldID, 41, 14)
	if err != nil {
		return "", err
	}
	if !isDigits(raw) {
		return "", formatError(FieldID, raw)
	}
	return raw, nil
}

// Status returns the issue status (発表状況(訂正等)の指示).
func (b *Bulletin) Status() (Code, error) {
	return b.decoder.code(b.telegram, statusField)
}

// IsFinal reports whether this is the final bulletin for the earthquake.
func (b *Bulletin) IsFinal() (bool, error) {
	code, err := b.Status()
	if err != nil {
		return false, err
	}
	return code.Raw == "9", nil
}

// IsNormal reports whether this is a regular bulletin, i.e. neither a drill nor a correction.
func (b *Bulletin) IsNormal() bool {
	status, err := b.Status()
	if err != nil {
		return false
	}
	drillType, err := b.DrillType()
	if err != nil {
		return false
	}
	return (status.Raw == "0" || status.Raw == "9") && drillType.Raw == "00"
}

// Number returns the serial number of this bulletin among all bulletins about the same earthquake.
func (b *Bulletin) Number() (int, error) {
	return b.integer(FieldNumber, 60, 2)
}

// IsFirst reports whether this is the first bulletin about the earthquake.
func (b *Bulletin) IsFirst() (bool, error) {
	number, err := b.Number()
	if err != nil {
		return false, err
	}
	return number == 1, nil
}

// Epicenter returns the named region of the epicenter, resolved through the epicenter table of the decoder.
func (b *Bulletin) Epicenter() (Value[Epicenter], error) {
	raw, err := b.telegram.field(FieldEpicenter, 86, 3)
	if err != nil {
		return Value[Epicenter]{}, err
	}
	if raw == "///" {
		return Unspecified[Epicenter](), nil
	}
	if !isDigits(raw) {
		return Value[Epicenter]{}, formatError(FieldEpicenter, raw)
	}
	code, _ := strconv.Atoi(raw)
	name, ok := b.decoder.epicenters.Lookup(code)
	if !ok {
		return Value[Epicenter]{}, &FormatError{Field: FieldEpicenter, Raw: raw, Err: fmt.Errorf("unknown epicenter code %d", code)}
	}
	return Specified(Epicenter{Code: code, Name: name}), nil
}

// Position returns the location of the epicenter.
func (b *Bulletin) Position() (Value[Position], error) {
	raw, err := b.telegram.field(FieldPosition, 90, 10)
	if err != nil {
		return Value[Position]{}, err
	}
	result, err := ParsePosition(raw)
	if err != nil {
		return Value[Position]{}, &FormatError{Field: FieldPosition, Raw: raw, Err: err}
	}
	return result, nil
}

// Depth returns the depth of the hypocenter in km.
func (b *Bulletin) Depth() (Value[int], error) {
	raw, err := b.telegram.field(FieldDepth, 101, 3)
	if err != nil {
		return Value[int]{}, err
	}
	if raw == "///" {
		return Unspecified[int](), nil
	}
	if !isDigits(raw) {
		return Value[int]{}, formatError(FieldDepth, raw)
	}
	result, _ := strconv.Atoi(raw)
	return Specified(result), nil
}

// Magnitude returns the magnitude of the earthquake with one decimal.
func (b *Bulletin) Magnitude() (Value[float64], error) {
	raw, err := b.telegram.field(FieldMagnitude, 105, 2)
	if err != nil {
		return Value[float64]{}, err
	}
	if raw == "//" {
		return Unspecified[float64](), nil
	}
	if !isDigits(raw) {
		return Value[float64]{}, formatError(FieldMagnitude, raw)
	}
	result, err := strconv.ParseFloat(raw[0:1]+"."+raw[1:2], 64)
	if err != nil {
		return Value[float64]{}, &FormatError{Field: FieldMagnitude, Raw: raw, Err: err}
	}
	return Specified(result), nil
}

// MaxIntensity returns the maximum forecast intensity (最大予測震度).
func (b *Bulletin) MaxIntensity() (Value[Intensity], error) {
	raw, err := b.telegram.field(FieldMaxIntensity, 108, 2)
	if err != nil {
		return Value[Intensity]{}, err
	}
	result, err := ParseIntensity(raw)
	if err != nil {
		return Value[Intensity]{}, &FormatError{Field: FieldMaxIntensity, Raw: raw, Err: err}
	}
	return result, nil
}

// ProbabilityOfPosition returns how the epicenter was determined (震央の確からしさ).
func (b *Bulletin) ProbabilityOfPosition() (Code, error) {
	return b.decoder.code(b.telegram, probabilityOfPosition)
}

// ProbabilityOfDepth returns how the depth was determined (震源の深さの確からしさ).
func (b *Bulletin) ProbabilityOfDepth() (Code, error) {
	return b.decoder.code(b.telegram, probabilityOfDepth)
}

// ProbabilityOfMagnitude returns how the magnitude was determined (マグニチュードの確からしさ).
func (b *Bulletin) ProbabilityOfMagnitude() (Code, error) {
	return b.decoder.code(b.telegram, probabilityOfMagnitude)
}

// ObservationPointsOfMagnitude returns the number of stations used for the magnitude (JMA internal use).
// Older telegrams use this position for the probability of the epicenter.
func (b *Bulletin) ObservationPointsOfMagnitude() (Code, error) {
	return b.decoder.code(b.telegram, observationPoints)
}

// ProbabilityOfDepthJMA returns how the depth was determined (JMA internal use).
func (b *Bulletin) ProbabilityOfDepthJMA() (Code, error) {
	return b.decoder.code(b.telegram, probabilityOfDepthJMA)
}

// LandOrSea tells if the epicenter lies on land or at sea (震央位置の海陸判定).
func (b *Bulletin) LandOrSea() (Code, error) {
	return b.decoder.code(b.telegram, landOrSeaField)
}

// Warning tells if the bulletin contains a warning (警報). Reserved digits count as "no warning".
func (b *Bulletin) Warning() (Value[bool], error) {
	raw, err := b.telegram.field(FieldWarning, 122, 1)
	if err != nil {
		return Value[bool]{}, err
	}
	kind, ok := flagCodes[raw]
	if !ok {
		return Value[bool]{}, formatError(FieldWarning, raw)
	}
	switch kind {
	case Unset:
		return Unspecified[bool](), nil
	case Reserved:
		return Specified(false), nil
	default:
		return Specified(raw == "1"), nil
	}
}

// IsWarning reports whether the bulletin contains a warning. An unset flag counts as "no warning".
func (b *Bulletin) IsWarning() (bool, error) {
	warning, err := b.Warning()
	if err != nil {
		return false, err
	}
	return warning.OrElse(false), nil
}

// PredictionMethod returns the method used for the intensity forecast (予測手法).
func (b *Bulletin) PredictionMethod() (Code, error) {
	return b.decoder.code(b.telegram, predictionMethodField)
}

// Change tells how the maximum forecast intensity changed compared to the previous bulletin.
func (b *Bulletin) Change() (Code, error) {
	return b.decoder.code(b.telegram, changeField)
}

// IsChanged reports whether the maximum forecast intensity changed by at least one class.
func (b *Bulletin) IsChanged() (bool, error) {
	code, err := b.Change()
	if err != nil {
		return false, err
	}
	return code.Raw == "1" || code.Raw == "2", nil
}

// ReasonOfChange tells why the maximum forecast intensity changed.
func (b *Bulletin) ReasonOfChange() (Code, error) {
	return b.decoder.code(b.telegram, reasonOfChangeField)
}

func (b *Bulletin) timestamp(field Field, offset int) (time.Time, error) {
	raw, err := b.telegram.field(field, offset, 12)
	if err != nil {
		return time.Time{}, err
	}
	return parseTimestamp(field, raw, "20"+raw)
}

func (b *Bulletin) integer(field Field, offset, length int) (int, error) {
	raw, err := b.telegram.field(field, offset, length)
	if err != nil {
		return 0, err
	}
	if !isDigits(raw) {
		return 0, formatError(field, raw)
	}
	result, _ := strconv.Atoi(raw)
	return result, nil
}

func parseTimestamp(field Field, raw string, value string) (time.Time, error) {
	if !isDigits(value) {
		return time.Time{}, formatError(field, raw)
	}
	result, err := time.ParseInLocation(timestampLayout, value, JST)
	if err != nil {
		return time.Time{}, &FormatError{Field: field, Raw: raw, Err: err}
	}
	return result, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

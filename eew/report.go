package eew

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldValue is a single decoded field.
type FieldValue struct {
	Field Field
	Value any
}

// Fields holds decoded fields in canonical order.
type Fields []FieldValue

// Get returns the value of the given field.
func (f Fields) Get(field Field) (any, bool) {
	for _, v := range f {
		if v.Field == field {
			return v.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the fields as a JSON object that keeps the canonical order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(v.Field))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v.Value)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", v.Field, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type fieldDecoder struct {
	field  Field
	decode func(*Bulletin) (any, error)
}

func decodeAs[T any](decode func(*Bulletin) (T, error)) func(*Bulletin) (any, error) {
	return func(b *Bulletin) (any, error) {
		return decode(b)
	}
}

var canonicalFields = []fieldDecoder{
	{FieldType, decodeAs((*Bulletin).Type)},
	{FieldOrigin, decodeAs((*Bulletin).Origin)},
	{FieldDrillType, decodeAs((*Bulletin).DrillType)},
	{FieldReportTime, decodeAs((*Bulletin).ReportTime)},
	{FieldNumberOfTelegrams, decodeAs((*Bulletin).NumberOfTelegrams)},
	{FieldContinued, decodeAs((*Bulletin).Continued)},
	{FieldEarthquakeTime, decodeAs((*Bulletin).EarthquakeTime)},
	{FieldID, decodeAs((*Bulletin).ID)},
	{FieldStatus, decodeAs((*Bulletin).Status)},
	{FieldFinal, decodeAs((*Bulletin).IsFinal)},
	{FieldNumber, decodeAs((*Bulletin).Number)},
	{FieldEpicenter, decodeAs((*Bulletin).Epicenter)},
	{FieldPosition, decodeAs((*Bulletin).Position)},
	{FieldDepth, decodeAs((*Bulletin).Depth)},
	{FieldMagnitude, decodeAs((*Bulletin).Magnitude)},
	{FieldMaxIntensity, decodeAs((*Bulletin).MaxIntensity)},
	{FieldObservationPointsOfMagnitude, decodeAs((*Bulletin).ObservationPointsOfMagnitude)},
	{FieldProbabilityOfDepth, decodeAs((*Bulletin).ProbabilityOfDepth)},
	{FieldProbabilityOfMagnitude, decodeAs((*Bulletin).ProbabilityOfMagnitude)},
	{FieldProbabilityOfPosition, decodeAs((*Bulletin).ProbabilityOfPosition)},
	{FieldProbabilityOfDepthJMA, decodeAs((*Bulletin).ProbabilityOfDepthJMA)},
	{FieldLandOrSea, decodeAs((*Bulletin).LandOrSea)},
	{FieldWarning, decodeAs((*Bulletin).Warning)},
	{FieldPredictionMethod, decodeAs((*Bulletin).PredictionMethod)},
	{FieldChange, decodeAs((*Bulletin).Change)},
	{FieldReasonOfChange, decodeAs((*Bulletin).ReasonOfChange)},
	{FieldEBI, decodeAs((*Bulletin).Forecasts)},
}

// Fields decodes all fields in canonical order. It fails with the first field that cannot be decoded.
func (b *Bulletin) Fields() (Fields, error) {
	result := make(Fields, 0, len(canonicalFields))
	for _, f := range canonicalFields {
		value, err := f.decode(b)
		if err != nil {
			return nil, err
		}
		result = append(result, FieldValue{Field: f.field, Value: value})
	}
	return result, nil
}

// Validate decodes every field and returns all errors joined together, or nil if the telegram is valid.
func (b *Bulletin) Validate() error {
	var errs []error
	for _, f := range canonicalFields {
		if _, err := f.decode(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Valid reports whether every field of the telegram can be decoded.
func (b *Bulletin) Valid() bool {
	return b.Validate() == nil
}

// Compare orders bulletins by earthquake identifier and then by serial number. It returns -1, 0, or +1.
// Both fields have a fixed width, the raw text is compared.
func Compare(a, b *Bulletin) int {
	if c := strings.Compare(a.rawOrEmpty(FieldID, 41, 14), b.rawOrEmpty(FieldID, 41, 14)); c != 0 {
		return c
	}
	return strings.Compare(a.rawOrEmpty(FieldNumber, 60, 2), b.rawOrEmpty(FieldNumber, 60, 2))
}

func (b *Bulletin) rawOrEmpty(field Field, offset, length int) string {
	raw, err := b.telegram.field(field, offset, length)
	if err != nil {
		return ""
	}
	return raw
}

func (b *Bulletin) String() string {
	id, err := b.ID()
	if err != nil {
		id = "?"
	}
	number := "?"
	if n, err := b.Number(); err == nil {
		number = strconv.Itoa(n)
	}
	epicenter := b.decoder.unsetLabel
	if e, err := b.Epicenter(); err == nil && e.IsSpecified() {
		epicenter = e.String()
	}
	intensity := b.decoder.unsetLabel
	if i, err := b.MaxIntensity(); err == nil && i.IsSpecified() {
		intensity = i.String()
	}
	return fmt.Sprintf("%s (第%s報) %s 震度%s", id, number, epicenter, intensity)
}

var fieldCaptions = map[Field]string{
	FieldType:                         "電文種別",
	FieldOrigin:                       "発信官署",
	FieldDrillType:                    "訓練等の識別符",
	FieldReportTime:                   "電文の発表時刻",
	FieldNumberOfTelegrams:            "電文がこの電文を含め何通あるか",
	FieldContinued:                    "コードが続くかどうか",
	FieldEarthquakeTime:               "地震発生時刻もしくは地震検知時刻",
	FieldID:                           "地震識別番号",
	FieldStatus:                       "発表状況(訂正等)の指示",
	FieldFinal:                        "最終報かどうか",
	FieldNumber:                       "発表する高度利用者向け緊急地震速報の番号(地震単位での通番)",
	FieldEpicenter:                    "震央地名",
	FieldPosition:                     "震央の位置",
	FieldDepth:                        "震源の深さ(単位 km)",
	FieldMagnitude:                    "マグニチュード",
	FieldMaxIntensity:                 "最大予測震度",
	FieldObservationPointsOfMagnitude: "マグニチュード使用観測点",
	FieldProbabilityOfDepth:           "震源の深さの確からしさ",
	FieldProbabilityOfMagnitude:       "マグニチュードの確からしさ",
	FieldProbabilityOfPosition:        "震央の確からしさ",
	FieldProbabilityOfDepthJMA:        "震源の深さの確からしさ(気象庁の部内システムでの利用)",
	FieldLandOrSea:                    "震央位置の海陸判定",
	FieldWarning:                      "警報を含む内容かどうか",
	FieldPredictionMethod:             "予測手法",
	FieldChange:                       "最大予測震度の変化",
	FieldReasonOfChange:               "最大予測震度の変化の理由",
}

const (
	textTimeLayout    = "2006-01-02 15:04:05"
	arrivalTimeLayout = "15:04:05"
	areaNameWidth     = 20
	intensityWidth    = 4
)

// Text renders all fields as human readable Japanese text, one field per line, followed by the EBI records.
func (b *Bulletin) Text() (string, error) {
	fields, err := b.Fields()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	number, _ := fields.Get(FieldNumber)
	fmt.Fprintf(&buf, "緊急地震速報 (第%d報)\n", number)
	fmt.Fprintln(&buf, "--------")
	for _, f := range fields {
		if f.Field == FieldEBI {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\n", fieldCaptions[f.Field], b.formatValue(f.Value))
	}

	value, _ := fields.Get(FieldEBI)
	forecasts, _ := value.([]Forecast)
	if len(forecasts) == 0 {
		return buf.String(), nil
	}
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintln(&buf, "地域毎の警報の判別、最大予測震度及び主要動到達予測時刻:")
	for _, forecast := range forecasts {
		fmt.Fprintf(&buf, "%s 最大予測震度: %s 予想到達時刻: %s 警報: %s\n",
			PadRight(forecast.AreaName, areaNameWidth),
			PadRight(b.formatValue(forecast.Intensity), intensityWidth),
			b.formatArrival(forecast),
			b.formatValue(forecast.Warning),
		)
	}
	return buf.String(), nil
}

type specifier interface {
	IsSpecified() bool
}

func (b *Bulletin) formatValue(value any) string {
	switch v := value.(type) {
	case Code:
		return v.Label
	case time.Time:
		return v.Format(textTimeLayout)
	case IntensityRange:
		if !v.From.IsSpecified() && !v.To.IsSpecified() {
			return b.decoder.unsetLabel
		}
		return v.String()
	case specifier:
		if !v.IsSpecified() {
			return b.decoder.unsetLabel
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

func (b *Bulletin) formatArrival(forecast Forecast) string {
	if forecast.Arrived.OrElse(false) {
		return "すでに到達"
	}
	arrivalTime, ok := forecast.ArrivalTime.Get()
	if !ok {
		return b.decoder.unsetLabel
	}
	return arrivalTime.Format(arrivalTimeLayout)
}

package eew

import (
	"encoding/json"
)

// Field identifies a field of the telegram. The names are used as keys in Fields and in FormatError.
type Field string

// All fields of the telegram in canonical order, see [CF] and Fields.
const (
	FieldType                         Field = "type"
	FieldOrigin                       Field = "from"
	FieldDrillType                    Field = "drill_type"
	FieldReportTime                   Field = "report_time"
	FieldNumberOfTelegrams            Field = "number_of_telegram"
	FieldContinued                    Field = "continue"
	FieldEarthquakeTime               Field = "earthquake_time"
	FieldID                           Field = "id"
	FieldStatus                       Field = "status"
	FieldFinal                        Field = "final"
	FieldNumber                       Field = "number"
	FieldEpicenter                    Field = "epicenter"
	FieldPosition                     Field = "position"
	FieldDepth                        Field = "depth"
	FieldMagnitude                    Field = "magnitude"
	FieldMaxIntensity                 Field = "seismic_intensity"
	FieldObservationPointsOfMagnitude Field = "observation_points_of_magnitude"
	FieldProbabilityOfDepth           Field = "probability_of_depth"
	FieldProbabilityOfMagnitude       Field = "probability_of_magnitude"
	FieldProbabilityOfPosition        Field = "probability_of_position"
	FieldProbabilityOfDepthJMA        Field = "probability_of_depth_jma"
	FieldLandOrSea                    Field = "land_or_sea"
	FieldWarning                      Field = "warning"
	FieldPredictionMethod             Field = "prediction_method"
	FieldChange                       Field = "change"
	FieldReasonOfChange               Field = "reason_of_change"
	FieldEBI                          Field = "ebi"
)

// Fields that do not appear in the canonical order.
const (
	FieldSize           Field = "size"
	FieldEBIAreaCode    Field = "ebi.area_code"
	FieldEBIAreaName    Field = "ebi.area_name"
	FieldEBIIntensity   Field = "ebi.intensity"
	FieldEBIArrivalTime Field = "ebi.arrival_time"
	FieldEBIWarning     Field = "ebi.warning"
	FieldEBIArrival     Field = "ebi.arrival"
)

// Kind partitions the values of an enumerated field.
type Kind byte

// All kinds of enumerated values.
const (
	// Defined values have a meaning defined by [CF].
	Defined Kind = iota
	// Reserved values are valid, but have no meaning yet (未定義, 予備).
	Reserved
	// Unset values indicate that the field is unknown or not set (不明又は未設定).
	Unset
)

func (k Kind) String() string {
	switch k {
	case Defined:
		return "defined"
	case Reserved:
		return "reserved"
	case Unset:
		return "unset"
	default:
		return "unknown"
	}
}

// ReservedLabel is the default text for reserved values (未定義).
const ReservedLabel = "未定義"

// Code is the decoded value of an enumerated field.
type Code struct {
	Field Field
	Raw   string
	Kind  Kind
	Label string
}

// IsSpecified reports whether the code carries a value, i.e. it is not the unset placeholder.
func (c Code) IsSpecified() bool {
	return c.Kind != Unset
}

func (c Code) String() string {
	return c.Label
}

// MarshalJSON encodes the code as an object with the raw code, its kind, and its label.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code  string `json:"code"`
		Kind  string `json:"kind"`
		Label string `json:"label"`
	}{c.Raw, c.Kind.String(), c.Label})
}

// codeSet defines which raw values of an enumerated field are defined, reserved, or unset.
type codeSet map[string]Kind

func newCodeSet(defined, reserved, unset []string) codeSet {
	result := make(codeSet, len(defined)+len(reserved)+len(unset))
	for _, v := range defined {
		result[v] = Defined
	}
	for _, v := range reserved {
		result[v] = Reserved
	}
	for _, v := range unset {
		result[v] = Unset
	}
	return result
}

func chars(s string) []string {
	result := make([]string, len(s))
	for i := range s {
		result[i] = s[i : i+1]
	}
	return result
}

// codeField locates an enumerated field in the telegram.
type codeField struct {
	field  Field
	offset int
	length int
	codes  codeSet
}

var (
	originProbabilityCodes = newCodeSet(chars("12345678"), chars("9"), chars("/"))
	flagCodes              = newCodeSet(chars("01"), chars("23456789"), chars("/"))

	typeField              = codeField{FieldType, 0, 2, newCodeSet([]string{"35", "36", "37", "39"}, nil, nil)}
	originField            = codeField{FieldOrigin, 3, 2, newCodeSet([]string{"01", "02", "03", "04", "05", "06"}, nil, nil)}
	drillTypeField         = codeField{FieldDrillType, 6, 2, newCodeSet([]string{"00", "01", "10", "11", "20", "30"}, nil, nil)}
	statusField            = codeField{FieldStatus, 59, 1, newCodeSet(chars("06789"), nil, chars("/"))}
	probabilityOfPosition  = codeField{FieldProbabilityOfPosition, 113, 1, originProbabilityCodes}
	probabilityOfDepth     = codeField{FieldProbabilityOfDepth, 114, 1, originProbabilityCodes}
	probabilityOfMagnitude = codeField{FieldProbabilityOfMagnitude, 115, 1, newCodeSet(chars("234568"), chars("179"), chars("/0"))}
	observationPoints      = codeField{FieldObservationPointsOfMagnitude, 116, 1, newCodeSet(chars("12345"), chars("06789"), chars("/"))}
	probabilityOfDepthJMA  = codeField{FieldProbabilityOfDepthJMA, 117, 1, newCodeSet(chars("12349"), chars("05678"), chars("/"))}
	landOrSeaField         = codeField{FieldLandOrSea, 121, 1, newCodeSet(chars("01"), chars("23456789"), chars("/"))}
	predictionMethodField  = codeField{FieldPredictionMethod, 123, 1, newCodeSet(chars("9"), chars("012345678"), chars("/"))}
	changeField            = codeField{FieldChange, 129, 1, newCodeSet(chars("012"), chars("3456789"), chars("/"))}
	reasonOfChangeField    = codeField{FieldReasonOfChange, 130, 1, newCodeSet(chars("012349"), chars("5678"), chars("/"))}
)

var originProbabilityLabels = map[string]string{
	"1": "P波/S波レベル越え、またはIPF法(1点) または仮定震源要素の場合",
	"2": "IPF法(2点)",
	"3": "IPF法(3点/4点)",
	"4": "IPF法(5点)",
	"5": "防災科研システム(4点以下、または精度情報なし)[防災科研Hi-netデータ]",
	"6": "防災科研システム(5点以上)[防災科研Hi-netデータ]",
	"7": "EPOS(海域[観測網外])",
	"8": "EPOS(内陸[観測網内])",
	"9": "予備",
}

// Labels maps the raw values of each enumerated field to their text.
type Labels map[Field]map[string]string

// DefaultLabels returns a fresh copy of the built-in label texts, see [CF].
func DefaultLabels() Labels {
	return Labels{
		FieldType: {
			"35": "最大予測震度のみの高度利用者向け緊急地震速報",
			"36": "マグニチュード、最大予測震度及び主要動到達予測時刻の高度利用者向け緊急地震速報(B-Δ法、テリトリ法)",
			"37": "マグニチュード、最大予測震度及び主要動到達予測時刻の高度利用者向け緊急地震速報(グリッドサーチ法、EPOS自動処理手法)",
			"39": "キャンセル報",
		},
		FieldOrigin: {
			"01": "札幌",
			"02": "仙台",
			"03": "東京",
			"04": "大阪",
			"05": "福岡",
			"06": "沖縄",
		},
		FieldDrillType: {
			"00": "通常",
			"01": "訓練",
			"10": "取り消し",
			"11": "訓練取り消し",
			"20": "参考情報またはテキスト",
			"30": "コード部のみの配信試験",
		},
		FieldStatus: {
			"0": "通常発表",
			"6": "情報内容の訂正",
			"7": "キャンセルを誤って発表した場合の訂正",
			"8": "訂正事項を盛り込んだ最終の高度利用者向け緊急地震速報",
			"9": "最終の高度利用者向け緊急地震速報",
		},
		FieldProbabilityOfPosition: copyLabels(originProbabilityLabels),
		FieldProbabilityOfDepth:    copyLabels(originProbabilityLabels),
		FieldProbabilityOfMagnitude: {
			"2": "防災科研システム[防災科研Hi-netデータ]",
			"3": "全点P相",
			"4": "P相/全相混在",
			"5": "全点全相",
			"6": "EPOS",
			"8": "P波/S波レベル越え または仮定震源要素の場合",
			"9": "予備",
		},
		FieldObservationPointsOfMagnitude: {
			"1": "1点、P波/S波レベル超え、または仮定震源要素",
			"2": "2点",
			"3": "3点",
			"4": "4点",
			"5": "5点以上",
		},
		FieldProbabilityOfDepthJMA: {
			"1": "P波/S波レベル越え、IPF法(1点)、または仮定震源要素",
			"2": "IPF法(2点)",
			"3": "IPF法(3点/4点)",
			"4": "IPF法(5点以上)",
			"9": "震源とマグニチュードに基づく震度予測手法の精度が最終報相当",
		},
		FieldLandOrSea: {
			"0": "陸域",
			"1": "海域",
		},
		FieldPredictionMethod: {
			"9": "震源とマグニチュードによる震度推定手法において震源要素が推定できず、PLUM 法による震度予測のみが有効である場合",
		},
		FieldChange: {
			"0": "ほとんど変化無し",
			"1": "最大予測震度が1.0以上大きくなった",
			"2": "最大予測震度が1.0以上小さくなった",
		},
		FieldReasonOfChange: {
			"0": "変化無し",
			"1": "主としてMが変化したため(1.0以上)",
			"2": "主として震源位置が変化したため(10.0km以上)",
			"3": "M及び震源位置が変化したため",
			"4": "震源の深さが変化したため",
			"9": "PLUM 法による予測により変化したため",
		},
	}
}

func copyLabels(labels map[string]string) map[string]string {
	result := make(map[string]string, len(labels))
	for k, v := range labels {
		result[k] = v
	}
	return result
}

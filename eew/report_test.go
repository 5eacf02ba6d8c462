package eew

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletin_Fields(t *testing.T) {
	b := mustParse(t, fullTelegram)

	fields, err := b.Fields()
	require.NoError(t, err)

	expectedOrder := []Field{
		FieldType, FieldOrigin, FieldDrillType, FieldReportTime, FieldNumberOfTelegrams, FieldContinued,
		FieldEarthquakeTime, FieldID, FieldStatus, FieldFinal, FieldNumber, FieldEpicenter, FieldPosition,
		FieldDepth, FieldMagnitude, FieldMaxIntensity, FieldObservationPointsOfMagnitude, FieldProbabilityOfDepth,
		FieldProbabilityOfMagnitude, FieldProbabilityOfPosition, FieldProbabilityOfDepthJMA, FieldLandOrSea,
		FieldWarning, FieldPredictionMethod, FieldChange, FieldReasonOfChange, FieldEBI,
	}
	actualOrder := make([]Field, len(fields))
	for i, f := range fields {
		actualOrder[i] = f.Field
	}
	assert.Equal(t, expectedOrder, actualOrder)

	id, ok := fields.Get(FieldID)
	assert.True(t, ok)
	assert.Equal(t, "20110415233435", id)

	number, ok := fields.Get(FieldNumber)
	assert.True(t, ok)
	assert.Equal(t, 5, number)

	forecasts, ok := fields.Get(FieldEBI)
	assert.True(t, ok)
	assert.Len(t, forecasts, 17)

	_, ok = fields.Get(FieldSize)
	assert.False(t, ok)
}

func TestBulletin_FieldsFailsOnFirstInvalidField(t *testing.T) {
	b := mustParse(t, replaceAt(replaceAt(fullTelegram, 101, "0/0"), 3, "99"))

	fields, err := b.Fields()

	assert.Nil(t, fields)
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, FieldOrigin, formatErr.Field)
}

func TestBulletin_Validate(t *testing.T) {
	assert.NoError(t, mustParse(t, fullTelegram).Validate())
	assert.NoError(t, mustParse(t, seaTelegram).Validate())
	assert.NoError(t, mustParse(t, cancelTelegram).Validate())

	b := mustParse(t, replaceAt(replaceAt(fullTelegram, 101, "0/0"), 3, "99"))
	err := b.Validate()
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), string(FieldOrigin))
	assert.Contains(t, err.Error(), string(FieldDepth))
	assert.False(t, b.Valid())
}

func TestBulletin_ValidAgreesWithAccessors(t *testing.T) {
	b := mustParse(t, replaceAt(fullTelegram, ebiOffset, "999"))

	_, err := b.Forecasts()
	assert.Error(t, err)
	assert.False(t, b.Valid())
}

func TestFields_MarshalJSON(t *testing.T) {
	b := mustParse(t, seaTelegram)
	fields, err := b.Fields()
	require.NoError(t, err)

	actual, err := json.Marshal(fields)
	require.NoError(t, err)

	text := string(actual)
	assert.True(t, strings.HasPrefix(text, `{"type":{"code":"37","kind":"defined","label":`), text)
	assert.True(t, strings.HasSuffix(text, `"ebi":[]}`), text)
	assert.Less(t, strings.Index(text, `"id"`), strings.Index(text, `"status"`))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(actual, &decoded))
	assert.Equal(t, "20141215195438", decoded["id"])
	assert.Equal(t, 3.8, decoded["magnitude"])
	assert.Equal(t, true, decoded["final"])
	assert.Equal(t, map[string]any{"code": 309.0, "name": "千葉県南東沖"}, decoded["epicenter"])
	assert.Equal(t, map[string]any{"lat": 35.0, "lon": 140.3}, decoded["position"])
	assert.Equal(t, "2", decoded["seismic_intensity"])
}

func TestFields_MarshalJSONUnspecified(t *testing.T) {
	b := mustParse(t, cancelTelegram)
	fields, err := b.Fields()
	require.NoError(t, err)

	actual, err := json.Marshal(fields)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(actual, &decoded))
	assert.Nil(t, decoded["epicenter"])
	assert.Nil(t, decoded["position"])
	assert.Nil(t, decoded["depth"])
	assert.Nil(t, decoded["warning"])
	assert.Equal(t, map[string]any{"code": "/", "kind": "unset", "label": UnspecifiedLabel}, decoded["land_or_sea"])
}

func TestBulletin_Text(t *testing.T) {
	b := mustParse(t, fullTelegram)

	actual, err := b.Text()
	require.NoError(t, err)

	lines := strings.Split(actual, "\n")
	assert.Equal(t, "緊急地震速報 (第5報)", lines[0])
	assert.Contains(t, actual, "電文の発表時刻: 2011-04-15 23:34:53\n")
	assert.Contains(t, actual, "震央地名: 福島県浜通り\n")
	assert.Contains(t, actual, "震央の位置: N37.0 E140.8\n")
	assert.Contains(t, actual, "マグニチュード: 6.6\n")
	assert.Contains(t, actual, "最大予測震度: 6強\n")
	assert.Contains(t, actual, "予測手法: "+UnspecifiedLabel+"\n")
	assert.Contains(t, actual, "最終報かどうか: false\n")
	assert.Contains(t, actual, "福島県浜通り         最大予測震度: 6弱から6強 予想到達時刻: すでに到達 警報: true\n")
	assert.Contains(t, actual, "群馬県南部           最大予測震度: 4    予想到達時刻: 23:34:55 警報: false\n")
	assert.Contains(t, actual, "東京都２３区         最大予測震度: 4    予想到達時刻: 23:35:01 警報: false\n")
}

func TestBulletin_TextWithoutForecasts(t *testing.T) {
	b := mustParse(t, cancelTelegram)

	actual, err := b.Text()
	require.NoError(t, err)

	assert.Contains(t, actual, "電文種別: キャンセル報\n")
	assert.Contains(t, actual, "震央地名: "+UnspecifiedLabel+"\n")
	assert.NotContains(t, actual, "地域毎の警報の判別")
}

func TestBulletin_TextInvalid(t *testing.T) {
	b := mustParse(t, replaceAt(fullTelegram, 0, "99"))

	_, err := b.Text()
	assert.ErrorIs(t, err, ErrFormat)
}

func TestBulletin_String(t *testing.T) {
	assert.Equal(t, "20110415233435 (第5報) 福島県浜通り 震度6強", mustParse(t, fullTelegram).String())
	assert.Equal(t, "20181001002656 (第2報) 不明又は未設定 震度不明又は未設定", mustParse(t, cancelTelegram).String())
}

func TestCompare(t *testing.T) {
	third := mustParse(t, replaceAt(fullTelegram, 60, "03"))
	fifth := mustParse(t, fullTelegram)
	tenth := mustParse(t, replaceAt(fullTelegram, 60, "10"))
	from2014 := mustParse(t, seaTelegram)
	from2018 := mustParse(t, cancelTelegram)

	assert.Equal(t, 0, Compare(fifth, mustParse(t, fullTelegram)))
	assert.Equal(t, -1, Compare(third, fifth))
	assert.Equal(t, 1, Compare(tenth, fifth))
	assert.Equal(t, -1, Compare(fifth, from2018))
	assert.Equal(t, 1, Compare(from2018, from2014))

	bulletins := []*Bulletin{from2018, tenth, from2014, third, fifth}
	sort.Slice(bulletins, func(i, j int) bool { return Compare(bulletins[i], bulletins[j]) < 0 })
	assert.Equal(t, []*Bulletin{third, fifth, tenth, from2014, from2018}, bulletins)
}

/*
The package eew decodes the code telegram of the Earthquake Early Warning for advanced users (高度利用者向け緊急地震速報)
as it is disseminated by the Japan Meteorological Agency. This implementation is based on:
  [CF]  気象庁 緊急地震速報(予報) 高度利用者向け コード電文フォーマット
  [EXC] http://eew.mizar.jp/excodeformat

The telegram is a flat ASCII text. Every field lives at a fixed byte offset; line breaks are part of the
text and count like every other byte. A telegram has at least 135 bytes. It may be followed by the EBI block
which contains one 20 byte record per forecast area.

Abbreviations:
EEW: Earthquake Early Warning
EBI: the block of regional forecasts (地域毎の警報の判別、最大予測震度及び主要動到達予測時刻)
JST: Japan Standard Time, all times in the telegram are given in JST

Placeholders:
Fields that are not set carry slashes ("/", "//", "///", "//// /////"). They decode to an unspecified Value,
never to zero.

*/
package eew

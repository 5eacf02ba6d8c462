package eew

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	fullTelegram = "37 03 00 110415233453 C11\n" +
		"110415233416\n" +
		"ND20110415233435 NCN005 JD////////////// JN///\n" +
		"251 N370 E1408 010 66 6+ RK66324 RT01/// RC13///\n" +
		"EBI 251 S6+6- ////// 11 300 S5+5- ////// 11 250 S5+5- ////// 11\n" +
		"310 S0404 ////// 11 311 S0404 ////// 11 252 S0404 ////// 11\n" +
		"301 S0404 ////// 11 221 S0404 ////// 01 340 S0404 ////// 01\n" +
		"341 S0404 ////// 01 321 S0404 233455 00 331 S0404 233457 10\n" +
		"350 S0404 233501 00 360 S0404 233508 00 243 S0403 ////// 01\n" +
		"330 S0403 233454 00 222 S0403 233455 00\n" +
		"9999=\n"

	seaTelegram = "37 03 00 141215195526 C11\n" +
		"141215195426\n" +
		"ND20141215195438 NCN903 JD////////////// JN003\n" +
		"309 N350 E1403 070 38 02 RK77604 RT10/// RC0////\n" +
		"9999="

	cancelTelegram = "39 04 10 181001002707 C11\n" +
		"181001002656\n" +
		"ND20181001002656 NCN002 JD////////////// JN///\n" +
		"/// //// ///// /// // // RK///// RT///// RC/////\n" +
		"9999="

	truncatedTelegram = "37 03 00 110415005029 C11\n" +
		"110415004944\n" +
		"ND20110415005001 NCN001 JD////////////// JN///\n" +
		"189 N430 E1466 070 41 02 RK66204 RT10/// RC////\n"
)

// replaceAt returns the telegram text with the bytes at offset replaced by value.
func replaceAt(text string, offset int, value string) string {
	return text[:offset] + value + text[offset+len(value):]
}

func mustParse(t *testing.T, text string) *Bulletin {
	t.Helper()
	result, err := NewDecoder().Parse(text)
	require.NoError(t, err)
	return result
}

func jst(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, JST)
}

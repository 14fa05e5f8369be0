package journal

import (
	"strconv"
	"strings"
	"time"
)

// serialEpochOffset is the day count between the spreadsheet epoch
// (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

type dateKind int

const (
	dateEmpty dateKind = iota
	dateSerial
	dateSlash
	datePassthrough
)

// classifyDate sniffs a raw date value of unknown encoding. Spreadsheet
// readers hand every cell over as a string, so an all-numeric string counts
// as a serial day-count too; a digit-only string can never be a slash or ISO
// date, so the precedence order is preserved.
func classifyDate(v any) (dateKind, float64, string) {
	switch d := v.(type) {
	case nil:
		return dateEmpty, 0, ""
	case float64:
		if d == 0 {
			return dateEmpty, 0, ""
		}
		return dateSerial, d, ""
	case float32:
		return classifyDate(float64(d))
	case int:
		return classifyDate(float64(d))
	case int64:
		return classifyDate(float64(d))
	case string:
		if d == "" {
			return dateEmpty, 0, ""
		}
		if f, err := strconv.ParseFloat(d, 64); err == nil {
			return classifyDate(f)
		}
		if strings.Contains(d, "/") {
			return dateSlash, 0, d
		}
		return datePassthrough, 0, d
	default:
		return dateEmpty, 0, ""
	}
}

// NormalizeDate converts a raw date value of unknown encoding into a
// canonical YYYY-MM-DD string. Recognized encodings, in order: spreadsheet
// serial day-counts, slash-delimited M/D/YYYY, and anything else unchanged.
// Malformed strings propagate as-is; empty or absent input yields "".
func NormalizeDate(v any) string {
	kind, serial, s := classifyDate(v)
	switch kind {
	case dateSerial:
		return serialToISO(serial)
	case dateSlash:
		return slashToISO(s)
	case datePassthrough:
		return s
	default:
		return ""
	}
}

// serialToISO truncates to the date component; no time of day is kept.
func serialToISO(serial float64) string {
	secs := int64((serial - serialEpochOffset) * 86400)
	return time.Unix(secs, 0).UTC().Format("2006-01-02")
}

func slashToISO(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "-" + pad2(parts[0]) + "-" + pad2(parts[1])
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

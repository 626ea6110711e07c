package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rcliao/learning-journal/internal/model"
)

// looseInts are record members that older or hand-edited data may hold as
// strings or fractional numbers.
var looseInts = []string{"sessionNumber", "durationMinutes"}

// decodeSession decodes one stored record. Numeric members given as strings
// are coerced: numeric text becomes the number, anything else becomes 0
// (absent for mentalEffortScore). Only records that are not JSON objects
// or still fail after coercion are reported.
func decodeSession(raw json.RawMessage) (model.Session, error) {
	if isNull(raw) {
		return model.Session{}, errNullRecord
	}

	var s model.Session
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Session{}, err
	}
	for _, name := range looseInts {
		if v, ok := fields[name]; ok {
			n, _ := looseInt(v)
			fields[name] = json.RawMessage(strconv.Itoa(n))
		}
	}
	if v, ok := fields["mentalEffortScore"]; ok {
		if n, ok := looseInt(v); ok {
			fields["mentalEffortScore"] = json.RawMessage(strconv.Itoa(n))
		} else {
			fields["mentalEffortScore"] = json.RawMessage("null")
		}
	}
	if v, ok := fields["repeatNeeded"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			var str string
			_ = json.Unmarshal(v, &str)
			b = strings.EqualFold(strings.TrimSpace(str), "true")
		}
		fields["repeatNeeded"] = json.RawMessage(strconv.FormatBool(b))
	}

	fixed, err := json.Marshal(fields)
	if err != nil {
		return model.Session{}, err
	}
	if err := json.Unmarshal(fixed, &s); err != nil {
		return model.Session{}, err
	}
	return s, nil
}

var errNullRecord = errors.New("record is null")

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// looseInt reads a JSON number or numeric string. ok is false when the
// value holds no number.
func looseInt(v json.RawMessage) (int, bool) {
	if isNull(v) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return int(math.Round(f)), true
	}
	var str string
	if err := json.Unmarshal(v, &str); err != nil {
		return 0, false
	}
	str = strings.TrimSpace(str)
	if n, err := strconv.Atoi(str); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(math.Round(f)), true
	}
	return 0, false
}

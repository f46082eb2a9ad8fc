package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexFloat decodes a JSON number that the backend may deliver either as a
// number or as a numeric string (Django serializes DecimalField as string).
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0

		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("decoding numeric string: %w", err)
		}

		if str == "" {
			*f = 0

			return nil
		}

		value, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("parsing numeric string %q: %w", str, err)
		}

		*f = FlexFloat(value)

		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}

	*f = FlexFloat(value)

	return nil
}

// MarshalJSON emits the value as a two-decimal string, matching how the
// backend serializes decimals on the wire.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(f), 'f', 2, 64))
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

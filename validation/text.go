package validation

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Text is a string field that also accepts a bare JSON number, kept verbatim
// ("gravity": 1 and "gravity": "1" both decode to "1").
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf("")}
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

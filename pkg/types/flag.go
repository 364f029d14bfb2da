package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is a yes/no field on a client record. It is stored as an integer
// 0/1 and always marshals to a JSON boolean. On input any JSON value is
// accepted and reduced to its truthiness, so 1, "yes" and true are all set
// while 0, "", null and false are not.
type Flag bool

func (f Flag) Bool() bool {
	return bool(f)
}

// Int is the stored form of the flag.
func (f Flag) Int() int64 {
	if f {
		return 1
	}
	return 0
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = false
		return nil
	}

	switch data[0] {
	case 'n':
		*f = false
	case 't':
		*f = true
	case 'f':
		*f = false
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode flag string: %w", err)
		}
		*f = s != ""
	case '[', '{':
		*f = true
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("decode flag %q: %w", data, err)
		}
		*f = n != 0
	}

	return nil
}

// Value stores the flag as 0 or 1.
func (f Flag) Value() (driver.Value, error) {
	return f.Int(), nil
}

func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case int64:
		*f = v != 0
	case int32:
		*f = v != 0
	case int16:
		*f = v != 0
	case bool:
		*f = Flag(v)
	case []byte:
		return f.scanString(string(v))
	case string:
		return f.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

func (f *Flag) scanString(s string) error {
	if s == "" {
		*f = false
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		b, berr := strconv.ParseBool(s)
		if berr != nil {
			return fmt.Errorf("cannot scan %q into Flag", s)
		}
		*f = Flag(b)
		return nil
	}

	*f = n != 0
	return nil
}

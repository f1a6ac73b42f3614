package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// timeLayouts are the textual forms drivers hand back for timestamp columns
// when they are not configured to parse them.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DbTime is the column type the orm generator maps timestamp columns to.
// It marshals to unix seconds and stores the zero time as NULL.
type DbTime struct {
	time.Time
}

func (t DbTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

func (t DbTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *DbTime) Scan(v any) error {
	switch value := v.(type) {
	case nil:
		*t = DbTime{}
		return nil
	case time.Time:
		*t = DbTime{Time: value}
		return nil
	case []byte:
		return t.parse(string(value))
	case string:
		return t.parse(value)
	}
	return fmt.Errorf("can not convert %v to timestamp", v)
}

func (t *DbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = DbTime{Time: parsed}
			return nil
		}
	}
	return fmt.Errorf("can not convert %q to timestamp", s)
}

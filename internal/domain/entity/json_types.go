package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	result := map[string]interface{}{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = JSON(result)
	return nil
}

// DayHours describes availability for a single weekday.
type DayHours struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// WeeklySchedule maps a lowercase weekday name to its hours, stored as JSONB.
type WeeklySchedule map[string]DayHours

func (s WeeklySchedule) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *WeeklySchedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	result := map[string]DayHours{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = WeeklySchedule(result)
	return nil
}

// StringList is a JSONB-backed string slice (article tags, polyclinic services).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	result := []string{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = StringList(result)
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
}

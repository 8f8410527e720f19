package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// JSONValue stores an arbitrary JSON fragment as text. Color and URL keys
// hold bare scalars ("#112233"); most keys hold an object wrapping a text
// field ({"text": "..."}).
type JSONValue []byte

func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return string(v), nil
}

func (v *JSONValue) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*v = nil
	case []byte:
		*v = append((*v)[:0], s...)
	case string:
		*v = append((*v)[:0], s...)
	default:
		return fmt.Errorf("cannot scan %T into JSONValue", src)
	}
	return nil
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	if v == nil {
		return errors.New("JSONValue: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[:0], data...)
	return nil
}

// SiteSetting is one key-value pair of site configuration.
type SiteSetting struct {
	Key      string    `gorm:"primaryKey;size:100" json:"key"`
	Value    JSONValue `gorm:"type:text" json:"value"`
	Category string    `gorm:"size:100;index;default:General" json:"category"`
}

func (SiteSetting) TableName() string { return "site_settings" }

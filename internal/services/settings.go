package services

import (
	"encoding/json"
	"strings"

	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
	"gorm.io/gorm"
)

// SiteSettingService reconciles the two stored shapes of a setting value:
// keys ending in _color or _url hold a bare scalar, every other key holds
// an object wrapping a text field.
type SiteSettingService struct {
	db *gorm.DB
}

func NewSiteSettingService(db *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: db}
}

// SettingUpdate is one entry of a bulk settings write.
type SettingUpdate struct {
	Value    json.RawMessage `json:"value"`
	Category string          `json:"category"`
}

// GetAll returns every setting keyed by its key.
func (s *SiteSettingService) GetAll() (map[string]models.SiteSetting, error) {
	var rows []models.SiteSetting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]models.SiteSetting, len(rows))
	for _, row := range rows {
		out[row.Key] = row
	}
	return out, nil
}

// Get returns a single setting row.
func (s *SiteSettingService) Get(key string) (*models.SiteSetting, error) {
	var row models.SiteSetting
	if err := s.db.Where("key = ?", key).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("setting not found")
		}
		return nil, err
	}
	return &row, nil
}

// GetText resolves a setting to its plain string value, unwrapping the
// {"text": ...} shape when present. Returns "" when absent or non-textual.
func (s *SiteSettingService) GetText(key string) string {
	row, err := s.Get(key)
	if err != nil {
		return ""
	}
	return textOf(row.Value)
}

// Upsert writes one key, normalizing the incoming value to the shape its
// key calls for. A stored row whose shape disagrees with the rule gets
// rewritten to the expected shape.
func (s *SiteSettingService) Upsert(key string, value json.RawMessage, category string) (*models.SiteSetting, error) {
	if category == "" {
		category = "General"
	}
	normalized := normalizeValue(key, value)

	var row models.SiteSetting
	err := s.db.Where("key = ?", key).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.SiteSetting{Key: key, Value: models.JSONValue(normalized), Category: category}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	row.Value = models.JSONValue(normalized)
	row.Category = category
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// BulkUpdate applies the single-key upsert for each entry and returns the
// full settings map afterwards.
func (s *SiteSettingService) BulkUpdate(updates map[string]SettingUpdate) (map[string]models.SiteSetting, error) {
	for key, upd := range updates {
		if _, err := s.Upsert(key, upd.Value, upd.Category); err != nil {
			return nil, err
		}
	}
	return s.GetAll()
}

// scalarKey reports whether a key stores its value as a bare scalar.
func scalarKey(key string) bool {
	return strings.HasSuffix(key, "_color") || strings.HasSuffix(key, "_url")
}

// normalizeValue reconciles an incoming JSON value with the shape its key
// requires. Plain strings are wrapped as {"text": ...} unless the key is
// color/URL-suffixed; a wrapped scalar on a color/URL key is unwrapped.
// Anything else (numbers, bools, arrays, foreign objects) passes through.
func normalizeValue(key string, raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return raw
	}

	switch v := decoded.(type) {
	case string:
		if scalarKey(key) {
			return raw
		}
		wrapped, _ := json.Marshal(map[string]string{"text": v})
		return wrapped
	case map[string]interface{}:
		if scalarKey(key) {
			if text, ok := v["text"].(string); ok {
				unwrapped, _ := json.Marshal(text)
				return unwrapped
			}
		}
		return raw
	default:
		return raw
	}
}

// textOf extracts the string behind either stored shape.
func textOf(value models.JSONValue) string {
	if len(value) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(value, &asString); err == nil {
		return asString
	}

	var asObject struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(value, &asObject); err == nil {
		return asObject.Text
	}
	return ""
}

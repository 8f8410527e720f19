package models

import "gorm.io/gorm"

type defaultSetting struct {
	Key      string
	Value    string // JSON fragment, already in its stored shape
	Category string
}

// Text-like keys are stored wrapped ({"text": ...}); keys ending in _color
// or _url are stored as bare scalars.
var defaultSettings = []defaultSetting{
	{"site_name", `{"text":"Habitat"}`, "General"},
	{"site_tagline", `{"text":"Tu socio confiable en bienes raíces."}`, "General"},
	{"contact_email", `{"text":"info@habitat.com"}`, "Contact"},
	{"contact_phone", `{"text":"+58 212 555 0100"}`, "Contact"},
	{"contact_address", `{"text":"Caracas, Venezuela"}`, "Contact"},
	{"footer_tagline", `{"text":"Tu socio confiable en bienes raíces."}`, "Footer"},
	{"facebook_profile_url", `"https://facebook.com/habitat"`, "Social"},
	{"instagram_profile_url", `"https://instagram.com/habitat"`, "Social"},
	{"whatsapp_contact_url", `"https://wa.me/582125550100"`, "Social"},
	{"about_page_main_title", `{"text":"Sobre Nosotros"}`, "AboutPage"},
	{"about_page_main_paragraph", `{"text":"Comprometidos con encontrar tu espacio ideal."}`, "AboutPage"},
	{"about_page_mission_title", `{"text":"Nuestra Misión"}`, "AboutPage"},
	{"about_page_vision_title", `{"text":"Nuestra Visión"}`, "AboutPage"},
	{"theme_primary_color", `"#282e4b"`, "ThemeColors"},
	{"theme_secondary_color", `"#242c3c"`, "ThemeColors"},
	{"theme_accent_color", `"#c8a773"`, "ThemeColors"},
	{"theme_text_color_on_dark", `"#FFFFFF"`, "ThemeColors"},
	{"theme_header_background_color", `"#f3f4f6"`, "ThemeColors"},
	{"theme_header_text_color", `"#111827"`, "ThemeColors"},
	{"theme_footer_background_color", `"#f3f4f6"`, "ThemeColors"},
	{"theme_footer_text_color", `"#111827"`, "ThemeColors"},
	{"theme_border_color", `"#4b5563"`, "ThemeColors"},
	{"theme_success_color", `"#16a34a"`, "ThemeColors"},
}

// SeedDefaultSettings creates any missing default settings. Existing rows
// are left untouched, so running it at every boot is safe.
func SeedDefaultSettings(db *gorm.DB) error {
	for _, s := range defaultSettings {
		var count int64
		db.Model(&SiteSetting{}).Where("key = ?", s.Key).Count(&count)
		if count == 0 {
			row := SiteSetting{Key: s.Key, Value: JSONValue(s.Value), Category: s.Category}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

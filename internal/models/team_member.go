package models

// TeamMember is an entry on the public team page. Ordering is a plain
// integer with no uniqueness enforced.
type TeamMember struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Position string `gorm:"size:200" json:"position"`
	ImageURL string `gorm:"size:500" json:"image_url"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
}

func (TeamMember) TableName() string { return "team_members" }

package models

// HeroSlide is one slide of the landing-page carousel. Display order is the
// ascending Order value, not creation time.
type HeroSlide struct {
	BaseModel
	ImagePath      string `json:"imagePath"`
	TitleArabic    string `json:"titleArabic"`
	SubtitleArabic string `json:"subtitleArabic"`
	Link           string `json:"link"`
	Order          int    `gorm:"column:display_order" json:"order"`
	IsActive       bool   `json:"isActive"`
}

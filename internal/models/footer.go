package models

// FooterContent stores the storefront footer copy and contact links managed
// from the admin panel. There is exactly one logical row; SingletonKey is the
// fixed identity that makes first-read creation race-free.
type FooterContent struct {
	BaseModel
	SingletonKey string `gorm:"uniqueIndex;not null" json:"-"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`

	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	TikTok    string `gorm:"column:tiktok" json:"tiktok"`
	Snapchat  string `json:"snapchat"`

	AboutText    string `json:"aboutText"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
}

// FooterSingletonKey is the fixed identity of the footer document.
const FooterSingletonKey = "footer"

// FooterDefaults returns the fallback footer used when no row exists yet.
func FooterDefaults() FooterContent {
	return FooterContent{
		SingletonKey: FooterSingletonKey,
		Email:        "info@shafi-store.com",
		Phone:        "+966 50 000 0000",
		AboutText:    "متجر شافي للتمور والعود والعسل الفاخر",
		Address:      "المملكة العربية السعودية",
		WorkingHours: "السبت - الخميس: 9 صباحاً - 10 مساءً",
	}
}

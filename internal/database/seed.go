package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/shafistore/internal/models"
)

var initialSlides = []models.HeroSlide{
	{
		TitleArabic:    "تمور الإخلاص.. ذهب الأحساء في بيتك",
		SubtitleArabic: "أجود أنواع التمور السعودية",
		ImagePath:      "/assets/hero/slide1.jpg",
		Link:           "/dates",
		Order:          1,
		IsActive:       true,
	},
	{
		TitleArabic:    "عجوة المدينة.. بركة من أرض طيبة",
		SubtitleArabic: "تمور مباركة من المدينة المنورة",
		ImagePath:      "/assets/hero/slide2.jpg",
		Link:           "/dates",
		Order:          2,
		IsActive:       true,
	},
	{
		TitleArabic:    "العود الملكي.. عبق التراث السعودي",
		SubtitleArabic: "عود فاخر يليق بمقامكم",
		ImagePath:      "/assets/hero/slide3.jpg",
		Link:           "/oud",
		Order:          3,
		IsActive:       true,
	},
}

// SeedHeroSlides inserts the starter carousel when the slide table is empty.
// Safe to call on every startup.
func SeedHeroSlides(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.HeroSlide{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding initial hero slides")
	return conn.Create(&initialSlides).Error
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// LandingSettingsModel = baris tunggal (id=1) pengaturan situs publik.
type LandingSettingsModel struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	HeroTitle    string `gorm:"column:hero_title;type:varchar(200)" json:"hero_title"`
	HeroSubtitle string `gorm:"column:hero_subtitle;type:varchar(200)" json:"hero_subtitle"`
	HeroCTAText  string `gorm:"column:hero_cta_text;type:varchar(100)" json:"hero_cta_text"`
	HeroCTAURL   string `gorm:"column:hero_cta_url;type:varchar(200)" json:"hero_cta_url"`

	AboutTitle   string `gorm:"column:about_title;type:varchar(200)" json:"about_title"`
	AboutContent string `gorm:"column:about_content;type:text" json:"about_content"`

	ContactAddress string `gorm:"column:contact_address;type:text" json:"contact_address"`
	ContactEmail   string `gorm:"column:contact_email;type:varchar(160)" json:"contact_email"`
	ContactPhone   string `gorm:"column:contact_phone;type:varchar(40)" json:"contact_phone"`

	LogoURL          string `gorm:"column:logo_url;type:text" json:"logo_url"`
	FaviconURL       string `gorm:"column:favicon_url;type:text" json:"favicon_url"`
	HeroImageURL     string `gorm:"column:hero_image_url;type:text" json:"hero_image_url"`
	TutorialVideoURL string `gorm:"column:tutorial_video_url;type:text" json:"tutorial_video_url"`
	TutorialPDFURL   string `gorm:"column:tutorial_pdf_url;type:text" json:"tutorial_pdf_url"`

	// kantong fleksibel utk tautan sosial/metadata tambahan tanpa migrasi
	Extra datatypes.JSON `gorm:"column:extra" json:"extra,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LandingSettingsModel) TableName() string { return "landing_page_settings" }

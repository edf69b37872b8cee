package model

import "time"

// PKBMModel = unit PKBM (Pusat Kegiatan Belajar Masyarakat), tenant utama.
// Semua siswa dan user non-Super-Admin terikat ke satu PKBM.
type PKBMModel struct {
	ID                 uint     `gorm:"column:id;primaryKey" json:"id"`
	Name               string   `gorm:"column:name;type:varchar(160);not null" json:"name"`
	NPSN               *string  `gorm:"column:npsn;type:varchar(20)" json:"npsn"`
	Email              *string  `gorm:"column:email;type:varchar(160)" json:"email"`
	Address            *string  `gorm:"column:address;type:text" json:"address"`
	Latitude           *float64 `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude          *float64 `gorm:"column:longitude" json:"longitude,omitempty"`
	ContactPersonName  *string  `gorm:"column:contact_person_name;type:varchar(120)" json:"contact_person_name,omitempty"`
	ContactPersonPhone *string  `gorm:"column:contact_person_phone;type:varchar(40)" json:"contact_person_phone,omitempty"`
	ClassroomURL       *string  `gorm:"column:classroom_url;type:text" json:"classroom_url,omitempty"`
	HeadName           *string  `gorm:"column:head_name;type:varchar(120)" json:"head_name,omitempty"`
	TeacherName        *string  `gorm:"column:teacher_name;type:varchar(120)" json:"teacher_name,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PKBMModel) TableName() string { return "pkbm" }

package model

import "time"

// Kurikulum bersifat global (tidak per tenant):
// kategori → mapel → modul. Modul adalah unit terkecil yang dinilai.

type SubjectCategoryModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (SubjectCategoryModel) TableName() string { return "subject_categories" }

// Hapus kategori TIDAK menghapus mapel; category_id di-NULL-kan dan
// mapel tanpa kategori diurutkan paling akhir.
type SubjectModel struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	Name       string `gorm:"column:name;type:varchar(160);not null" json:"name"`
	SortOrder  int    `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CategoryID *uint  `gorm:"column:category_id;index" json:"category_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Category *SubjectCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }

// Hapus mapel ikut menghapus semua modulnya (dan transitif nilai-nilainya).
type ModuleModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	SubjectID uint   `gorm:"column:subject_id;not null;index" json:"subject_id"`
	Name      string `gorm:"column:name;type:varchar(160);not null" json:"name"`

	Subject *SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ModuleModel) TableName() string { return "modules" }

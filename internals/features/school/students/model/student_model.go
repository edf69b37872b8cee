package model

import (
	"time"

	pkbmModel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
)

// StudentModel = peserta didik, selalu milik satu PKBM.
// Hapus siswa ikut menghapus seluruh nilai miliknya (FK cascade di grades).
type StudentModel struct {
	ID     uint    `gorm:"column:id;primaryKey" json:"id"`
	Name   string  `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Email  *string `gorm:"column:email;type:varchar(160);uniqueIndex" json:"email"`
	NIK    *string `gorm:"column:nik;type:char(16);uniqueIndex" json:"nik"`
	NIS    string  `gorm:"column:nis;type:varchar(12);not null" json:"nis"`
	PKBMID uint    `gorm:"column:pkbm_id;not null;index" json:"pkbm_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	PKBM *pkbmModel.PKBMModel `gorm:"foreignKey:PKBMID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

package model

import (
	"time"

	pkbmModel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
)

// UserModel menyimpan akun login. Role menentukan scope visibilitas:
// Super Admin lintas tenant, selain itu terkunci ke pkbm_id miliknya.
type UserModel struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email    string `gorm:"column:email;type:varchar(160);not null;uniqueIndex" json:"email"`
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`
	Role     string `gorm:"column:role;type:varchar(30);not null" json:"role"`
	PKBMID   *uint  `gorm:"column:pkbm_id;index" json:"pkbm_id"`

	// token reset password sekali pakai
	ResetToken          *string    `gorm:"column:reset_token;type:varchar(64);index" json:"-"`
	ResetTokenExpiresAt *time.Time `gorm:"column:reset_token_expires_at" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	PKBM *pkbmModel.PKBMModel `gorm:"foreignKey:PKBMID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserModel) TableName() string { return "users" }

// internals/features/lembaga/pkbm/dto/pkbm_dto.go
package dto

import (
	"strings"

	pkbmmodel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
)

// Bentuk wire ke frontend memakai objek bersarang (coords, contactPerson),
// beda dengan kolom flat di tabel. Mapping dipusatkan di sini.

type Coords struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type ContactPerson struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type PKBMResponse struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	NPSN          *string       `json:"npsn"`
	Email         *string       `json:"email"`
	Address       *string       `json:"address"`
	Coords        Coords        `json:"coords"`
	ContactPerson ContactPerson `json:"contactPerson"`
	ClassroomURL  *string       `json:"classroom_url"`
	HeadName      *string       `json:"head_name"`
	TeacherName   *string       `json:"teacher_name"`
}

func ToPKBMResponse(m pkbmmodel.PKBMModel) PKBMResponse {
	return PKBMResponse{
		ID:            m.ID,
		Name:          m.Name,
		NPSN:          m.NPSN,
		Email:         m.Email,
		Address:       m.Address,
		Coords:        Coords{Lat: m.Latitude, Lng: m.Longitude},
		ContactPerson: ContactPerson{Name: m.ContactPersonName, Phone: m.ContactPersonPhone},
		ClassroomURL:  m.ClassroomURL,
		HeadName:      m.HeadName,
		TeacherName:   m.TeacherName,
	}
}

type SavePKBMRequest struct {
	ID            uint          `json:"id"` // 0 saat create
	Name          string        `json:"name" validate:"required,min=1,max=160"`
	NPSN          *string       `json:"npsn"`
	Email         *string       `json:"email" validate:"omitempty,email"`
	Address       *string       `json:"address"`
	Coords        Coords        `json:"coords"`
	ContactPerson ContactPerson `json:"contactPerson"`
	ClassroomURL  *string       `json:"classroom_url"`
	HeadName      *string       `json:"head_name"`
	TeacherName   *string       `json:"teacher_name"`

	// Opsional: sekalian buatkan akun Admin PKBM dalam transaksi yang sama.
	AdminEmail    string `json:"admin_email" validate:"omitempty,email"`
	AdminName     string `json:"admin_name"`
	AdminPassword string `json:"admin_password" validate:"omitempty,min=6"`
}

func (r *SavePKBMRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.AdminEmail = strings.ToLower(strings.TrimSpace(r.AdminEmail))
	r.AdminName = strings.TrimSpace(r.AdminName)
}

func (r *SavePKBMRequest) ToModel() pkbmmodel.PKBMModel {
	return pkbmmodel.PKBMModel{
		ID:                 r.ID,
		Name:               r.Name,
		NPSN:               r.NPSN,
		Email:              r.Email,
		Address:            r.Address,
		Latitude:           r.Coords.Lat,
		Longitude:          r.Coords.Lng,
		ContactPersonName:  r.ContactPerson.Name,
		ContactPersonPhone: r.ContactPerson.Phone,
		ClassroomURL:       r.ClassroomURL,
		HeadName:           r.HeadName,
		TeacherName:        r.TeacherName,
	}
}

package helper

import (
	"testing"

	"github.com/amdmunif/sood-wsb/internals/constants"
)

func uintPtr(v uint) *uint { return &v }

func TestResolveScope(t *testing.T) {
	superAdmin := AuthContext{UserID: 1, Role: constants.RoleSuperAdmin}
	adminPKBM := AuthContext{UserID: 2, Role: constants.RoleAdminPKBM, PKBMID: uintPtr(7)}
	peserta := AuthContext{UserID: 3, Role: constants.RolePesertaPKBM, PKBMID: uintPtr(4)}
	adminTanpaPKBM := AuthContext{UserID: 5, Role: constants.RoleAdminPKBM}

	tests := []struct {
		name      string
		ac        AuthContext
		requested string
		want      Scope
	}{
		{name: "super admin all", ac: superAdmin, requested: "all", want: Scope{All: true}},
		{name: "super admin kosong", ac: superAdmin, requested: "", want: Scope{All: true}},
		{name: "super admin id eksplisit", ac: superAdmin, requested: "3", want: Scope{PKBMID: 3}},
		{name: "super admin id invalid", ac: superAdmin, requested: "abc", want: Scope{All: true}},
		{name: "admin pkbm minta all tetap dikunci", ac: adminPKBM, requested: "all", want: Scope{PKBMID: 7}},
		{name: "admin pkbm minta tenant lain tetap dikunci", ac: adminPKBM, requested: "99", want: Scope{PKBMID: 7}},
		{name: "peserta dikunci ke tenantnya", ac: peserta, requested: "all", want: Scope{PKBMID: 4}},
		{name: "admin tanpa pkbm dapat scope kosong", ac: adminTanpaPKBM, requested: "all", want: Scope{PKBMID: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveScope(tt.ac, tt.requested); got != tt.want {
				t.Errorf("ResolveScope() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

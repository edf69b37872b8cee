package constants

// Role mengikuti label lama di database; jangan diubah tanpa migrasi data.
const (
	RoleSuperAdmin  = "Super Admin"
	RoleAdminPKBM   = "Admin PKBM"
	RolePesertaPKBM = "Peserta PKBM"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdminPKBM,
		RolePesertaPKBM,
	}

	// role yang boleh menulis nilai & data siswa di tenantnya
	AdminRoles = []string{
		RoleSuperAdmin,
		RoleAdminPKBM,
	}
)

func IsSuperAdmin(role string) bool { return role == RoleSuperAdmin }

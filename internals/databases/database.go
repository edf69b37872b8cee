package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amdmunif/sood-wsb/internals/configs"
	"github.com/amdmunif/sood-wsb/internals/constants"
	announcementModel "github.com/amdmunif/sood-wsb/internals/features/home/announcements/model"
	landingModel "github.com/amdmunif/sood-wsb/internals/features/home/landing/model"
	pkbmModel "github.com/amdmunif/sood-wsb/internals/features/lembaga/pkbm/model"
	curriculumModel "github.com/amdmunif/sood-wsb/internals/features/school/curriculum/model"
	gradeModel "github.com/amdmunif/sood-wsb/internals/features/school/grades/model"
	studentModel "github.com/amdmunif/sood-wsb/internals/features/school/students/model"
	userModel "github.com/amdmunif/sood-wsb/internals/features/users/user/model"
)

var DB *gorm.DB

// ConnectDB membuka koneksi sesuai DB_DRIVER (postgres default, mysql utk
// hosting lama).
func ConnectDB() {
	driver := configs.GetEnv("DB_DRIVER", "postgres")
	log.Printf("🔌 Koneksi ke database (%s)...", driver)

	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{Logger: configs.NewGormLogger()}

	switch driver {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			configs.GetEnv("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		db, err = gorm.Open(mysql.Open(dsn), cfg)
	default:
		sslmode := configs.GetEnv("DB_SSLMODE", "require")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sood&options=-c statement_timeout=5000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			configs.GetEnv("DB_PORT", "5432"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), cfg)
	}
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate seluruh tabel. Urutan penting:
// tabel induk dulu supaya FK cascade terbentuk.
func Migrate() {
	if err := DB.AutoMigrate(
		&pkbmModel.PKBMModel{},
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&curriculumModel.SubjectCategoryModel{},
		&curriculumModel.SubjectModel{},
		&curriculumModel.ModuleModel{},
		&gradeModel.GradeModel{},
		&announcementModel.AnnouncementModel{},
		&landingModel.LandingSettingsModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}

// SeedSuperAdmin membuat akun Super Admin pertama dari ENV bila tabel users
// masih kosong dari Super Admin.
func SeedSuperAdmin() {
	email := configs.GetEnv("SEED_ADMIN_EMAIL")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var cnt int64
	if err := DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleSuperAdmin).
		Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: gagal hash password: %v", err)
		return
	}
	admin := userModel.UserModel{
		Name:     configs.GetEnv("SEED_ADMIN_NAME", "Super Admin"),
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleSuperAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("✅ Super Admin awal dibuat: %s", email)
}

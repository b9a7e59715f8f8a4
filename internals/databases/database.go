package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"sekolahku_backend/internals/configs"
	assignmentModel "sekolahku_backend/internals/features/academics/assignment/model"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	subjectModel "sekolahku_backend/internals/features/academics/subject/model"
	tuitionModel "sekolahku_backend/internals/features/finance/tuition/model"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
)

// Open membuka koneksi Postgres dan mengembalikan handle-nya.
// Tidak ada singleton package-level: pemanggil (main) yang memegang *gorm.DB
// dan meneruskannya ke routes/controller.
func Open(cfg configs.Config) (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, err
	}

	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel aplikasi.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&teacherModel.TeacherModel{},
		&parentModel.ParentModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&gradeModel.GradeModel{},
		&assignmentModel.AssignmentModel{},
		&tuitionModel.TuitionInvoiceModel{},
	)
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

package database

import (
	"fmt"
	"os"
	"time"

	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/auth"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db  *gorm.DB
	log *applog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, lg *applog.Logger) *Seeder {
	return &Seeder{db: db, log: lg}
}

// SeedAll runs all seed functions in foreign-key order
func (s *Seeder) SeedAll() error {
	s.log.Info("Starting database seeding")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedDemoStudent(); err != nil {
		return fmt.Errorf("failed to seed demo student: %w", err)
	}

	s.log.Info("Database seeding completed")
	return nil
}

// SeedAdminUser creates the admin user from ADMIN_EMAIL / ADMIN_PASSWORD
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		s.log.Info("Admin user already exists, skipping")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		s.log.Warn("ADMIN_EMAIL and ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         "System Administrator",
		Role:         model.RoleAdmin,
		School:       "-",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	s.log.Info("Created admin user", "email", admin.Email)
	return nil
}

// SeedDemoStudent creates a student with one semester of subjects and partially graded items,
// handy for exercising the grade summary endpoints locally.
func (s *Seeder) SeedDemoStudent() error {
	const demoEmail = "demo.student@studytrack.local"

	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("Demo student already exists, skipping")
		return nil
	}

	passwordHash, err := auth.HashPassword("demo-password")
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	score := func(v float64) *float64 { return &v }
	year := time.Now().Year()

	return s.db.Transaction(func(tx *gorm.DB) error {
		student := model.User{
			Name:         "Demo Student",
			Email:        demoEmail,
			PasswordHash: passwordHash,
			Role:         model.RoleStudent,
			School:       "Demo University",
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		semester := model.Semester{
			UserID: student.ID,
			Year:   year,
			Period: fmt.Sprintf("%d-1", year),
			Subjects: []model.Subject{
				{
					Name: "Calculus I", Code: "MAT101", Credits: 4,
					Grades: []model.Grade{
						{Name: "Midterm 1", Weight: 30, Score: score(4), MaxScore: score(5)},
						{Name: "Midterm 2", Weight: 30, Score: score(5), MaxScore: score(5)},
						{Name: "Final", Weight: 40},
					},
				},
				{
					Name: "Physics I", Code: "FIS101", Credits: 3,
					Grades: []model.Grade{
						{Name: "Lab", Weight: 50, Score: score(3), MaxScore: score(5)},
						{Name: "Exam", Weight: 50, Score: score(5), MaxScore: score(5)},
					},
				},
			},
		}
		if err := tx.Create(&semester).Error; err != nil {
			return err
		}

		s.log.Info("Created demo student", "email", demoEmail, "semester_id", semester.ID)
		return nil
	})
}

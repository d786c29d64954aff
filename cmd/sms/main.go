package main

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/filipR1624/sms-s2-project-sub000/internal/repository"
	"github.com/filipR1624/sms-s2-project-sub000/internal/service"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/config"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/database"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/logger"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/metrics"
)

// Bootstrap for embedding hosts: opens the store, wires the repositories and
// services, and verifies connectivity. The persistence layer itself exposes
// no network protocol; presentation layers consume it in-process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	recorder := metrics.NewRecorder()
	validate := validator.New()

	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	teachers := repository.NewTeacherRepository(db)
	parents := repository.NewParentRepository(db)
	classes := repository.NewClassRepository(db)
	grades := repository.NewGradeRepository(db)
	absences := repository.NewAbsenceRepository(db)
	homework := repository.NewHomeworkRepository(db)
	registrations := repository.NewRegistrationRepository(db)

	refs := service.NewReferenceValidator(parents, classes, users)

	_ = service.NewAuthService(users, validate, logr, recorder, service.AuthConfig{
		BcryptCost:        cfg.Auth.BcryptCost,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		JWTSecret:         cfg.Auth.JWTSecret,
		JWTExpiration:     cfg.Auth.JWTExpiration,
		JWTIssuer:         cfg.Auth.JWTIssuer,
	})
	_ = service.NewRegistrationService(registrations, teachers, students, refs, logr, recorder, cfg.Auth.BcryptCost)
	_ = service.NewGradeService(grades, students, logr)
	_ = service.NewAbsenceService(absences, students, logr)
	_ = service.NewHomeworkService(homework, refs, logr)
	_ = service.NewReportService(students, grades, logr)

	logr.Sugar().Infow("persistence layer ready",
		"env", cfg.Env,
		"database", cfg.Database.Name,
		"reports_dir", cfg.Reports.OutputDir,
	)
}

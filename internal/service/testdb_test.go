package service_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
)

// newTestDB opens a private in-memory database for one test. The pool
// is pinned to a single connection: a second pooled connection would
// see a fresh, empty in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.Question{}, &model.QuizSession{}, &model.Answer{}); err != nil {
		t.Fatalf("migrate test tables: %v", err)
	}
	return db
}

// testEnv wires the services against one shared test database the way
// the application container does.
type testEnv struct {
	db        *gorm.DB
	questions *service.QuestionService
	sessions  *service.QuizSessionService
	answers   *service.AnswerService
}

func newTestEnv(t *testing.T) testEnv {
	db := newTestDB(t)
	questionRepo := repository.NewQuestionRepository(db)
	sessionRepo := repository.NewQuizSessionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	return testEnv{
		db:        db,
		questions: service.NewQuestionService(questionRepo),
		sessions:  service.NewQuizSessionService(sessionRepo, answerRepo),
		answers:   service.NewAnswerService(answerRepo, questionRepo, sessionRepo),
	}
}

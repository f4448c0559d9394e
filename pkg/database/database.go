package database

import (
	"fmt"
	"log"

	"quiz_backend/internal/config"
	"quiz_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Question{},
		&model.QuizSession{},
		&model.Answer{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 题库为空时写入默认题目
	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count == 0 {
		for _, q := range defaultQuestions() {
			db.Create(&q)
		}
	}

	return db, nil
}

func defaultQuestions() []model.Question {
	explain := func(s string) *string { return &s }

	return []model.Question{
		{
			Text:          "¿En qué año llegó el ser humano a la Luna?",
			Options:       model.StringList{"1965", "1969", "1972"},
			CorrectOption: 1,
			Explanation:   explain("La misión Apolo 11 alunizó en 1969."),
			Category:      "historia",
			Difficulty:    "facil",
			IsActive:      true,
		},
		{
			Text:          "¿Cuál es el lenguaje de consulta usado en bases de datos relacionales?",
			Options:       model.StringList{"SQL", "HTML", "CSS", "JSON"},
			CorrectOption: 0,
			Category:      "tecnologia",
			Difficulty:    "facil",
			IsActive:      true,
		},
		{
			Text:          "¿Qué planeta es conocido como el planeta rojo?",
			Options:       model.StringList{"Venus", "Júpiter", "Marte", "Saturno"},
			CorrectOption: 2,
			Category:      "ciencia",
			Difficulty:    "medio",
			IsActive:      true,
		},
		{
			Text:          "What is the derivative of x^2?",
			Options:       model.StringList{"x", "2x", "x^2", "2"},
			CorrectOption: 1,
			Category:      "math",
			Difficulty:    "medium",
			IsActive:      true,
		},
	}
}

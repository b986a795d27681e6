package model

// All returns every persisted model in foreign-key dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Semester{},
		&Subject{},
		&Grade{},
		&Document{},
		&Note{},
		&Quiz{},
		&QuizQuestion{},
		&GlossaryTerm{},
		&ConceptMap{},
		&JWTTokenBlacklist{},
		&CronJobLog{},
	}
}

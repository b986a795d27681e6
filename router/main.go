package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/database"
	"github.com/studytrack/studytrack-api/handlers"
	conceptmap_handlers "github.com/studytrack/studytrack-api/handlers/conceptmap"
	document_handlers "github.com/studytrack/studytrack-api/handlers/document"
	glossary_handlers "github.com/studytrack/studytrack-api/handlers/glossary"
	grade_handlers "github.com/studytrack/studytrack-api/handlers/grade"
	note_handlers "github.com/studytrack/studytrack-api/handlers/note"
	quiz_handlers "github.com/studytrack/studytrack-api/handlers/quiz"
	semester_handlers "github.com/studytrack/studytrack-api/handlers/semester"
	subject_handlers "github.com/studytrack/studytrack-api/handlers/subject"
	user_handlers "github.com/studytrack/studytrack-api/handlers/user"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/utils"
	"github.com/studytrack/studytrack-api/utils/auth"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"github.com/studytrack/studytrack-api/utils/middleware"
)

// Dependencies are the long-lived components the routes are built from
type Dependencies struct {
	Store      database.Storage
	JWTManager *auth.JWTManager
	Log        *applog.Logger
	Security   middleware.SecurityConfig

	// Optional: nil disables login lockouts / presigned downloads
	BruteForce  *middleware.BruteForceProtection
	ObjectStore services.ObjectStore

	// RequireAuth puts every resource route behind a bearer token
	RequireAuth bool
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	store := deps.Store
	db := store.GetDB()

	authMiddleware := middleware.NewAuthMiddleware(deps.JWTManager, db)

	// secure guards a route only when REQUIRE_AUTH is enabled
	secure := func(h fiber.Handler) []fiber.Handler {
		if deps.RequireAuth {
			return []fiber.Handler{authMiddleware.Required(), h}
		}
		return []fiber.Handler{h}
	}

	userHandler := user_handlers.NewUserHandler(db, deps.JWTManager, deps.BruteForce)
	semesterHandler := semester_handlers.NewSemesterHandler(db)
	subjectHandler := subject_handlers.NewSubjectHandler(db)
	gradeHandler := grade_handlers.NewGradeHandler(db, services.NewGradeService(db))
	documentHandler := document_handlers.NewDocumentHandler(db, services.NewDocumentService(db, deps.ObjectStore, deps.Log))
	noteHandler := note_handlers.NewNoteHandler(db)
	quizHandler := quiz_handlers.NewQuizHandler(db, services.NewQuizService(db))
	glossaryHandler := glossary_handlers.NewGlossaryHandler(db, services.NewGlossaryService(db))
	conceptMapHandler := conceptmap_handlers.NewConceptMapHandler(db, services.NewConceptMapService(db))

	middleware.SetupSecurity(app, deps.Security)

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	api := app.Group("/api")

	// Users: registration and login are always public
	users := api.Group("/users")
	users.Post("/", userHandler.Register)
	users.Post("/login", deps.BruteForce.CheckLockout(), userHandler.Login)
	users.Get("/me", authMiddleware.Required(), userHandler.Me)
	users.Post("/logout", authMiddleware.Required(), userHandler.Logout)
	users.Post("/logout-all", authMiddleware.Required(), userHandler.LogoutAll)
	users.Get("/:id", secure(userHandler.GetUser)...)
	if deps.RequireAuth {
		users.Get("/", authMiddleware.Required(), middleware.RequireAdmin(), userHandler.ListUsers)
		users.Delete("/:id", authMiddleware.Required(), middleware.RequireSelfOrAdmin("id"), userHandler.DeleteUser)
	} else {
		users.Get("/", userHandler.ListUsers)
		users.Delete("/:id", userHandler.DeleteUser)
	}

	semesters := api.Group("/semesters")
	semesters.Get("/user/:userId", secure(semesterHandler.ListSemesters)...)
	semesters.Get("/:id", secure(semesterHandler.GetSemester)...)
	semesters.Post("/", secure(semesterHandler.CreateSemester)...)
	semesters.Delete("/:id", secure(semesterHandler.DeleteSemester)...)

	subjects := api.Group("/subjects")
	subjects.Get("/semester/:semesterId", secure(subjectHandler.ListSubjects)...)
	subjects.Get("/:id", secure(subjectHandler.GetSubject)...)
	subjects.Post("/", secure(subjectHandler.CreateSubject)...)
	subjects.Delete("/:id", secure(subjectHandler.DeleteSubject)...)

	grades := api.Group("/grades")
	grades.Get("/subject/:subjectId", secure(gradeHandler.ListGrades)...)
	grades.Get("/subject/:subjectId/summary", secure(gradeHandler.SubjectSummary)...)
	grades.Get("/semester/:semesterId", secure(gradeHandler.SemesterSummary)...)
	grades.Get("/:id", secure(gradeHandler.GetGrade)...)
	grades.Post("/", secure(gradeHandler.CreateGrade)...)
	grades.Delete("/:id", secure(gradeHandler.DeleteGrade)...)

	documents := api.Group("/documents")
	documents.Get("/user/:userId", secure(documentHandler.ListDocuments)...)
	documents.Get("/user/:userId/subject/:subjectId", secure(documentHandler.ListSubjectDocuments)...)
	documents.Get("/:id/download", secure(documentHandler.GetDownloadURL)...)
	documents.Get("/:id", secure(documentHandler.GetDocument)...)
	documents.Post("/", secure(documentHandler.CreateDocument)...)
	documents.Delete("/:id", secure(documentHandler.DeleteDocument)...)

	notes := api.Group("/notes")
	notes.Get("/user/:userId", secure(noteHandler.ListNotes)...)
	notes.Get("/user/:userId/subject/:subjectId", secure(noteHandler.ListSubjectNotes)...)
	notes.Get("/:id", secure(noteHandler.GetNote)...)
	notes.Post("/", secure(noteHandler.CreateNote)...)
	notes.Delete("/:id", secure(noteHandler.DeleteNote)...)

	quizzes := api.Group("/quizzes")
	quizzes.Get("/subject/:subjectId", secure(quizHandler.ListQuizzes)...)
	quizzes.Put("/questions/:questionId/answer", secure(quizHandler.AnswerQuestion)...)
	quizzes.Get("/:id/questions", secure(quizHandler.ListQuestions)...)
	quizzes.Get("/:id", secure(quizHandler.GetQuiz)...)
	quizzes.Post("/", secure(quizHandler.CreateQuiz)...)
	quizzes.Delete("/:id", secure(quizHandler.DeleteQuiz)...)

	glossary := api.Group("/glossary")
	glossary.Get("/subject/:subjectId", secure(glossaryHandler.ListTerms)...)
	glossary.Post("/", secure(glossaryHandler.CreateBatch)...)
	glossary.Post("/manual", secure(glossaryHandler.CreateManual)...)
	glossary.Put("/subject/:subjectId", secure(glossaryHandler.ReplaceSubjectTerms)...)
	glossary.Delete("/subject/:subjectId", secure(glossaryHandler.DeleteSubjectTerms)...)
	glossary.Delete("/:id", secure(glossaryHandler.DeleteTerm)...)

	conceptMaps := api.Group("/concept-maps")
	conceptMaps.Get("/subject/:subjectId", secure(conceptMapHandler.ListConceptMaps)...)
	conceptMaps.Get("/:id", secure(conceptMapHandler.GetConceptMap)...)
	conceptMaps.Post("/", secure(conceptMapHandler.CreateConceptMap)...)
	conceptMaps.Put("/:id", secure(conceptMapHandler.UpdateConceptMap)...)
	conceptMaps.Delete("/:id", secure(conceptMapHandler.DeleteConceptMap)...)
}

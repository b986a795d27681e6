package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/database"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"github.com/studytrack/studytrack-api/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
	store         database.Storage
	log           *applog.Logger
}

func NewAPIServer(listenAddress string, store database.Storage, lg *applog.Logger) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:      "studytrack-api",
			ErrorHandler: ErrorHandler(lg),
		}),
		listenAddress: listenAddress,
		store:         store,
		log:           lg,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	s.log.Info("Starting API Server", "address", s.listenAddress)
	return s.app.Listen(s.listenAddress)
}

func (s *APIServer) Shutdown() error {
	s.log.Info("Shutting down API Server")
	return s.app.Shutdown()
}

// ErrorHandler renders errors returned by handlers in the response envelope.
// Fiber errors keep their status; anything else is logged and reported as a 500.
func ErrorHandler(lg *applog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return response.Error(c, fe.Code, fe.Message, fiberErrorCode(fe.Code))
		}

		lg.Error("Unhandled request error",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return response.InternalServerError(c, "Internal server error")
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMIT_EXCEEDED"
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		return "BAD_REQUEST"
	}
	return "ERROR"
}

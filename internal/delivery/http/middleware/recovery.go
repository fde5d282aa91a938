package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recovery перехватывает панику в обработчиках справочника, чтобы
// один сбойный запрос не ронял весь сервис. Стектрейс пишется в лог.
func Recovery() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}

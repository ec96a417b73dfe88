package response

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const serverTag = "Fiber"

// Header carries transport metadata echoed inside every envelope.
type Header struct {
	ContentType string `json:"content-type"`
	Server      string `json:"server"`
	Date        string `json:"date"`
}

// Body wraps the payload with an outcome code and a human-readable message.
// The code mirrors the HTTP status of the response, so clients can rely on
// either layer to detect failure.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Envelope is the fixed header/body wrapper applied to every JSON response.
type Envelope struct {
	Header Header `json:"header"`
	Body   Body   `json:"body"`
}

// New builds an envelope for the given status, message and payload.
func New(status int, message string, data any) Envelope {
	return Envelope{
		Header: Header{
			ContentType: "application/json; charset=utf-8",
			Server:      serverTag,
			Date:        time.Now().UTC().Format(time.RFC3339),
		},
		Body: Body{
			Code:    strconv.Itoa(status),
			Message: message,
			Data:    data,
		},
	}
}

// OK writes a 200 envelope with the given payload.
func OK(c *fiber.Ctx, data any, message string) error {
	return c.JSON(New(fiber.StatusOK, message, data))
}

// Error writes an envelope carrying the failure status on both the HTTP and
// body layers. Data stays nil on the error path.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(New(status, message, nil))
}

package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response body every endpoint returns.  Data is
// omitted when nil; an empty result set is an empty list inside Data, never
// a missing field and never an error.
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, success bool, data any) error {
	return c.JSON(status, Envelope{Message: message, Success: success, Data: data})
}

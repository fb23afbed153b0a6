package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/JojerDojer/web-420/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StatusStoreFault is returned when the persistence layer fails.
const StatusStoreFault = fiber.StatusNotImplemented

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bodyError is a request body that could not be parsed or failed validation.
type bodyError struct {
	err    error
	fields map[string]string
}

func (e *bodyError) Error() string { return e.err.Error() }

// parseBody decodes the JSON body into dst and validates it before any store
// access happens.
func parseBody(c *fiber.Ctx, validate *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &bodyError{err: fmt.Errorf("invalid request body: %w", err)}
	}
	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return &bodyError{err: err}
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &bodyError{err: errors.New("validation failed"), fields: fields}
	}
	return nil
}

// respondBodyError reports a rejected body as a general fault.
func respondBodyError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"message": "Server Exception: " + err.Error()}
	var be *bodyError
	if errors.As(err, &be) && be.fields != nil {
		body["errors"] = be.fields
	}
	slog.DebugContext(c.UserContext(), "rejected request body", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// respondFault maps a fault to 501 for store failures and 500 otherwise.
func respondFault(c *fiber.Ctx, op string, err error) error {
	if repositories.IsStoreFault(err) {
		slog.ErrorContext(c.UserContext(), op, "kind", "store", "error", err)
		return c.Status(StatusStoreFault).JSON(fiber.Map{
			"message": "Database Exception: " + err.Error(),
		})
	}
	slog.ErrorContext(c.UserContext(), op, "kind", "server", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server Exception: " + err.Error(),
	})
}

// respondNotFound writes the not-found outcome with the given status. This is
// a normal path and is logged at debug level only.
func respondNotFound(c *fiber.Ctx, status int, message string, err error) error {
	slog.DebugContext(c.UserContext(), "lookup missed", "path", c.Path(), "error", err)
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

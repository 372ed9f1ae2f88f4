// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParseUUIDParam reads a path parameter as a UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid UUID")
	}
	return id, nil
}

// ParseUUIDQuery reads a query parameter as a UUID.
func ParseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid UUID")
	}
	return id, nil
}

// pgSQLErr matches any postgres driver error carrying a SQLSTATE.
// Both pgconn.PgError (the gorm postgres driver) and pq.Error expose
// SQLState(), so the mapping works regardless of which driver
// produced the error.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// JsonDBError maps common database failures to HTTP statuses:
// unique violations to 409, FK violations to 400, exclusion
// violations to 409, missing rows to 404. Anything else gets the
// fallback message with a 500.
func JsonDBError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Data not found")
	}

	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return JsonError(c, fiber.StatusConflict, "Duplicate data")
		case "23503":
			return JsonError(c, fiber.StatusBadRequest, "Related data not found")
		case "23P01":
			return JsonError(c, fiber.StatusConflict, "Data conflicts with an existing range")
		}
	}

	return JsonError(c, fiber.StatusInternalServerError, fallback)
}

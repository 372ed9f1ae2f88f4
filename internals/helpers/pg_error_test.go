package helper

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestJsonDBErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		// the gorm postgres driver surfaces pgconn.PgError, usually wrapped
		{"pgx unique violation wrapped", fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"}), fiber.StatusConflict},
		{"pgx fk violation", &pgconn.PgError{Code: "23503"}, fiber.StatusBadRequest},
		{"pgx exclusion violation", &pgconn.PgError{Code: "23P01"}, fiber.StatusConflict},
		{"lib/pq unique violation", &pq.Error{Code: "23505"}, fiber.StatusConflict},
		{"record not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"unknown sqlstate", &pgconn.PgError{Code: "42P01"}, fiber.StatusInternalServerError},
		{"plain error", errors.New("connection refused"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return JsonDBError(c, tt.err, "operation failed")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

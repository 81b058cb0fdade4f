// Package handler implements the HTTP surface over Echo. All error
// responses share the {"message": ..., "error": ...?} envelope; the error
// detail is included only in the dev environment.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// fail writes the standard error envelope. err may be nil; its text is only
// exposed when env is "dev" so internal details never leak in production.
func fail(c echo.Context, env string, status int, message string, err error) error {
	body := echo.Map{"message": message}
	if env == "dev" && err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(status, body)
}

// pageParams reads the page/limit query values, defaulting to 1/10 and
// ignoring garbage.
func pageParams(c echo.Context) (page, limit int) {
	page, limit = 1, 10
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		limit = n
	}
	return page, limit
}

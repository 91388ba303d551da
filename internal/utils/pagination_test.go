package utils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func ctxWithQuery(t *testing.T, app *fiber.App, uri string) *fiber.Ctx {
	t.Helper()
	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI(uri)
	c := app.AcquireCtx(fctx)
	t.Cleanup(func() { app.ReleaseCtx(c) })
	return c
}

func TestGetPagination(t *testing.T) {
	app := fiber.New()

	t.Run("defaults when params absent", func(t *testing.T) {
		p := GetPagination(ctxWithQuery(t, app, "/"), 1, 10)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("offset follows page", func(t *testing.T) {
		p := GetPagination(ctxWithQuery(t, app, "/?page=3&limit=20"), 1, 10)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, 40, p.Offset)
	})

	t.Run("limit is capped", func(t *testing.T) {
		p := GetPagination(ctxWithQuery(t, app, "/?limit=5000"), 1, 10)
		assert.Equal(t, MaxPageSize, p.Limit)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		p := GetPagination(ctxWithQuery(t, app, "/?page=-2&limit=abc"), 1, 10)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})
}

func TestSetTotal(t *testing.T) {
	p := Pagination{Page: 1, Limit: 10}
	p.SetTotal(25)

	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.LastPage)
}

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery/internal/domain"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	})
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []Line {
	t.Helper()
	var out []Line
	for _, s := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var l Line
		require.NoError(t, json.Unmarshal([]byte(s), &l), s)
		out = append(out, l)
	}
	return out
}

func TestErrorCarriesKindAndRoute(t *testing.T) {
	app := fiber.New()
	app.Delete("/uoms/:id<int>", func(c *fiber.Ctx) error {
		c.Status(fiber.StatusInternalServerError)
		Error(c, "uom.delete.fail", domain.Conflict("in use"), map[string]any{"uom_id": 3})
		return nil
	})

	buf := capture(t)
	_, err := app.Test(httptest.NewRequest("DELETE", "/uoms/3", nil))
	require.NoError(t, err)

	got := lines(t, buf)
	require.Len(t, got, 1)
	l := got[0]
	assert.Equal(t, LevelError, l.Level)
	assert.Equal(t, "conflict", l.Kind)
	assert.Equal(t, "in use", l.Err)
	assert.Equal(t, "/uoms/:id<int>", l.Route)
	assert.Equal(t, "/uoms/3", l.Path)
	assert.Equal(t, 500, l.Status)
	assert.EqualValues(t, 3, l.Fields["uom_id"])
}

func TestSecurityWithoutError(t *testing.T) {
	buf := capture(t)
	Security(nil, "rate.limited", nil, nil)
	Security(nil, "uom.create.invalid", domain.Invalid("UOM name is required"), nil)
	Error(nil, "db", errors.New("boom"), nil)

	got := lines(t, buf)
	require.Len(t, got, 3)
	assert.Equal(t, LevelWarn, got[0].Level)
	assert.Empty(t, got[0].Kind)
	assert.Empty(t, got[0].Err)
	assert.Equal(t, "validation", got[1].Kind)
	assert.Empty(t, got[2].Kind)
	assert.Equal(t, "boom", got[2].Err)
}

func TestSetupTeesToFile(t *testing.T) {
	oldW := log.Writer()
	t.Cleanup(func() { log.SetOutput(oldW) })

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Setup(path)
	require.NoError(t, err)
	Audit(nil, "order.create", map[string]any{"order_id": 1})
	require.NoError(t, closer.Close())
	log.SetOutput(io.Discard)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"action":"order.create"`)
	assert.Contains(t, string(b), `"level":"audit"`)
}

func TestSetupEmptyPath(t *testing.T) {
	closer, err := Setup("")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

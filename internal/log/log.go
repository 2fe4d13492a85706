package log

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"grocery/internal/domain"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelAudit Level = "audit"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Line is one JSON log record.
type Line struct {
	TS     string         `json:"ts"`
	Level  Level          `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Route  string         `json:"route,omitempty"` // matched pattern, e.g. /api/orders/:id<int>
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Action string         `json:"action"`
	Kind   string         `json:"kind,omitempty"` // validation | not_found | conflict
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// Setup tees the standard logger into path (append mode). An empty path
// leaves output on stdout. The returned closer is never nil.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return io.NopCloser(nil), err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return f, nil
}

// newLine fills the request part of a record. Status is read from the
// response, so callers set it before logging.
func newLine(c *fiber.Ctx, level Level, action string) Line {
	l := Line{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action}
	if c == nil {
		return l
	}
	l.IP = c.IP()
	l.Method = c.Method()
	l.Path = c.Path()
	l.Status = c.Response().StatusCode()
	if r := c.Route(); r != nil && r.Path != "/" {
		l.Route = r.Path
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		l.ReqID = rid
	}
	return l
}

func (l Line) withErr(err error) Line {
	if err == nil {
		return l
	}
	l.Err = err.Error()
	switch {
	case errors.Is(err, domain.ErrValidation):
		l.Kind = "validation"
	case errors.Is(err, domain.ErrNotFound):
		l.Kind = "not_found"
	case errors.Is(err, domain.ErrConflict):
		l.Kind = "conflict"
	}
	return l
}

func emit(l Line) {
	b, err := json.Marshal(l)
	if err != nil {
		log.Printf("[log] drop %s: %v", l.Action, err)
		return
	}
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	l := newLine(c, LevelInfo, action)
	l.Fields = fields
	emit(l)
}

// Audit records a successful mutation.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	l := newLine(c, LevelAudit, action)
	l.Fields = fields
	emit(l)
}

// Security records rejected input or throttled clients; err may be nil.
func Security(c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := newLine(c, LevelWarn, action).withErr(err)
	l.Fields = fields
	emit(l)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := newLine(c, LevelError, action).withErr(err)
	l.Fields = fields
	emit(l)
}

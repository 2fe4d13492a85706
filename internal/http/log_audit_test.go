package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	ReqID  string         `json:"req_id"`
	Status int            `json:"status"`
	Route  string         `json:"route"`
	Kind   string         `json:"kind"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

// captureLogs redirects the standard logger while fn runs and returns the
// JSON lines written by internal/log. Access-log lines are skipped.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil && e.Action != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

func find(entries []logEntry, action string) *logEntry {
	for i := range entries {
		if entries[i].Action == action {
			return &entries[i]
		}
	}
	return nil
}

func TestLogs_AuditOnMutation(t *testing.T) {
	entries := captureLogs(t, func() {
		app, _ := newTestApp(t)
		_, rice := seedKgAndRice(t, app)
		status, _ := call(t, app, "POST", "/api/orders",
			`{"customer_name":"Alice","order_items":[{"product_id":`+itoa(rice)+`,"quantity":2}]}`)
		require.Equal(t, http.StatusCreated, status)
	})

	e := find(entries, "order.create")
	require.NotNil(t, e, "order.create audit missing: %+v", entries)
	assert.Equal(t, "audit", e.Level)
	assert.Equal(t, http.StatusCreated, e.Status)
	assert.NotEmpty(t, e.ReqID)
	assert.EqualValues(t, 1, e.Fields["items"])

	assert.NotNil(t, find(entries, "uom.create"))
	assert.NotNil(t, find(entries, "product.create"))
}

func TestLogs_ValidationAndConflict(t *testing.T) {
	var kg int64
	entries := captureLogs(t, func() {
		app, _ := newTestApp(t)
		kg, _ = seedKgAndRice(t, app)
		call(t, app, "POST", "/api/uoms", `{"name":""}`)
		call(t, app, "DELETE", "/api/uoms/"+itoa(kg), "")
	})

	e := find(entries, "uom.create.invalid")
	require.NotNil(t, e)
	assert.Equal(t, "warn", e.Level)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "validation", e.Kind)
	assert.Equal(t, "UOM name is required", e.Err)
	assert.Equal(t, "/api/uoms", e.Route)

	e = find(entries, "uom.delete.fail")
	require.NotNil(t, e)
	assert.Equal(t, "error", e.Level)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "conflict", e.Kind)
	assert.Equal(t, "/api/uoms/:id<int>", e.Route)
	assert.EqualValues(t, kg, e.Fields["uom_id"])
}

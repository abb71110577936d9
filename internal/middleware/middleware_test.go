package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/server"
)

// newTestServer returns a server logging JSON into buf, with rate limiting off.
func newTestServer(t *testing.T, buf *bytes.Buffer) *server.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Server.RateLimit = 0

	logger := zerolog.New(buf)

	return server.New(cfg, &logger, nil)
}

// countMessages returns how many JSON log lines in buf carry msg.
func countMessages(t *testing.T, buf *bytes.Buffer, msg string) int {
	t.Helper()

	count := 0

	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var line map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}

		if line[zerolog.MessageFieldName] == msg {
			count++
		}
	}

	return count
}


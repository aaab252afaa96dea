package presenter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogPresenter_KeepsLastMonitorText(t *testing.T) {
	var buf bytes.Buffer
	p := NewSlogPresenter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	assert.Empty(t, p.Monitor("counter-1"))
	p.UpdateMonitor("counter-1", "Welcome")
	p.UpdateMonitor("counter-1", "Total: $4.25")
	p.UpdateMonitor("counter-2", "Welcome")

	assert.Equal(t, "Total: $4.25", p.Monitor("counter-1"))
	assert.Equal(t, "Welcome", p.Monitor("counter-2"))

	p.LogMessage("Not enough money in the register", "red")
	assert.Contains(t, buf.String(), `"color":"red"`)
}

package uciproto

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestHandler() (*Handler, *bytes.Buffer) {
	var out bytes.Buffer
	h := New(strings.NewReader(""), &out)
	return h, &out
}

func TestUciCommandRespondsWithIdAndUciok(t *testing.T) {
	h, out := newTestHandler()
	quit := h.Handle("uci")
	assert.False(t, quit)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "id name "+EngineName, lines[0])
	assert.Equal(t, "id author "+EngineAuthor, lines[1])
	assert.Equal(t, "uciok", lines[2])
}

func TestIsReadyRespondsReadyok(t *testing.T) {
	h, out := newTestHandler()
	h.Handle("isready")
	assert.Equal(t, "readyok\n", out.String())
}

func TestQuitReturnsTrue(t *testing.T) {
	h, _ := newTestHandler()
	assert.True(t, h.Handle("quit"))
}

func TestPositionStartposThenGoDepthReturnsBestmove(t *testing.T) {
	h, out := newTestHandler()
	h.Handle("position startpos moves e2e4 e7e5")
	h.Handle("go depth 2")
	h.ctrl.Wait()
	assert.Contains(t, out.String(), "bestmove ")
}

func TestStopEndsInfiniteSearch(t *testing.T) {
	h, out := newTestHandler()
	h.Handle("position startpos")
	h.Handle("go infinite")
	time.Sleep(20 * time.Millisecond)
	h.Handle("stop")
	h.ctrl.Wait()
	assert.Contains(t, out.String(), "bestmove ")
}

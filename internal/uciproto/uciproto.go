// Package uciproto is the UCI line-protocol front-end spec §1 calls an
// external collaborator and §6 fully specifies: it parses the command
// subset of §6 and prints "info"/"bestmove" lines, invoking the engine core
// only through internal/controller's narrow interface. It owns the I/O loop
// and (via the controller) the search worker's lifetime, grounded on
// internal/uci/uci.go's handleReceivedCommand dispatch shape.
package uciproto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/controller"
	"github.com/corvidchess/corvid/internal/enginelog"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
)

// EngineName and EngineAuthor answer the "uci" command's "id" lines.
const (
	EngineName   = "Corvid"
	EngineAuthor = "the corvidchess project"
)

// out formats diagnostic log messages (thousands-grouped node counts and
// the like); never used for the UCI wire lines themselves, which must stay
// in the exact plain-number format §6 specifies.
var out = message.NewPrinter(language.English)

// Handler reads UCI commands from in and writes UCI responses to out, one
// command per line, until "quit". Exported separately from Loop so tests
// can drive Handle without a live stdin/stdout pair.
type Handler struct {
	in   *bufio.Scanner
	out  *bufio.Writer
	ctrl *controller.Controller
	log  *logging.Logger
}

// New builds a Handler reading from in and writing responses to out.
func New(in io.Reader, out io.Writer) *Handler {
	return &Handler{
		in:   bufio.NewScanner(in),
		out:  bufio.NewWriter(out),
		ctrl: controller.New(),
		log:  enginelog.GetUciLog(),
	}
}

// Loop reads and dispatches commands until "quit" or end of input.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.Handle(h.in.Text()) {
			return
		}
	}
}

// Handle processes a single line of input, writing any response to out
// before returning. The return value reports whether "quit" was received.
func (h *Handler) Handle(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	h.log.Infof("<< %s", line)

	switch fields[0] {
	case "uci":
		h.send("id name " + EngineName)
		h.send("id author " + EngineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.ctrl.NewGame()
	case "position":
		h.position(fields[1:])
	case "go":
		h.goCommand(fields[1:])
	case "stop":
		h.ctrl.Stop()
	case "quit":
		return true
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) send(line string) {
	h.log.Infof(">> %s", line)
	fmt.Fprintln(h.out, line)
	h.out.Flush()
}

// position implements spec §6: "position [startpos | fen <FEN>] [moves
// <m1> <m2> ...]".
func (h *Handler) position(args []string) {
	if len(args) == 0 {
		h.log.Warning("position: missing startpos/fen")
		return
	}
	fen := ""
	i := 0
	switch args[0] {
	case "startpos":
		i = 1
	case "fen":
		i = 1
		var b strings.Builder
		for i < len(args) && args[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(args[i])
			i++
		}
		fen = b.String()
	default:
		h.log.Warningf("position: malformed command %v", args)
		return
	}

	var moves []string
	if i < len(args) && args[i] == "moves" {
		moves = args[i+1:]
	}

	if fen == "" {
		fen = position.StartFEN
	}
	if err := h.ctrl.SetPosition(fen, moves); err != nil {
		h.log.Warningf("position: %s", err)
	}
}

// goCommand implements spec §6: "go [depth N | wtime T btime T |
// infinite]".
func (h *Handler) goCommand(args []string) {
	limits := search.Limits{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				i++
				if d, err := strconv.Atoi(args[i]); err == nil {
					limits.Depth = d
				}
			}
		case "infinite":
			limits.Infinite = true
		case "movetime":
			if i+1 < len(args) {
				i++
				if ms, err := strconv.Atoi(args[i]); err == nil {
					limits.MoveTime = time.Duration(ms) * time.Millisecond
				}
			}
		case "wtime":
			if i+1 < len(args) {
				i++
				if ms, err := strconv.Atoi(args[i]); err == nil {
					limits.WhiteTime = time.Duration(ms) * time.Millisecond
					limits.TimeControl = true
				}
			}
		case "btime":
			if i+1 < len(args) {
				i++
				if ms, err := strconv.Atoi(args[i]); err == nil {
					limits.BlackTime = time.Duration(ms) * time.Millisecond
					limits.TimeControl = true
				}
			}
		case "winc":
			if i+1 < len(args) {
				i++
				if ms, err := strconv.Atoi(args[i]); err == nil {
					limits.WhiteInc = time.Duration(ms) * time.Millisecond
				}
			}
		case "binc":
			if i+1 < len(args) {
				i++
				if ms, err := strconv.Atoi(args[i]); err == nil {
					limits.BlackInc = time.Duration(ms) * time.Millisecond
				}
			}
		}
	}

	h.ctrl.Go(limits, h.sendInfo, h.sendBestMove)
}

func (h *Handler) sendInfo(info search.Info) {
	nps := info.Nps
	pv := pvString(info.Pv)
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d pv %s",
		info.Depth, info.Score.String(), info.Nodes, nps, pv))
	h.log.Debug(out.Sprintf("depth %d reached %d nodes (%d nps)", info.Depth, info.Nodes, nps))
}

func (h *Handler) sendBestMove(result search.Result) {
	h.log.Debug(out.Sprintf("search settled on %s after %d nodes", result.BestMove.String(), result.Nodes))
	h.send("bestmove " + result.BestMove.String())
}

func pvString(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

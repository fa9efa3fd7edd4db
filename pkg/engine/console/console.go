// Package console implements the external-collaborator console driver: it
// reads a starting FEN and then the user's moves from a channel of lines,
// applies them, lets the engine answer as Black, and prints the FEN plus
// result banners of §6.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/lucas0201/noirmate/pkg/engine"
	"github.com/lucas0201/noirmate/pkg/situation"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

const invalidMoveMessage = "Movimento invalido. Tente novamente."

var banners = map[situation.Situation]string{
	situation.CheckmateWhite:       "Xeque-mate -- Vitoria: BRANCO",
	situation.CheckmateBlack:       "Xeque-mate -- Vitoria: PRETO",
	situation.Stalemate:            "Empate -- Afogamento",
	situation.FiftyMove:            "Empate -- Regra dos 50 Movimentos",
	situation.InsufficientMaterial: "Empate -- Falta de Material",
	situation.ThreefoldRepetition:  "Empate -- Tripla Repeticao",
}

// Driver runs the console protocol described by §6: first stdin line is
// the starting FEN, subsequent lines (on White's turn only) are moves.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

// NewDriver launches the driver's processing goroutine and returns it along
// with the channel of output lines it writes to.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized: %v", d.e.Name())

	first, ok := <-in
	if !ok {
		logw.Infof(ctx, "Input stream broken before starting position. Exiting")
		return
	}
	if err := d.e.Reset(ctx, strings.TrimSpace(first)); err != nil {
		logw.Errorf(ctx, "Invalid starting position %q: %v", first, err)
		return
	}

	for {
		d.printPosition(ctx)

		sit := d.e.Situation()
		if sit.IsTerminal() {
			d.out <- banners[sit]
			logw.Infof(ctx, "Game over: %v", sit)
			return
		}

		if d.e.SideToMoveIsEngine() {
			mv, ok := d.e.EngineMove(ctx)
			if !ok {
				// Classifier said the side to move has a legal move; this
				// would indicate a bug in the evaluator or classifier.
				logw.Errorf(ctx, "Engine had no legal move despite %v", sit)
				return
			}
			logw.Infof(ctx, "Engine played %v", mv)
			continue
		}

		line, ok := <-in
		if !ok {
			logw.Infof(ctx, "End of input on user's turn. Exiting")
			return
		}
		if _, err := d.e.Move(ctx, strings.TrimSpace(line)); err != nil {
			logw.Errorf(ctx, "Rejected move %q: %v", line, err)
			d.out <- invalidMoveMessage
			continue
		}
	}
}

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("0"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("15"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// printPosition prints the bare FEN line the protocol requires on d.out, and
// logs a lipgloss-styled board rendering as supplementary diagnostic output.
// §6 specifies the protocol stream exactly (FEN lines and banners, nothing
// else), so the styled board never goes to d.out — only to the log.
func (d *Driver) printPosition(ctx context.Context) {
	d.out <- d.e.Position()
	logw.Debugf(ctx, "\n%v", renderBoard(d.e.Board()))
}

func renderBoard(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("   a  b  c  d  e  f  g  h") + "\n")
	for i := 0; i < int(board.NumRanks); i++ {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%v ", rank)))
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			sq := board.NewSquare(file, rank)
			cell := " . "
			if p := b.At(sq); p != nil {
				cell = fmt.Sprintf(" %v ", strings.ToUpper(p.ID.String()))
				if p.ID.IsBlack() {
					cell = fmt.Sprintf(" %v ", p.ID.String())
				}
			}
			style := lightSquare
			if (int(file)+int(rank))%2 == 0 {
				style = darkSquare
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/seekerror/logw"
)

// ReadStdinLines reads stdin lines into a chan. Async.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes lines from the given chan to stdout.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}

// ParseUserMove parses the external interface's move notation of §6:
// "<from-file><from-rank><to-file><to-rank>[promotion]", where the
// optional trailing letter is one of n, b, r, q. It does not validate
// legality — that is the engine core's job.
func ParseUserMove(str string) (from, to board.Square, promo board.Kind, err error) {
	runes := []rune(str)
	if len(runes) != 4 && len(runes) != 5 {
		return board.Square{}, board.Square{}, board.NoKind, fmt.Errorf("invalid move: %q", str)
	}

	from, err = board.ParseSquare(runes[0], runes[1])
	if err != nil {
		return board.Square{}, board.Square{}, board.NoKind, fmt.Errorf("invalid from-square: %q: %w", str, err)
	}
	to, err = board.ParseSquare(runes[2], runes[3])
	if err != nil {
		return board.Square{}, board.Square{}, board.NoKind, fmt.Errorf("invalid to-square: %q: %w", str, err)
	}

	promo = board.NoKind
	if len(runes) == 5 {
		k, ok := board.ParseKind(runes[4])
		if !ok || k == board.Pawn || k == board.King {
			return board.Square{}, board.Square{}, board.NoKind, fmt.Errorf("invalid promotion: %q", str)
		}
		promo = k
	}
	return from, to, promo, nil
}

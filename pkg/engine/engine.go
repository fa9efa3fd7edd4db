// Package engine orchestrates a single game: it owns the board and the
// repetition store, applies the user's moves, and asks the evaluator for
// Black's reply.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/lucas0201/noirmate/pkg/board"
	"github.com/lucas0201/noirmate/pkg/board/fen"
	"github.com/lucas0201/noirmate/pkg/board/repetition"
	"github.com/lucas0201/noirmate/pkg/eval"
	"github.com/lucas0201/noirmate/pkg/situation"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// EngineColor is the side the engine plays, per §1: the engine always
// plays Black against a human playing White.
const EngineColor = board.Black

// Options are engine creation options.
type Options struct {
	// Noise adds millipawns of evaluation jitter to the engine's move
	// choice. Zero (the default) keeps the evaluator fully deterministic.
	Noise uint
	// Seed seeds the noise generator. Ignored if Noise is zero.
	Seed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{noise=%v, seed=%v}", o.Noise, o.Seed)
}

// Engine encapsulates one game: the board, the repetition store, and the
// evaluator used to pick Black's replies. Not safe for concurrent use
// beyond the internal locking of its exported methods.
type Engine struct {
	name, author string
	opts         Options

	b     *board.Board
	rep   *repetition.Store
	noise eval.Random

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the engine's runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine and resets it to the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}

	if err := e.Reset(ctx, fen.Initial); err != nil {
		logw.Exitf(ctx, "Invalid initial position: %v", err)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b)
}

// Board returns the live board. Callers must not mutate it.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b
}

// SideToMoveIsEngine reports whether it is currently EngineColor's turn.
func (e *Engine) SideToMoveIsEngine() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.SideToMove() == EngineColor
}

// Situation classifies the current position.
func (e *Engine) Situation() situation.Situation {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.classify()
}

func (e *Engine) classify() situation.Situation {
	return situation.Classify(e.b, e.rep, e.rep.Current())
}

// Reset resets the engine to a new starting position in FEN and records it
// in a fresh repetition store.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, noise=%v millipawns", position, e.opts.Noise)

	b, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.b = b
	e.rep = repetition.NewStore()
	e.rep.Insert(fen.Encode(e.b))

	e.noise = eval.Random{}
	if e.opts.Noise > 0 {
		e.noise = eval.NewRandom(int(e.opts.Noise), e.opts.Seed)
	}

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// Move applies a legal user move described in long algebraic form, such as
// "e2e4" or "a7a8q". It returns an error, leaving the position unchanged,
// if the move is unparsable or illegal.
func (e *Engine) Move(ctx context.Context, move string) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promo, err := ParseUserMove(move)
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move: %w", err)
	}

	p := e.b.At(from)
	if p == nil || p.ID.Color() != e.b.SideToMove() {
		return board.Move{}, fmt.Errorf("invalid move: no mover on %v", from)
	}

	t, err := resolveTarget(e.b, p, to, promo)
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move: %w", err)
	}

	mv, err := e.b.Make(p, t)
	if err != nil {
		return board.Move{}, fmt.Errorf("illegal move: %w", err)
	}

	count := e.rep.Insert(fen.Encode(e.b))
	logw.Infof(ctx, "Move %v (seen %vx): %v", mv, count, e.b)
	return mv, nil
}

// EngineMove picks and applies the engine's own reply using the one-ply
// evaluator. Reports false if the side to move (always EngineColor when
// called at the right time) has no legal move.
func (e *Engine) EngineMove(ctx context.Context) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	choice, ok := eval.Choose(e.b, e.b.SideToMove(), e.noise)
	if !ok {
		return board.Move{}, false
	}

	mv, err := e.b.Make(choice.Piece, choice.Target)
	if err != nil {
		logw.Exitf(ctx, "Evaluator chose an illegal move %v: %v", choice.Target, err)
	}

	e.rep.Insert(fen.Encode(e.b))
	logw.Infof(ctx, "Engine move %v (score %v, seen %vx): %v", mv, choice.Score, e.rep.CurrentCount(), e.b)
	return mv, true
}

// resolveTarget finds the Target in p's legal-move list matching
// destination to, honoring an explicit promotion choice, and validates
// §5.3's contract that the core (not the parser) is the source of truth
// for whether a promotion is actually legal here.
func resolveTarget(b *board.Board, p *board.Piece, to board.Square, promo board.Kind) (board.Target, error) {
	for _, t := range p.Targets {
		if t.Square != to {
			continue
		}
		if t.Kind.IsPromotion() {
			if t.Kind.PromotionKind() == promo {
				return t, nil
			}
			continue
		}
		if promo == board.NoKind {
			return t, nil
		}
	}
	return board.Target{}, fmt.Errorf("no legal move %v->%v", p.Square, to)
}

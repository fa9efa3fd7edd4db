// Command noirmate is a console chess engine that plays Black against a
// human playing White over stdin/stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lucas0201/noirmate/pkg/engine"
	"github.com/lucas0201/noirmate/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	noise = flag.Int("noise", 0, "Evaluation noise in millipawns (zero is deterministic)")
	seed  = flag.Int64("seed", 1, "Seed for evaluation noise, if noise is non-zero")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: noirmate [options]

NOIRMATE is a console chess engine that plays Black.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "noirmate", "lucas0201", engine.WithOptions(engine.Options{
		Noise: uint(*noise),
		Seed:  *seed,
	}))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}

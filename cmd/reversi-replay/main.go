// Command reversi-replay plays a move transcript and reports the outcome.
//
// Moves use Othello notation (a1..h8) separated by whitespace or commas,
// or written back to back ("f5d6c3"). Forced passes are implicit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jaminalder/codex-reversi/internal/app"
	"github.com/jaminalder/codex-reversi/internal/config"
	"github.com/jaminalder/codex-reversi/internal/domain"
)

type replayConfig struct {
	Format string `env:"REVERSI_REPLAY_FORMAT" envDefault:"text"`
	app.Config
}

type report struct {
	Moves      int          `json:"moves"`
	Status     string       `json:"status"`
	Winner     string       `json:"winner,omitempty"`
	Next       string       `json:"next,omitempty"`
	CountA     int          `json:"count_a"`
	CountB     int          `json:"count_b"`
	ValidMoves []string     `json:"valid_moves,omitempty"`
	Error      string       `json:"error,omitempty"`
	Game       *domain.Game `json:"game,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("reversi-replay: ")

	var cfg replayConfig
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatal(err)
	}

	var file string
	flag.StringVar(&file, "file", "", "transcript file (default: stdin)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json (default: REVERSI_REPLAY_FORMAT or text)")
	flag.Parse()

	if cfg.Format != "text" && cfg.Format != "json" {
		log.Fatalf("unknown format %q", cfg.Format)
	}

	src, err := readTranscript(file, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	moves, err := domain.ParseTranscript(src)
	if err != nil {
		log.Fatal(err)
	}

	svc := app.New(cfg.Config, nil)
	gs, replayErr := svc.Replay(moves)
	if gs == nil {
		log.Fatal(replayErr)
	}

	rep := buildReport(gs, replayErr)
	if err := write(os.Stdout, cfg.Format, rep); err != nil {
		log.Fatal(err)
	}
	if replayErr != nil {
		os.Exit(1)
	}
}

// readTranscript prefers positional arguments, then -file, then stdin.
func readTranscript(file string, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("open transcript: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}

func buildReport(gs *app.Session, replayErr error) report {
	g := gs.Game
	rep := report{
		Moves:  len(gs.Moves),
		Status: g.Status().Kind.String(),
		CountA: g.Count(domain.A),
		CountB: g.Count(domain.B),
		Game:   &g,
	}
	if w, ok := g.Winner(); ok {
		rep.Winner = w.String()
	}
	if !g.IsEnded() {
		next := g.NextPlayer()
		rep.Next = next.String()
		for _, sq := range g.ValidMoves(next) {
			rep.ValidMoves = append(rep.ValidMoves, sq.String())
		}
	}
	if replayErr != nil {
		rep.Error = replayErr.Error()
	}
	return rep
}

func write(w io.Writer, format string, rep report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	fmt.Fprintf(w, "moves:  %d\n", rep.Moves)
	fmt.Fprintf(w, "status: %s\n", rep.Status)
	if rep.Winner != "" {
		fmt.Fprintf(w, "winner: %s\n", rep.Winner)
	}
	fmt.Fprintf(w, "score:  A %d - B %d\n", rep.CountA, rep.CountB)
	if rep.Next != "" {
		fmt.Fprintf(w, "next:   %s (%s)\n", rep.Next, strings.Join(rep.ValidMoves, " "))
	}
	if rep.Error != "" {
		fmt.Fprintf(w, "error:  %s\n", rep.Error)
	}
	return nil
}

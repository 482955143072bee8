package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cwbudde/algo-tempo/measure/tempo"
)

// session drives a Tapper from line-oriented input.
type session struct {
	tapper    *tempo.Tapper
	out       io.Writer
	precision int
	logger    *slog.Logger

	last    float64
	hasLast bool
}

func newSession(tapper *tempo.Tapper, out io.Writer, precision int, logger *slog.Logger) *session {
	return &session{
		tapper:    tapper,
		out:       out,
		precision: precision,
		logger:    logger,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(verbose)}))
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// run records one tap per input line until EOF or a quit command.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "q" || line == "quit" {
			break
		}

		if err := s.tap(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return s.summary()
}

func (s *session) tap() error {
	bpm, ok := s.tapper.Tap()
	count := s.tapper.Count()

	if !ok {
		s.logger.Debug("tap recorded", "count", count)
		_, err := fmt.Fprintf(s.out, "tap %d: waiting for next tap\n", count)
		return err
	}

	s.last, s.hasLast = bpm, true
	s.logger.Debug("tap recorded", "count", count, "bpm", bpm)

	_, err := fmt.Fprintf(s.out, "tap %d: %s BPM\n", count, s.format(bpm))
	return err
}

func (s *session) summary() error {
	count := s.tapper.Count()
	if !s.hasLast {
		_, err := fmt.Fprintf(s.out, "%d taps, no tempo\n", count)
		return err
	}

	_, err := fmt.Fprintf(s.out, "%d taps, %s BPM\n", count, s.format(s.last))
	return err
}

func (s *session) format(bpm float64) string {
	return fmt.Sprintf("%.*f", s.precision, bpm)
}

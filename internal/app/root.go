// Package app implements the taptempo command line interface.
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-tempo/measure/tempo"
)

const (
	defaultPrecision = 1
	maxPrecision     = 6
)

// NewRootCmd builds the taptempo command. Taps are timestamped with clock.
func NewRootCmd(clock tempo.Clock) *cobra.Command {
	var (
		precision int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "taptempo",
		Short: "Measure a tempo by tapping Enter in time with the music",
		Long: `taptempo estimates a tempo in beats per minute from key presses.

Press Enter once per beat. From the second tap on, the average tempo since
the first tap is printed. Type q (or send EOF) to finish.

Examples:
  # Tap along, one decimal place
  taptempo

  # Print whole BPM values
  taptempo --precision 0`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if precision < 0 || precision > maxPrecision {
				return fmt.Errorf("invalid --precision %d: must be between 0 and %d", precision, maxPrecision)
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)
			s := newSession(tempo.NewTapper(tempo.WithClock(clock)), cmd.OutOrStdout(), precision, logger)

			if err := s.run(cmd.InOrStdin()); err != nil {
				return fmt.Errorf("tap session: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "decimal places in printed BPM values")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every tap to stderr")

	return cmd
}

// Execute runs the taptempo command against the system clock.
func Execute() error {
	return NewRootCmd(tempo.SystemClock{}).Execute()
}

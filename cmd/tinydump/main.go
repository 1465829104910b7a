// Command tinydump prints files as hex and ASCII rows using tinylog's dump
// format.
//
//	tinydump [--level DBG] [--offset N] [--length N] [FILE...]
//
// With no files, or a file named "-", standard input is dumped. The chosen
// level is always enabled; TINYLOG_LEVEL governs the other records, such as
// the per-input INF summary. The environment is read once, by the logger the
// tool installs as the tinylog default.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"pkt.systems/tinylog"
)

var errUsage = errors.New("usage")

func main() {
	if err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tinydump: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "tinydump",
		Usage:     "Print files as hex and ASCII rows",
		ArgsUsage: "[FILE...]",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Level code to dump at (INF, ERR, WAR, TRC, DBG)",
				Value:   "DBG",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Skip this many bytes of each input",
			},
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"n"},
				Usage:   "Dump at most this many bytes of each input (0 dumps everything)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			level, ok := tinylog.ParseLevel(c.String("level"))
			if !ok {
				return fmt.Errorf("%w: unknown level %q", errUsage, c.String("level"))
			}
			offset, length := c.Int("offset"), c.Int("length")
			if offset < 0 || length < 0 {
				return fmt.Errorf("%w: offset and length must not be negative", errUsage)
			}
			names := c.Args().Slice()
			if len(names) == 0 {
				names = []string{"-"}
			}
			return dumpAll(stdin, stdout, names, level, offset, length)
		},
	}
}

func dumpAll(stdin io.Reader, stdout io.Writer, names []string, level tinylog.Level, offset, length int) error {
	out := tinylog.NewObservedWriter(stdout, nil)
	logger := tinylog.FromEnv(tinylog.WithEnvWriter(out))
	logger.SetLevel(level)
	tinylog.SetDefault(logger)

	var errs []error
	for _, name := range names {
		data, err := readInput(stdin, name)
		if err != nil {
			logger.Errorf("%s: %v", name, err)
			errs = append(errs, err)
			continue
		}
		data = window(data, offset, length)
		logger.Infof("%s: %d bytes from offset %d", name, len(data), offset)
		logger.Dump(level, data)
	}
	if stats := out.Stats(); stats.Failures > 0 {
		errs = append(errs, fmt.Errorf("writing output: %d of %d writes failed, %d bytes lost", stats.Failures, stats.Writes, stats.LostBytes))
	}
	return errors.Join(errs...)
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func window(data []byte, offset, length int) []byte {
	if offset >= len(data) {
		return nil
	}
	data = data[offset:]
	if length > 0 && length < len(data) {
		data = data[:length]
	}
	return data
}

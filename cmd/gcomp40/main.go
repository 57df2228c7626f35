// Command gcomp40 compresses and decompresses COMP40 images from the
// command line.
//
// Usage:
//
//	gcomp40 enc [flags] <input>       PPM/PNG/JPEG/GIF/BMP/TIFF → COMP40 (use "-" for stdin)
//	gcomp40 dec [flags] <input.c40>   COMP40 → PPM or PNG (use "-" for stdin, -o - for stdout)
//	gcomp40 info <input.c40>          Display compressed image metadata
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/deepteams/comp40"
	"github.com/deepteams/comp40/pnm"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "gcomp40",
		Short:         "Compress and decompress COMP40 images",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = log.Level(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEncCmd(), newDecCmd(), newInfoCmd())
	return root
}

// openInput returns a reader for path, with "-" meaning stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// createOutput returns a writer for path, with "-" meaning stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// defaultOutput derives an output path from the input path and the
// desired extension.
func defaultOutput(input, ext string) string {
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

func newEncCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "enc [flags] <input>",
		Short: "Compress an image to the COMP40 format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, format, err := image.Decode(in)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			log.Debug().Str("format", format).
				Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).
				Msg("input decoded")

			if output == "" {
				output = defaultOutput(args[0], ".c40")
			}
			out, err := createOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			start := time.Now()
			if err := comp40.Encode(out, img); err != nil {
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Str("output", output).
				Msg("compressed")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path (default: <input>.c40, "-" for stdout)`)
	return cmd
}

func newDecCmd() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "dec [flags] <input.c40>",
		Short: "Decompress a COMP40 image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, err := comp40.Decode(in)
			if err != nil {
				return err
			}

			ext := "." + format
			if output == "" {
				output = defaultOutput(args[0], ext)
			}
			out, err := createOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			start := time.Now()
			switch format {
			case "ppm":
				err = pnm.Encode(out, img)
			case "png":
				err = png.Encode(out, img)
			default:
				return fmt.Errorf("unknown output format %q (want ppm or png)", format)
			}
			if err != nil {
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Str("output", output).
				Msg("decompressed")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path (default: <input>.<format>, "-" for stdout)`)
	cmd.Flags().StringVarP(&format, "format", "f", "ppm", "output format: ppm or png")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input.c40>",
		Short: "Show compressed image metadata without decoding pixels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			cfg, err := comp40.DecodeConfig(in)
			if err != nil {
				return err
			}

			blocks := cfg.Width * cfg.Height / 4
			fmt.Fprintf(cmd.OutOrStdout(), "dimensions: %dx%d\nblocks:     %d\nbody:       %d bytes\n",
				cfg.Width, cfg.Height, blocks, 4*blocks)
			return nil
		},
	}
}

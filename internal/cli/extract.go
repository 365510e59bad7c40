package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/sentex/internal/logger"
	"github.com/ppiankov/sentex/internal/pipeline"
)

var (
	outputPath string
	lastOnly   bool
	noCache    bool
	timeout    time.Duration
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <path>",
	Short: "Extract sentences from a directory of Markdown files or a single file",
	Long: `Extract reads Markdown articles and prints their sentences:
- A directory is scanned (not recursively) for files with the --ext extension
- A file path is read directly, whatever its extension
- Headings, front matter and blank lines are dropped
- Each fenced code block becomes one sentence, verbatim

Text that does not end a sentence at the end of a document is dropped
unless --flush-trailing is set.

Example:
  sentex extract ./posts
  sentex extract ./posts --format json --output sentences.json
  sentex extract ./posts/intro.md --flush-trailing
  sentex extract ./posts --last`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()

	// Loader flags
	flags.String("ext", "md", "file extension to match, without the dot")
	flags.Int("concurrency", 0, "parse workers (default: number of CPUs)")
	flags.DurationVar(&timeout, "timeout", 5*time.Minute, "overall extraction timeout")

	// Parser flags
	flags.Bool("flush-trailing", false, "emit unterminated text at the end of a document")
	flags.Bool("keep-code-headings", false, "keep lines starting with '#' inside code blocks")

	// Output flags
	flags.StringP("format", "f", pipeline.FormatText, "output format (text, json, html)")
	flags.StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	flags.BoolVar(&lastOnly, "last", false, "only output the last document")
	flags.BoolVar(&noCache, "no-cache", false, "disable the parse cache")

	_ = viper.BindPFlag("loader.extension", flags.Lookup("ext"))
	_ = viper.BindPFlag("parser.flush_trailing", flags.Lookup("flush-trailing"))
	_ = viper.BindPFlag("parser.keep_code_headings", flags.Lookup("keep-code-headings"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
		cfg.Concurrency.Workers = n
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	logger.SetVerbose(cfg.Output.Verbose)
	logger.Info("extracting %s (ext=%q, workers=%d, cache=%v)", path, cfg.Loader.Extension, cfg.Concurrency.Workers, cfg.Cache.Enabled)

	renderer, err := pipeline.NewRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := pipeline.NewPipeline(cfg).Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	if lastOnly {
		result = result.Last()
	}

	render := func(w io.Writer) error { return renderer.Render(w, result) }
	if outputPath != "" {
		err = writeOutput(outputPath, render)
	} else {
		err = render(cmd.OutOrStdout())
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if cfg.Output.Verbose {
		pipeline.RenderSummary(cmd.ErrOrStderr(), result)
		if outputPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s: %s\n", cfg.Output.Format, outputPath)
		}
	}

	return nil
}

// writeOutput renders into a temp file next to path and renames it into
// place, so a failed render never leaves a truncated file behind
func writeOutput(path string, render func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	_ = tmp.Chmod(0o644)

	if err := render(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}

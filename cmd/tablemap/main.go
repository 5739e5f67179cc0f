// Package main provides the CLI entry point for tablemap-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/tablemap-go/pkg/tablemap"
	"github.com/ukaji3/tablemap-go/pkg/tablemap/output"
)

var (
	outputPath string
	pretty     bool
	format     string
	selector   string
	strict     bool
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablemap [input.html]",
		Short: "Resolve row and column spans of HTML tables",
		Long: `tablemap-go maps every table of an HTML document onto a dense grid,
resolving rowspan and colspan so each position names the cell that owns it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, text, html, xlsx, coverage")
	rootCmd.Flags().StringVar(&selector, "selector", "", "XPath selecting the tables to map (default: //table)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed spans instead of recording them")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with default options")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

// newLogger creates a new logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.Logger = logger

	doc, err := tablemap.LoadDocument(inputPath)
	if err != nil {
		return err
	}

	source := filepath.Base(inputPath)
	mappers, err := tablemap.MapDocument(doc, source, opts)
	if err != nil {
		return fmt.Errorf("mapping failed: %w", err)
	}
	logger.Debug("mapped tables", "source", source, "tables", len(mappers))

	var buf bytes.Buffer
	if err := write(&buf, opts, source, mappers); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote output", "path", outputPath, "bytes", buf.Len())
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// buildOptions merges the config file, if any, with flags set on the command line.
func buildOptions(cmd *cobra.Command) (tablemap.Options, error) {
	opts := tablemap.DefaultOptions()
	if configPath != "" {
		loaded, err := tablemap.LoadOptions(configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") || configPath == "" {
		f, err := tablemap.ParseFormat(format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if flags.Changed("selector") {
		opts.Selector = selector
	}
	if flags.Changed("strict") {
		opts.Strict = &strict
	}
	if flags.Changed("pretty") {
		opts.Pretty = &pretty
	}
	return opts, nil
}

func write(w io.Writer, opts tablemap.Options, source string, mappers []*tablemap.Mapper) error {
	switch opts.Format {
	case tablemap.FormatHTML:
		for _, m := range mappers {
			if err := m.RenderHTML(w); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		return nil
	case tablemap.FormatCoverage:
		for i, m := range mappers {
			fmt.Fprintf(w, "table %d\n", i)
			if err := m.DumpCoverage(w); err != nil {
				return err
			}
		}
		return nil
	}

	doc := tablemap.NewDocument(source, mappers)
	switch opts.Format {
	case tablemap.FormatText:
		for _, t := range doc.Tables {
			fmt.Fprintf(w, "table %d\n%s", t.Index, output.RenderText(t))
		}
		return nil
	case tablemap.FormatXLSX:
		return output.WriteXLSX(w, doc)
	default:
		data, err := output.ToJSON(doc, opts.ShouldPretty())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

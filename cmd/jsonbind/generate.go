package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsonbind-lang/jsonbind/internal/cli/config"
	"github.com/jsonbind-lang/jsonbind/internal/cli/ui"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/golang"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/infer"
)

var (
	generateInputs   []string
	generateOutput   string
	generateTopLevel string
	generatePackage  string
	generateFormat   string
	generateJSON     bool
	generateVerbose  bool
	generateNoColor  bool
)

func init() {
	generateCmd.Flags().StringSliceVarP(&generateInputs, "input", "i", nil, "Sample file to read (repeatable; defaults to stdin)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "File to write generated code to (defaults to stdout)")
	generateCmd.Flags().StringVarP(&generateTopLevel, "top-level", "t", "", "Name for the top-level type")
	generateCmd.Flags().StringVarP(&generatePackage, "package", "p", "", "Package name for the generated file")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Sample format: json or yaml")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Output errors in JSON format")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Show detailed generation output")
	generateCmd.Flags().BoolVar(&generateNoColor, "no-color", false, "Disable colored output")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go types and JSON conversion code from samples",
	Long: `Read one or more JSON or YAML samples, infer a type graph, and render
Go struct declarations with Unmarshal/Marshal helpers.

Flags override jsonbind.yml values; unset flags fall back to the file,
then to built-in defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cfg)

		format, err := infer.ParseFormat(generateFormat)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.UnknownFormatError(generateFormat,
				[]string{string(infer.FormatJSON), string(infer.FormatYAML)}, generateNoColor))
			return fmt.Errorf("unknown input format %q", generateFormat)
		}

		logger := zap.NewNop()
		if generateVerbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()
		}

		samples, err := readSamples(generateInputs)
		if err != nil {
			return err
		}
		logger.Debug("read samples",
			zap.Int("count", len(samples)),
			zap.String("format", string(format)))

		root, err := infer.Infer(samples, format, generateTopLevel)
		if err != nil {
			return fmt.Errorf("inference failed: %w", err)
		}

		result, err := backend.Render(
			[]backend.TopLevel{{Hint: generateTopLevel, Type: root}},
			golang.New(),
			backend.Options{Namespace: generatePackage},
			logger,
		)
		if err != nil {
			reportRenderError(err)
			return fmt.Errorf("generation failed")
		}

		ui.WriteDiagnostics(os.Stderr, result.Diagnostics, generateNoColor)

		if generateOutput == "" {
			fmt.Print(result.Source)
			return nil
		}

		if dir := filepath.Dir(generateOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", generateOutput, err)
			}
		}
		if err := os.WriteFile(generateOutput, []byte(result.Source), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", generateOutput, err)
		}

		elapsed := time.Since(startTime)
		ui.WriteSuccess(os.Stdout,
			fmt.Sprintf("Generated %s in %.2fs", generateOutput, elapsed.Seconds()),
			generateNoColor)
		return nil
	},
}

// applyConfig fills unset flags from jsonbind.yml.
func applyConfig(cfg *config.Config) {
	if generatePackage == "" {
		generatePackage = cfg.Generate.Package
	}
	if generateOutput == "" {
		generateOutput = cfg.Generate.Output
	}
	if generateFormat == "" {
		generateFormat = cfg.Input.Format
	}
	if generateTopLevel == "" {
		generateTopLevel = cfg.Input.TopLevel
	}
}

// readSamples loads every input file, or stdin when none are given.
func readSamples(paths []string) ([][]byte, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, fmt.Errorf("no input: pass sample files with --input or pipe a sample to stdin")
		}
		return [][]byte{data}, nil
	}

	samples := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		samples = append(samples, data)
	}
	return samples, nil
}

func reportRenderError(err error) {
	var genErr *generrors.GeneratorError
	if !errors.As(err, &genErr) {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if generateJSON {
		out, jsonErr := genErr.ToJSON()
		if jsonErr != nil {
			fmt.Fprintln(os.Stderr, genErr)
			return
		}
		fmt.Fprintln(os.Stdout, out)
		return
	}

	fmt.Fprint(os.Stderr, ui.FormatGeneratorError(genErr, generateNoColor))
}

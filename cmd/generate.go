// File: cmd/generate.go
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/observability"
	"github.com/xkilldash9x/typogen/internal/typo"
)

type generateOptions struct {
	count int
	trace bool
}

// newGenerateCmd creates and configures the `generate` command.
func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	generateCmd := &cobra.Command{
		Use:   "generate [text...]",
		Short: "Inject typing errors into text",
		Long: `Mutates the given text, or every line read from stdin when no text is
given. Each input produces --count independent variants, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			if err := applyTypoFlags(cmd, cfg); err != nil {
				return err
			}
			return runGenerate(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), observability.GetLogger(), cfg, args, opts)
		},
	}

	generateCmd.Flags().IntVarP(&opts.count, "count", "n", 1, "variants to generate per input")
	generateCmd.Flags().BoolVar(&opts.trace, "trace", false, "print the edits applied to each variant")
	addTypoFlags(generateCmd)

	return generateCmd
}

// runGenerate contains the core, testable logic of the generate command.
func runGenerate(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	cfg config.Interface,
	args []string,
	opts generateOptions,
) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be a positive integer")
	}
	engine := typo.New(cfg.Typo(), logger)

	emit := func(text string) error {
		for i := 0; i < opts.count; i++ {
			res := engine.Generate(text)
			if _, err := fmt.Fprintln(out, res.Output); err != nil {
				return err
			}
			if opts.trace {
				if err := writeTrace(out, res); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if len(args) > 0 {
		return emit(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// writeTrace prints one indented line per edit.
func writeTrace(w io.Writer, res typo.Result) error {
	if res.Reverted {
		if _, err := fmt.Fprintln(w, "  (every word dropped; input kept)"); err != nil {
			return err
		}
	}
	for _, e := range res.Edits {
		if _, err := fmt.Fprintf(w, "  %s\n", formatEdit(e)); err != nil {
			return err
		}
	}
	return nil
}

func formatEdit(e typo.Edit) string {
	switch {
	case e.Index == typo.TextLevel:
		return fmt.Sprintf("%s: %q -> %q", e.Kind, e.Before, e.After)
	case e.Kind == typo.KindWordDrop:
		return fmt.Sprintf("%s[%d]: %q", e.Kind, e.Index, e.Before)
	default:
		return fmt.Sprintf("%s[%d]: %q -> %q", e.Kind, e.Index, e.Before, e.After)
	}
}

// File: cmd/follow.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hpcloud/tail"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/observability"
	"github.com/xkilldash9x/typogen/internal/typo"
)

type followOptions struct {
	fromStart bool
	poll      bool
	reopen    bool
}

// newFollowCmd creates and configures the `follow` command.
func newFollowCmd() *cobra.Command {
	var opts followOptions

	followCmd := &cobra.Command{
		Use:   "follow FILE",
		Short: "Emit a mutated copy of every line appended to a file",
		Long: `Tails FILE like 'tail -f' and prints a noisy version of each new line
until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			if err := applyTypoFlags(cmd, cfg); err != nil {
				return err
			}
			err = runFollow(ctx, cmd.OutOrStdout(), observability.GetLogger(), cfg, args[0], opts)
			if errors.Is(err, context.Canceled) {
				// Interrupting a follow is the normal way to stop it.
				return nil
			}
			return err
		},
	}

	followCmd.Flags().BoolVar(&opts.fromStart, "from-start", false, "process existing lines before following")
	followCmd.Flags().BoolVar(&opts.poll, "poll", false, "poll for changes instead of using inotify")
	followCmd.Flags().BoolVar(&opts.reopen, "reopen", true, "reopen the file when it is rotated")
	addTypoFlags(followCmd)

	return followCmd
}

// runFollow contains the core, testable logic of the follow command. It
// returns ctx.Err() once ctx is done.
func runFollow(ctx context.Context, out io.Writer, logger *zap.Logger, cfg config.Interface, path string, opts followOptions) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("could not resolve path '%s': %w", path, err)
	}

	tailCfg := tail.Config{
		Follow:    true,
		ReOpen:    opts.reopen,
		MustExist: true,
		Poll:      opts.poll,
		Logger:    tail.DiscardingLogger,
	}
	if !opts.fromStart {
		tailCfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(expanded, tailCfg)
	if err != nil {
		return fmt.Errorf("failed to follow %s: %w", expanded, err)
	}
	defer t.Cleanup()
	defer func() {
		if stopErr := t.Stop(); stopErr != nil {
			logger.Debug("Tail stopped with error", zap.Error(stopErr))
		}
	}()

	engine := typo.New(cfg.Typo(), logger)
	log := logger.With(zap.String("file", expanded))
	log.Info("Following file")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopped following file")
			return ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				if err := t.Err(); err != nil {
					return fmt.Errorf("tail of %s failed: %w", expanded, err)
				}
				return nil
			}
			if line.Err != nil {
				log.Warn("Skipping unreadable line", zap.Error(line.Err))
				continue
			}
			if _, err := fmt.Fprintln(out, engine.GenerateTypos(line.Text)); err != nil {
				return err
			}
		}
	}
}

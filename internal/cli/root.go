package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipemaze/interior"
	"github.com/katalvlaran/pipemaze/internal/config"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/render"
)

func defaultConfigPath() string {
	return config.Path()
}

// RootCommand creates the pipemaze command.
func (c *CLI) RootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   appName + " [input]",
		Short: "Trace the pipe loop of a maze and count the cells it encloses",
		Long: `pipemaze reads a grid of pipe glyphs (. S | - L J 7 F), infers the pipe
under the start tile S and traces the loop through it.

It prints two numbers: the distance along the loop to its farthest cell,
and the number of cells enclosed by the loop.

Settings are read from pipemaze.toml (or $PIPEMAZE_CONFIG) when present.
The optional argument overrides the configured input file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			level, err := parseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			c.SetLogLevel(level)

			ctx := withLogger(cmd.Context(), c.Logger)
			return c.solve(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// solve runs the pipeline for cfg, printing answers to out and the
// optional rendering to errOut.
func (c *CLI) solve(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	logger := loggerFromContext(ctx)
	logger.Debug("solving", "input", cfg.Input, "axis", cfg.Axis, "max_steps", cfg.MaxSteps)

	axis, err := maze.ParseAxis(cfg.Axis)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := maze.SolveFile(cfg.Input, maze.WithAxis(axis), maze.WithMaxSteps(cfg.MaxSteps))
	if err != nil {
		return err
	}
	logger.Debug("grid loaded", "rows", res.Grid.Rows(), "cols", res.Grid.Cols())
	logger.Debug("start resolved", "at", fmt.Sprintf("%d,%d", res.Loop.Start.X-1, res.Loop.Start.Y-1), "pipe", res.StartKind)
	logger.Debug("enclosed pockets", "count", len(interior.Pockets(res.Grid, res.Loop)))
	prog.done("solved", "loop", res.Loop.Len(), "steps", res.Steps, "enclosed", res.Enclosed)

	if _, err := fmt.Fprintln(out, res.Steps); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, res.Enclosed); err != nil {
		return err
	}

	if cfg.Render {
		rd := render.New(lipgloss.NewRenderer(errOut))
		if _, err := io.WriteString(errOut, rd.Render(res.Grid, res.Loop)); err != nil {
			return err
		}
	}
	return nil
}

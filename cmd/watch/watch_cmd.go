package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph/registry"
	"github.com/LegacyCodeHQ/srcdep/internal/config"
)

type watchOptions struct {
	graph.Options
	port int
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [target]",
		Short: "Re-render the dependency graph whenever sources change",
		Long: `Watch a source tree, rebuild the dependency graph when a file one of the
language plugins handles changes, and write the result to --output (or stdout).

With --port, a live-updating Graphviz view is served at localhost as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	opts.BindAnalysisFlags(cmd)
	opts.BindRenderFlags(cmd)
	cmd.Flags().IntVarP(&opts.port, "port", "P", 0, "Serve a live graph viewer on this port (0 disables)")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *watchOptions) error {
	cfg, err := opts.Resolve(cmd, args)
	if err != nil {
		return err
	}
	if _, err := graph.NewFormatter(cfg.OutputFormat); err != nil {
		return err
	}
	if cfg.CacheFile != "" {
		slog.Warn("cache file is ignored in watch mode", "path", cfg.CacheFile)
		cfg.CacheFile = ""
	}

	modules, err := registry.ModulesFor(cfg.Language)
	if err != nil {
		return err
	}
	target, err := graph.ResolveTarget(cfg.Target)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var b *broker
	if opts.port > 0 {
		b = newBroker()
		srv := newServer(b, opts.port)
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
		}
		go srv.Serve(ln)
		defer srv.Close()
	}

	r := &rebuilder{cmd: cmd, cfg: cfg, broker: b}
	if err := r.rebuild(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("initial graph build failed: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s\n", target.Root)
	if b != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Serving at http://localhost:%d\n", opts.port)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Press Ctrl+C to stop\n")

	filter := newChangeFilter(target, modules, cfg.OutputFile)
	return watchAndRebuild(ctx, target.Root, filter.isRelevantChange, func() {
		if err := r.rebuild(io.Discard); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "graph rebuild error: %v\n", err)
		}
	})
}

// rebuilder runs one analysis and render at a time and fans the result out
// to the output and, when serving, to the viewer.
type rebuilder struct {
	mu     sync.Mutex
	cmd    *cobra.Command
	cfg    *config.Config
	broker *broker
}

func (r *rebuilder) rebuild(progress io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update, err := r.build(progress)
	if r.broker != nil {
		if err != nil {
			r.broker.publish(errorEvent(err))
		} else {
			r.broker.publish(update)
		}
	}
	return err
}

func (r *rebuilder) build(progress io.Writer) (graphUpdate, error) {
	analysis, err := graph.Analyze(r.cfg, progress)
	if err != nil {
		return graphUpdate{}, err
	}
	_, output, err := graph.Render(analysis, r.cfg)
	if err != nil {
		return graphUpdate{}, err
	}
	if err := graph.WriteOutput(r.cmd, r.cfg, output); err != nil {
		return graphUpdate{}, err
	}

	if r.broker == nil {
		return graphUpdate{}, nil
	}
	dot := output
	if format, _ := formatters.ParseOutputFormat(r.cfg.OutputFormat); format != formatters.OutputFormatDOT {
		dotCfg := *r.cfg
		dotCfg.OutputFormat = formatters.OutputFormatDOT.String()
		if _, dot, err = graph.Render(analysis, &dotCfg); err != nil {
			return graphUpdate{}, err
		}
	}
	data := analysis.Data
	return graphEvent(analysis.Label(), dot, len(data.Nodes()), len(data.FlatDependencies)), nil
}

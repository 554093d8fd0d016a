package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/poricom/poricom/internal/cli"
	"github.com/poricom/poricom/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload settings when their files change",
	Long: `Watch the settings directory and reload a group whenever its file is
edited outside poricom. The preview stylesheet and the hotkeys are refreshed
after every reload. Requires the file store backend.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.Ctx(), "watch"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchSettings(ctx, a, cmd.OutOrStdout())
}

// watchSettings reloads groups on store events until ctx is done. Events are
// handed over a channel so every group operation runs on this goroutine.
func watchSettings(ctx context.Context, a *cli.App, out io.Writer) error {
	if a.Files == nil {
		return fmt.Errorf("watch requires the %q store backend", "file")
	}

	events := make(chan string, 1)
	err := a.Files.Watch(ctx, func(section string) {
		select {
		case events <- section:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, a.Renderer.RenderPath("Watching", a.Files.Dir()))

	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case section := <-events:
			g, err := a.Menu.Reload(ctx, section)
			if err != nil {
				log.Warn().Err(err).Str("section", section).Msg("reload failed")
				continue
			}
			fmt.Fprint(out, a.Renderer.RenderChanged(g))
		}
	}
}

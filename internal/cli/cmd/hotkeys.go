package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hotkeysCmd = &cobra.Command{
	Use:   "hotkeys",
	Short: "Print the accelerator of every action",
	Long: `Print the keyboard accelerators computed from the HOTKEYS group, in the
form registered with the desktop: <shift>+<ctrl>+<alt>+<cmd>+KEY.`,
	Args: cobra.NoArgs,
	RunE: runHotkeys,
}

func init() {
	rootCmd.AddCommand(hotkeysCmd)
}

func runHotkeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderBindings(a.Host.Bindings()))
	return nil
}

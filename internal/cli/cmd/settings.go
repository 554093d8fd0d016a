package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/cli"
	"github.com/poricom/poricom/internal/cli/picker"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/infrastructure/fonts"
)

// newPicker builds the interactive editor used by 'settings edit'.
var newPicker = func() port.ValuePicker { return picker.New(picker.WithFonts(fonts.NewDetector())) }

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"s"},
	Short:   "Show and change settings",
	Long: `Show and change the VIEW, HOTKEYS and OCR settings groups.

Groups are addressed by name or by section: view, hotkeys (or hotkey), ocr.

Value syntax:
  color  #RRGGBBAA, #RRGGBB, rgba(r, g, b, a) or r,g,b,a
  font   Family,Size
  flag   true or false
  enum   index or label (e.g. Q, tesseract)`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show [group]",
	Short: "Print every property of one or all groups",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <group> <property>",
	Short: "Print one property",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <group> <property> <value>",
	Short: "Store one property",
	Long: `Store one property. Hotkey and OCR groups are saved immediately and
the new shortcuts or engine are applied.`,
	Args: cobra.ExactArgs(3),
	RunE: runSettingsSet,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit <group> <property>",
	Short: "Edit one property interactively",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsEdit,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <group>",
	Short: "Restore every property of a group to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		g, err := a.Group(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, a.Renderer.RenderTabs(a.Menu.Tabs(), g.Name()))
		fmt.Fprint(out, a.Renderer.RenderGroup(g))
		return nil
	}

	for _, g := range a.Menu.Tabs() {
		fmt.Fprint(out, a.Renderer.RenderGroup(g))
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	g, p, err := lookupProperty(a, args[0], args[1])
	if err != nil {
		return err
	}
	v, err := g.Get(p.Name)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderValue(p, v))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	g, p, err := lookupProperty(a, args[0], args[1])
	if err != nil {
		return err
	}
	v, err := entity.ParseValue(p, args[2])
	if err != nil {
		return err
	}
	return storeValue(a.Ctx(), a, cmd.OutOrStdout(), g, p, v)
}

func runSettingsEdit(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	return editProperty(a.Ctx(), a, newPicker(), cmd.OutOrStdout(), args[0], args[1])
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	g, err := a.Group(args[0])
	if err != nil {
		return err
	}
	if err := g.Reset(a.Ctx()); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderReset(g))
	return nil
}

// editProperty runs the picker for one property and stores an accepted value.
func editProperty(ctx context.Context, a *cli.App, vp port.ValuePicker, out io.Writer, group, name string) error {
	g, p, err := lookupProperty(a, group, name)
	if err != nil {
		return err
	}
	if p.Forced != nil {
		return forcedError(g, p)
	}

	uc := usecase.NewEditPropertyUseCase(vp)
	result, err := uc.Execute(ctx, usecase.EditPropertyInput{Group: g, Property: p.Name})
	if err != nil {
		return err
	}
	if !result.Accepted {
		fmt.Fprint(out, a.Renderer.RenderUnchanged(p))
		return nil
	}
	if err := commit(ctx, g); err != nil {
		return err
	}
	fmt.Fprint(out, a.Renderer.RenderStored(g, p, result.Value))
	return nil
}

// storeValue sets v and commits buffered groups right away.
func storeValue(ctx context.Context, a *cli.App, out io.Writer, g *usecase.SettingsGroup, p entity.Property, v entity.Value) error {
	if p.Forced != nil && v != p.Forced {
		return forcedError(g, p)
	}
	if err := g.Set(ctx, p.Name, v); err != nil {
		return err
	}
	if err := commit(ctx, g); err != nil {
		return err
	}
	fmt.Fprint(out, a.Renderer.RenderStored(g, p, v))
	return nil
}

// forcedError reports an edit of a property whose value is fixed on load.
func forcedError(g *usecase.SettingsGroup, p entity.Property) error {
	return fmt.Errorf("%w: %s.%s is fixed to %s", entity.ErrInvalidValue, g.Section(), p.Name, entity.FormatValue(p, p.Forced))
}

// commit saves a buffered group. Edits that could not be stored are dropped.
func commit(ctx context.Context, g *usecase.SettingsGroup) error {
	if g.Policy() != usecase.Buffered {
		return nil
	}
	if err := g.Save(ctx); err != nil {
		g.Discard(ctx)
		return err
	}
	return nil
}

func lookupProperty(a *cli.App, group, name string) (*usecase.SettingsGroup, entity.Property, error) {
	g, err := a.Group(group)
	if err != nil {
		return nil, entity.Property{}, err
	}
	p, ok := g.Catalog().Lookup(name)
	if !ok {
		return nil, entity.Property{}, fmt.Errorf("%w: %s has no property %q", entity.ErrUnknownProperty, g.Name(), name)
	}
	return g, p, nil
}

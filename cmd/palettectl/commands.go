package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"palette-api/internal/client"
	"palette-api/internal/config"
	"palette-api/internal/model"
	"palette-api/internal/palette"
	"palette-api/internal/themes"
	"palette-api/internal/ui"
)

func (a *app) defaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Show the default palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(palette.Default(), sourceDefault, "")
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Generate a harmonious palette locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(a.gen.Harmonious(), sourceLocal, "")
		},
	}
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <description>",
		Short: "Ask the palette API for a palette matching a theme",
		Example: `  palettectl theme "autumn forest"
  palettectl theme coffee shop --copy 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTheme(cmd.Context(), strings.Join(args, " "))
		},
	}
}

// runTheme falls back to a local harmonious palette whenever the API can't
// answer; a server-side fallback is shown as-is with a warning.
func (a *app) runTheme(ctx context.Context, theme string) error {
	if _, err := themes.ValidateTheme(theme); err != nil {
		return errors.New(themes.MsgInvalidTheme)
	}

	api := a.apiClient()
	if !api.Healthy(ctx) {
		a.warn("Palette API unavailable at " + a.v.GetString("api") + ", showing a random palette instead.")
		return a.show(a.gen.Harmonious(), sourceLocal, "")
	}

	var res themes.Result
	err := ui.WithSpinner("Generating palette for "+theme+"...", func() error {
		var err error
		res, err = api.ThemePalette(ctx, theme)
		return err
	})
	if err != nil {
		var se *client.StatusError
		if errors.As(err, &se) && se.Message != "" {
			a.warn(se.Message + " Showing a random palette instead.")
		} else {
			a.warn("Theme generation failed: " + err.Error())
		}
		return a.show(a.gen.Harmonious(), sourceLocal, "")
	}

	if res.Fallback {
		a.warn(res.Error)
		return a.show(res.Colors, sourceFallback, res.Theme)
	}
	return a.show(res.Colors, sourceAI, res.Theme)
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the palette API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url := a.v.GetString("api")
			if !a.apiClient().Healthy(cmd.Context()) {
				return fmt.Errorf("palette API unavailable at %s", url)
			}
			fmt.Fprintln(a.out, ui.Success("✔ Palette API is up at %s", url))
			return nil
		},
	}
}

func (a *app) checkModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-model",
		Short: "Verify the configured Bedrock model answers",
		Long: `check-model reads the same AWS_* and BEDROCK_MODEL_ID settings as the
server, sends the model a tiny prompt and prints troubleshooting hints if
the call fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheckModel(cmd.Context(), config.Load())
		},
	}
}

func (a *app) runCheckModel(ctx context.Context, cfg *config.Config) error {
	fmt.Fprintln(a.out, ui.Heading("Configuration"))
	fmt.Fprintf(a.out, "  Region:     %s\n", cfg.AWSRegion)
	fmt.Fprintf(a.out, "  Model:      %s\n", cfg.ModelID)
	fmt.Fprintf(a.out, "  Access key: %s\n", setOrNot(cfg.AWSAccessKeyID))
	fmt.Fprintf(a.out, "  Secret key: %s\n", setOrNot(cfg.AWSSecretAccessKey))
	fmt.Fprintln(a.out)

	inv, err := a.newInvoker(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bedrock client: %w", err)
	}

	var reply string
	err = ui.WithSpinner("Testing "+cfg.ModelID+"...", func() error {
		var err error
		reply, err = model.Probe(ctx, inv)
		return err
	})
	if err != nil {
		fmt.Fprintln(a.out, ui.Error("✖ Failed to access %s", cfg.ModelID))
		fmt.Fprintln(a.out, ui.RenderNote(ui.BulletList(model.Hints(err)), "Troubleshooting", ui.Brand.Error))
		return errors.New("model check failed")
	}

	fmt.Fprintln(a.out, ui.Success("✔ %s is accessible", cfg.ModelID))
	fmt.Fprintln(a.out, ui.Muted("Test response: ")+strings.TrimSpace(reply))
	return nil
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palette-api/internal/client"
	"palette-api/internal/config"
	"palette-api/internal/model"
	"palette-api/internal/palette"
)

// app carries the collaborators every command uses, so tests can swap them.
type app struct {
	out io.Writer
	v   *viper.Viper

	gen        *palette.Generator
	copy       func(string) bool
	now        func() time.Time
	newInvoker func(ctx context.Context, cfg *config.Config) (model.Invoker, error)
}

func newApp(out io.Writer) *app {
	return &app{
		out:        out,
		v:          viper.New(),
		gen:        palette.NewGenerator(nil),
		copy:       client.Copy,
		now:        time.Now,
		newInvoker: bedrockInvoker,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "palettectl",
		Short: "Generate five-color palettes, locally or from a theme",
		Long: `palettectl prints five-color hex palettes. Without a subcommand it shows
the default palette; "random" builds a harmonious one locally and "theme"
asks the palette API to match a description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(palette.Default(), sourceDefault, "")
		},
	}

	flags := root.PersistentFlags()
	flags.String("api", client.DefaultBaseURL, "palette API base URL (env PALETTE_API)")
	flags.Duration("timeout", 30*time.Second, "API request timeout (env PALETTE_TIMEOUT)")
	flags.Bool("json", false, "print the palette as JSON")
	flags.Int("copy", 0, "copy the N-th color (1-5) to the clipboard")
	flags.String("export", "", "write the palette as a JSON file into this directory")

	a.v.SetEnvPrefix("PALETTE")
	a.v.AutomaticEnv()
	for _, name := range []string{"api", "timeout", "json", "copy", "export"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.defaultCmd(),
		a.randomCmd(),
		a.themeCmd(),
		a.healthCmd(),
		a.checkModelCmd(),
	)
	return root
}

func (a *app) apiClient() *client.Client {
	return client.New(a.v.GetString("api"), client.WithTimeout(a.v.GetDuration("timeout")))
}

func bedrockInvoker(ctx context.Context, cfg *config.Config) (model.Invoker, error) {
	b, err := model.NewBedrock(ctx, model.BedrockConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		ModelID:         cfg.ModelID,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

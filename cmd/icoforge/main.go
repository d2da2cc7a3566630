package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phraims/icoforge/builder"
	"github.com/phraims/icoforge/config"
	apperrors "github.com/phraims/icoforge/errors"
	"github.com/phraims/icoforge/icopack"
	"github.com/phraims/icoforge/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// build flags
	iconsetDir string
	outputPath string
	report     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "icoforge",
	Short: "icoforge - assemble a Windows .ico from an iconset directory",
	Long: `icoforge bundles the conventionally named PNGs of an iconset
directory (icon_16x16.png through icon_256x256.png) into one
multi-resolution Windows icon file, synthesizing the 48x48 entry
Windows wants from the 256x256 source.

Run "icoforge build" with no flags to use the conventional layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

// buildCmd assembles the icon container
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the .ico from the iconset directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result, err := builder.New(cfg).Build(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Successfully created %s\n", result.Output)
		fmt.Printf("Size: %d bytes (%d KB)\n", result.Bytes, result.Bytes/1024)
		return nil
	},
}

// inspectCmd lists the entries of an existing icon container
var inspectCmd = &cobra.Command{
	Use:   "inspect <file.ico>",
	Short: "List the resolution entries of an .ico file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initLogging(logging.DefaultConfig())

		f, err := os.Open(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return apperrors.NewNotFound("icon file", args[0])
			}
			return err
		}
		defer f.Close()

		infos, err := icopack.Inspect(f)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d entries\n", args[0], len(infos))
		for _, info := range infos {
			fmt.Printf("  %dx%d\n", info.Width, info.Height)
		}
		return nil
	},
}

// loadConfig binds the build configuration and applies flag overrides.
func loadConfig() (*config.BuildConfig, error) {
	opts := config.DefaultOptions()
	if configPath != "" {
		opts.BasePath = configPath
		opts.Optional = false
	}

	cfg, err := config.LoadBuild(opts)
	if err != nil {
		return nil, apperrors.NewConfig(err.Error()).WithInnerError(err)
	}

	if iconsetDir != "" {
		cfg.IconsetDir = iconsetDir
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if report {
		cfg.Report = true
	}

	initLogging(cfg.Logging)
	return cfg, nil
}

func initLogging(cfg logging.Config) {
	if verbose {
		cfg.Level = "debug"
	}
	logging.Init(cfg)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config directory (default ./config, optional)")

	buildCmd.Flags().StringVar(&iconsetDir, "iconset", "", "iconset directory (default phraims.iconset)")
	buildCmd.Flags().StringVar(&outputPath, "out", "", "output .ico path (default resources/phraims.ico)")
	buildCmd.Flags().BoolVar(&report, "report", false, "write a JSON build report next to the output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperrors.Format(err))
		os.Exit(apperrors.ExitCode(err))
	}
}

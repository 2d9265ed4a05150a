package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/lazview/internal/config"
	"github.com/san-kum/lazview/internal/export"
	"github.com/san-kum/lazview/internal/pipeline"
	"github.com/san-kum/lazview/internal/report"
	"github.com/san-kum/lazview/internal/tui"
	"github.com/san-kum/lazview/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	downsample int
	useColor   bool
	eightBit   bool
	laszip     string
	pointSize  float64
	configFile string
	preset     string
	jsonOut    bool
	bins       int
)

// main registers the commands and runs the viewer when no subcommand is
// given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lazview [file]",
		Short: "interactive LAS/LAZ point-cloud viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}

	// glog registers -v, -logtostderr and friends on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		_ = flag.CommandLine.Parse(nil)
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&downsample, "downsample", "d", config.DefaultDownsample, "keep every n-th point")
	pf.BoolVar(&useColor, "use-color", false, "use the file's RGB channels when present")
	pf.BoolVar(&eightBit, "eight-bit", false, "treat RGB channels as 8-bit instead of 16-bit")
	pf.StringVar(&laszip, "laszip", config.DefaultLASzip, "laszip executable used to decompress .laz")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().Float64Var(&pointSize, "point-size", config.DefaultPointSize, "point size in pixels")

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "open the point cloud in a 3D window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().Float64Var(&pointSize, "point-size", config.DefaultPointSize, "point size in pixels")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "print point count, bounds and an elevation histogram",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInfo,
	}
	infoCmd.Flags().BoolVar(&jsonOut, "json", false, "print the summary as JSON")
	infoCmd.Flags().IntVar(&bins, "bins", 20, "elevation histogram bins (0 disables)")

	exportCmd := &cobra.Command{
		Use:   "export [file] [out.ply|out.svg]",
		Short: "write the sampled, colored points as PLY or a plan-view SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTRIDE\tCOLOR\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", name, p.Downsample, p.UseColor, p.Description)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(viewCmd, infoCmd, exportCmd, presetsCmd)
	return rootCmd
}

// buildConfig layers defaults, the config file, the preset and finally any
// flag set explicitly on the command line.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("downsample") {
		cfg.Downsample = downsample
	}
	if flags.Changed("use-color") {
		cfg.UseColor = useColor
	}
	if flags.Changed("eight-bit") {
		cfg.ColorDepth = 16
		if eightBit {
			cfg.ColorDepth = 8
		}
	}
	if flags.Changed("laszip") {
		cfg.LASzip = laszip
	}
	if flags.Changed("point-size") {
		cfg.Render.PointSize = pointSize
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := prepare(cmd, cfg)
	if err != nil {
		return err
	}
	return viewer.Show(viewer.NewRaylib(), res.Scene, viewer.OptionsFromConfig(cfg))
}

// prepare shows a spinner while loading when stderr is a terminal.
func prepare(cmd *cobra.Command, cfg *config.Config) (*pipeline.Result, error) {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return tui.Prepare(cfg, cmd.InOrStdin(), f)
	}
	return pipeline.Prepare(cfg)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := prepare(cmd, cfg)
	if err != nil {
		return err
	}

	summary := report.Summarize(res, bins)
	if jsonOut {
		return report.WriteJSON(cmd.OutOrStdout(), summary)
	}
	return report.Render(cmd.OutOrStdout(), summary)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[:1])
	if err != nil {
		return err
	}
	res, err := prepare(cmd, cfg)
	if err != nil {
		return err
	}
	return export.Save(args[1], res.Scene)
}

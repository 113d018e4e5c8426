package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andareed/siftly-datazoom/config"
	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/andareed/siftly-datazoom/logging"
	"github.com/charmbracelet/fang"
	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	Version     = "dev"
	BuildCommit = "00000000"

	cfgFile      string
	logFile      string
	exportOutput string

	rootCmd = &cobra.Command{
		Use:   "sfzoom <file.csv|file.xlsx>",
		Short: "Zoom through a CSV or spreadsheet series in the terminal",
		Long: `sfzoom - browse a CSV or spreadsheet series through a data zoom window.

Drag the slider handles or the window with the mouse, use the wheel to zoom,
or move the window from the keyboard. The table below shows the rows the
window selects.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	exportCmd = &cobra.Command{
		Use:   "export <file.csv|file.xlsx>",
		Short: "Render the configured window of a series to a PNG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  export,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

// windowFlags override the matching config keys when set.
var windowFlags = map[string]string{
	"start":        "datazoom.start",
	"end":          "datazoom.end",
	"filter-mode":  "datazoom.filter_mode",
	"type":         "datazoom.type",
	"time-column":  "time_column",
	"value-column": "value_column",
	"sheet":        "sheet",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default "+filepath.Join(config.Dir(), config.DefaultConfigName+".yaml")+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "debug", "", "Write debug logs to file")

	flags := rootCmd.PersistentFlags()
	flags.Float64("start", datazoom.DefaultStart, "Window start in percent")
	flags.Float64("end", datazoom.DefaultEnd, "Window end in percent")
	flags.String("filter-mode", datazoom.None.String(), "filter, weakFilter, empty or none")
	flags.String("type", datazoom.Slider.String(), "slider or inside")
	flags.String("time-column", "time", "Column holding row timestamps")
	flags.String("value-column", "", "Column to plot (default: first numeric column)")
	flags.String("sheet", "", "Sheet to read from .xlsx input (default: first sheet)")

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "PNG file to write (default <file>-window.png)")
	rootCmd.AddCommand(exportCmd, versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("sfzoom - terminal data zoom\n\n")
	fmt.Printf("  Version: %s\n", Version)
	fmt.Printf("  Commit:  %s\n", BuildCommit)
	fmt.Printf("  Runtime: %s\n\n", runtime.Version())
}

func bindWindowFlags(loader *config.Loader, flags *pflag.FlagSet) error {
	for name, key := range windowFlags {
		if err := loader.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func loadConfig(loader *config.Loader) (config.Config, *datazoom.DataZoom, error) {
	cfg, err := loader.Read()
	if err != nil {
		return config.Config{}, nil, err
	}
	dz, err := cfg.DataZoom.Build()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, dz, nil
}

// run starts the interactive zoom view.
func run(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return errors.Join(err, errApp)
	}
	defer cleanup()

	log.Printf("sfzoom: Started version=%s commit=%s", Version, BuildCommit)

	configUpdates := make(chan config.Config)
	loader := config.NewLoader(cfgFile, configUpdates)
	if err := bindWindowFlags(loader, cmd.Flags()); err != nil {
		return errors.Join(err, errApp)
	}
	cfg, dz, err := loadConfig(loader)
	if err != nil {
		return errors.Join(err, errApp)
	}

	inputPath := args[0]
	data, err := loadSeriesFromFile(inputPath, cfg)
	if err != nil {
		return errors.Join(err, errApp)
	}

	zones := zone.New()
	defer zones.Close()

	m := newModel(cfg, dz, data, zones)
	m.InitialPath = inputPath

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()))

	if loader.Path() != "" {
		logging.Infof("config: watching %s", loader.Path())
		loader.Watch()
		go forwardConfigChanges(cmd.Context(), program, configUpdates)
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Tea program error: %v", err)
		return errors.Join(err, errApp)
	}
	return nil
}

func forwardConfigChanges(ctx context.Context, program *tea.Program, updates <-chan config.Config) {
	for {
		select {
		case <-ctx.Done():
			return
		case cfg := <-updates:
			program.Send(configReloadedMsg{cfg: cfg})
		}
	}
}

// export renders the configured window without starting the UI.
func export(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(cfgFile, nil)
	if err := bindWindowFlags(loader, cmd.Flags()); err != nil {
		return errors.Join(err, errApp)
	}
	cfg, dz, err := loadConfig(loader)
	if err != nil {
		return errors.Join(err, errApp)
	}

	inputPath := args[0]
	data, err := loadSeriesFromFile(inputPath, cfg)
	if err != nil {
		return errors.Join(err, errApp)
	}

	out := exportOutput
	if out == "" {
		out = filepath.Join(exportDir(inputPath), defaultExportName(inputPath))
	}
	if err := exportChartFile(out, data, dz); err != nil {
		return errors.Join(err, errApp)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", out, data.windowStatusLabel(dz.Start, dz.End))
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	app "sensor-inspector/internal/application"
	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
	"sensor-inspector/internal/infrastructure/storage"
	"sensor-inspector/internal/infrastructure/vision"
)

var inspectFlags struct {
	width      int
	height     int
	bitDepth   int
	pattern    string
	algorithm  string
	params     []string
	paramsFile string
	out        string
	maxPrint   int
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [raw-file]",
	Short: "Run a detector over a headerless RAW file",
	Long: `Loads a headerless RAW file, runs the selected detector and prints
the summary followed by the first overlays in full-image coordinates.

Example:
  inspector inspect frame.raw --width 1920 --height 1080 --bit-depth 10 \
    --pattern RGGB --algorithm bad-line --param threshold=200 --param axis=Rows`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List detectors and their parameter schemas",
	RunE:  runAlgorithms,
}

func init() {
	f := inspectCmd.Flags()
	f.IntVar(&inspectFlags.width, "width", 0, "frame width in samples (default RAW_WIDTH)")
	f.IntVar(&inspectFlags.height, "height", 0, "frame height in samples (default RAW_HEIGHT)")
	f.IntVar(&inspectFlags.bitDepth, "bit-depth", 0, "bits per sample, 1-16 (default RAW_BIT_DEPTH)")
	f.StringVar(&inspectFlags.pattern, "pattern", "", "RGGB, BGGR, GRBG, GBRG or Mono (default RAW_PATTERN)")
	f.StringVarP(&inspectFlags.algorithm, "algorithm", "a", string(entity.KindBadPixel), "detector key or name")
	f.StringArrayVarP(&inspectFlags.params, "param", "p", nil, "detector parameter as key=value, repeatable")
	f.StringVar(&inspectFlags.paramsFile, "params", "", "YAML file with detector parameters")
	f.StringVarP(&inspectFlags.out, "out", "o", "", "write overlay image (.png or .tiff)")
	f.IntVar(&inspectFlags.maxPrint, "max-print", 20, "overlays to print")
}

func runInspect(cmd *cobra.Command, args []string) error {
	params, err := parseParams(inspectFlags.params, inspectFlags.paramsFile)
	if err != nil {
		return err
	}

	var renderer port.OverlayRenderer
	if inspectFlags.out != "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(inspectFlags.out)), ".")
		renderer = vision.NewRenderer(ext)
	}

	svc := app.NewInspectionService(
		app.NewUserService(storage.NewMemoryUserRepository(entity.Session{})),
		vision.NewRegistry(cfg.OverlayLimit),
		renderer,
		logger,
	)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open raw: %w", err)
	}
	defer f.Close()

	out, err := svc.Inspect(cmd.Context(), app.InspectionRequest{
		Raw:       f,
		Width:     orDefault(inspectFlags.width, cfg.RawWidth),
		Height:    orDefault(inspectFlags.height, cfg.RawHeight),
		BitDepth:  orDefault(inspectFlags.bitDepth, cfg.RawBitDepth),
		Pattern:   orDefaultString(inspectFlags.pattern, cfg.RawPattern),
		Algorithm: inspectFlags.algorithm,
		Params:    params,
		Render:    renderer != nil,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), out.Result, inspectFlags.maxPrint)

	if renderer != nil {
		if len(out.Highlighted) == 0 {
			return fmt.Errorf("overlay image was not rendered")
		}
		if err := os.WriteFile(inspectFlags.out, out.Highlighted, 0o644); err != nil {
			return fmt.Errorf("write overlay: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Overlay written to %s\n", inspectFlags.out)
	}
	return nil
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, d := range vision.NewRegistry(cfg.OverlayLimit).All() {
		fmt.Fprintf(w, "%s (%s)\n  %s\n", d.Name(), d.Key(), d.Description())
		for _, p := range d.Parameters() {
			fmt.Fprintf(w, "  - %s %s default=%v", p.Name, p.Type, p.Default)
			if p.Bounded {
				fmt.Fprintf(w, " min=%v max=%v", p.Min, p.Max)
			}
			if len(p.Options) > 0 {
				fmt.Fprintf(w, " options=%s", strings.Join(p.Options, ","))
			}
			fmt.Fprintf(w, " (%s)\n", p.Label)
		}
	}
	return nil
}

// parseParams собирает параметры из YAML-файла, затем key=value поверх.
func parseParams(pairs []string, file string) (map[string]any, error) {
	params := make(map[string]any)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read params: %w", err)
		}
		if err := yaml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("parse params %s: %w", file, err)
		}
	}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid --param %q, want key=value", pair)
		}
		params[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return params, nil
}

func printResult(w io.Writer, res *entity.DetectionResult, limit int) {
	fmt.Fprintln(w, res.Message)
	for i, o := range res.Overlays {
		if i >= limit {
			fmt.Fprintf(w, "... %d more\n", len(res.Overlays)-limit)
			break
		}
		switch o.Kind {
		case entity.OverlayLine:
			fmt.Fprintf(w, "line  (%d,%d)-(%d,%d)\n", o.From.X, o.From.Y, o.To.X, o.To.Y)
		case entity.OverlayPoint:
			fmt.Fprintf(w, "point (%d,%d)\n", o.From.X, o.From.Y)
		}
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// Command nexrad-preview renders one scan/moment of an Archive II file to a
// PNG, or an entire directory of files to a progress-tracked batch of PNGs.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/msufi98/nexrad-archive2/archive2"
	"github.com/msufi98/nexrad-archive2/preview"
)

var cmd = &cobra.Command{
	Use:   "nexrad-preview",
	Short: "nexrad-preview renders PPI previews from NEXRAD Level 2 archive files.",
	Run:   run,
}

var (
	inputFile  string
	outputFile string
	directory  string
	outputDir  string
	moment     string
	scanIdx    int
	imageSize  int
	maxRangeKm float64
	rawValues  bool
	logLevel   string
	runners    int
)

func init() {
	cmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "archive 2 file to render")
	cmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "preview.png", "output image path")
	cmd.PersistentFlags().StringVarP(&directory, "directory", "d", "", "directory of archive files to batch-render")
	cmd.PersistentFlags().StringVar(&outputDir, "output-dir", "out", "output directory for batch rendering")
	cmd.PersistentFlags().StringVarP(&moment, "moment", "m", "REF", "moment to render: REF, VEL, SW, ZDR, PHI, RHO, CFP")
	cmd.PersistentFlags().IntVarP(&scanIdx, "scan", "s", 0, "scan index to render")
	cmd.PersistentFlags().IntVar(&imageSize, "size", 1024, "output image size in pixels")
	cmd.PersistentFlags().Float64Var(&maxRangeKm, "max-range-km", 460, "range in km mapped to the image half-width")
	cmd.PersistentFlags().BoolVar(&rawValues, "raw", false, "color by raw gate codes instead of engineering units")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level: error, info, debug, trace")
	cmd.PersistentFlags().IntVarP(&runners, "threads", "t", runtime.NumCPU(), "worker count for batch rendering")
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	levels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	if lvl, ok := levels[logLevel]; ok {
		logrus.SetLevel(lvl)
	}

	opts := preview.Options{Size: imageSize, MaxRangeKm: maxRangeKm, Raw: rawValues}

	if inputFile != "" {
		if err := renderOne(inputFile, outputFile, opts); err != nil {
			logrus.Fatal(err)
		}
		return
	}
	if directory != "" {
		renderBatch(directory, outputDir, opts)
		return
	}
	logrus.Fatal("one of --file or --directory is required")
}

func renderOne(in, out string, opts preview.Options) error {
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	rf, err := archive2.Decode(raw)
	if err != nil {
		return err
	}
	img, err := preview.Render(rf, scanIdx, moment, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func renderBatch(dir, outdir string, opts preview.Options) {
	files, err := os.ReadDir(dir)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := os.MkdirAll(outdir, os.ModePerm); err != nil {
		logrus.Fatal(err)
	}

	var targets []string
	for _, fi := range files {
		if strings.HasSuffix(fi.Name(), ".ar2v") {
			targets = append(targets, fi.Name())
		}
	}

	bar := pb.StartNew(len(targets))
	source := make(chan string, runners)
	var wg sync.WaitGroup
	wg.Add(runners)
	for i := 0; i < runners; i++ {
		go func() {
			defer wg.Done()
			for name := range source {
				out := filepath.Join(outdir, name+".png")
				if err := renderOne(filepath.Join(dir, name), out, opts); err != nil {
					logrus.Errorf("rendering %s: %v", name, err)
				}
				bar.Increment()
			}
		}()
	}
	for _, name := range targets {
		source <- name
	}
	close(source)
	wg.Wait()
	bar.Finish()
}

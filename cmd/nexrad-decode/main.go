package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/msufi98/nexrad-archive2/archive2"
)

var cli struct {
	Args struct {
		Filename string
	} `positional-args:"yes" required:"yes"`
	LogLevel         string `short:"l" long:"log-level" description:"logging level" choice:"error" choice:"info" choice:"debug" choice:"trace" default:"info"`
	ShowVolumeHeader bool   `long:"show-volume-header" description:"dumps out the contents of the Volume Header"`
	Moment           string `short:"m" long:"moment" description:"moment to summarize, e.g. REF, VEL, SW" default:"REF"`
}

func main() {
	if _, err := flags.Parse(&cli); err != nil {
		os.Exit(1)
	}

	levels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	logrus.SetLevel(levels[cli.LogLevel])

	logrus.Info(color.CyanString("decoding %s", cli.Args.Filename))

	raw, err := os.ReadFile(cli.Args.Filename)
	if err != nil {
		logrus.Fatalf("reading %s: %v", cli.Args.Filename, err)
	}

	rf, err := archive2.Decode(raw)
	if err != nil {
		logrus.Fatalf("decoding %s: %v", cli.Args.Filename, err)
	}

	if cli.ShowVolumeHeader {
		fmt.Printf("%s: %s at %s\n", color.GreenString("volume header"), rf.VolumeHeader.Filename(), rf.VolumeHeader.Time())
	}

	fmt.Printf("site: %s\n", rf.VolumeHeader.ICAO)
	fmt.Printf("vcp: %d\n", rf.VCPPattern())
	fmt.Printf("legacy format: %v\n", rf.IsLegacy)
	fmt.Printf("scans: %d\n", rf.ScanCount())

	if loc, ok := rf.Location(); ok {
		fmt.Printf("location: %.4f, %.4f (site %dm, feedhorn %dm)\n", loc.Lat, loc.Lon, loc.SiteHeight, loc.FeedhornHeight)
	}

	for i, info := range rf.ScanInfo(nil) {
		geom, hasMoment := info.Moments[cli.Moment]
		if !hasMoment {
			continue
		}
		fmt.Printf("scan %d (elv %d): %s ngates=%d first_gate=%dm spacing=%dm\n",
			i, info.ElevationNumber, cli.Moment, geom.NGates, geom.FirstGate, geom.GateSpacing)
	}
}

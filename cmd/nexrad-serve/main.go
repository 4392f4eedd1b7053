// Command nexrad-serve exposes decoded Archive II metadata and rendered
// scans over HTTP: local files under /l2/{fn}, and NOAA's realtime S3 chunk
// bucket under /l2/realtime/{site}/{volume}.
package main

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/msufi98/nexrad-archive2/archive2"
	"github.com/msufi98/nexrad-archive2/bytesource"
	"github.com/msufi98/nexrad-archive2/preview"
)

func main() {
	logrus.SetLevel(logrus.InfoLevel)

	r := mux.NewRouter()
	r.HandleFunc("/l2/{fn}.json", metaHandler)
	r.HandleFunc("/l2/{fn}/{scan}/{moment}/render", renderHandler)
	r.HandleFunc("/l2/realtime/{site}/{volume}.json", realtimeMetaHandler)
	r.HandleFunc("/l2/realtime/{site}/{volume}/{scan}/{moment}/render", realtimeRenderHandler)

	srv := &http.Server{
		Addr:         "0.0.0.0:8081",
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logrus.Infof("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}

func loadLocal(fn string) (*archive2.RadarFile, error) {
	raw, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return archive2.Decode(raw)
}

func loadRealtime(ctx context.Context, site string, volume int) (*archive2.RadarFile, error) {
	f := &bytesource.S3Fetcher{Site: site, Volume: volume}
	raw, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return archive2.Decode(raw)
}

// meta is the JSON shape returned for a decoded volume: one entry per scan,
// with the geometry of every moment present on it.
type meta struct {
	ICAO     string              `json:"icao"`
	VCP      uint16              `json:"vcp"`
	IsLegacy bool                `json:"is_legacy"`
	Scans    []archive2.ScanInfo `json:"scans"`
}

func writeMeta(w http.ResponseWriter, rf *archive2.RadarFile) {
	m := meta{
		ICAO:     rf.VolumeHeader.ICAO,
		VCP:      rf.VCPPattern(),
		IsLegacy: rf.IsLegacy,
		Scans:    rf.ScanInfo(nil),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func metaHandler(w http.ResponseWriter, req *http.Request) {
	fn := mux.Vars(req)["fn"]

	rf, err := loadLocal(fn)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeMeta(w, rf)
}

func realtimeMetaHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	volume, err := strconv.Atoi(vars["volume"])
	if err != nil {
		http.Error(w, "invalid volume number", http.StatusBadRequest)
		return
	}

	rf, err := loadRealtime(req.Context(), vars["site"], volume)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeMeta(w, rf)
}

func writeRender(w http.ResponseWriter, rf *archive2.RadarFile, scan int, moment string) {
	img, err := preview.Render(rf, scan, moment, preview.DefaultOptions())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	png.Encode(w, img)
}

func renderHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	scan, err := strconv.Atoi(vars["scan"])
	if err != nil {
		http.Error(w, "invalid scan", http.StatusBadRequest)
		return
	}

	rf, err := loadLocal(vars["fn"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeRender(w, rf, scan, vars["moment"])
}

func realtimeRenderHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	volume, err := strconv.Atoi(vars["volume"])
	if err != nil {
		http.Error(w, "invalid volume number", http.StatusBadRequest)
		return
	}
	scan, err := strconv.Atoi(vars["scan"])
	if err != nil {
		http.Error(w, "invalid scan", http.StatusBadRequest)
		return
	}

	rf, err := loadRealtime(req.Context(), vars["site"], volume)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeRender(w, rf, scan, vars["moment"])
}

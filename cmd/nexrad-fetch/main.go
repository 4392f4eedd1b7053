// Command nexrad-fetch is a tiny catalog and proxy over NOAA's public GCS
// Level II mirror: list sites, list volumes for a site, and fetch+decode a
// volume's metadata without the caller handling object storage at all.
package main

import (
	"context"
	"net/http"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/msufi98/nexrad-archive2/archive2"
	"github.com/msufi98/nexrad-archive2/bytesource"
)

const l2Bucket = "gcp-public-data-nexrad-l2"

func listGCS(ctx context.Context, bucket *storage.BucketHandle, prefix string) (files, dirs []string) {
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix, Delimiter: "/"})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logrus.Errorf("bucket.Objects: %v", err)
			break
		}
		if attrs.Prefix != "" {
			dirs = append(dirs, filepath.Base(attrs.Prefix))
		} else {
			files = append(files, filepath.Base(attrs.Name))
		}
	}
	return files, dirs
}

func gcsClient(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx, option.WithoutAuthentication())
}

func listSitesHandler(c *gin.Context) {
	client, err := gcsClient(c)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	defer client.Close()

	date := c.Param("date") // e.g. 2021/06/01
	_, sites := listGCS(c, client.Bucket(l2Bucket), date+"/")
	c.JSON(http.StatusOK, sites)
}

func listVolumesHandler(c *gin.Context) {
	client, err := gcsClient(c)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	defer client.Close()

	prefix := c.Param("date") + "/" + c.Param("site") + "/"
	volumes, _ := listGCS(c, client.Bucket(l2Bucket), prefix)
	c.JSON(http.StatusOK, volumes)
}

func volumeMetaHandler(c *gin.Context) {
	prefix := c.Param("date") + "/" + c.Param("site") + "/" + c.Param("file")

	f := &bytesource.GCSFetcher{Bucket: l2Bucket, Object: prefix}
	raw, err := f.Fetch(c)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	rf, err := archive2.Decode(raw)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"icao":      rf.VolumeHeader.ICAO,
		"vcp":       rf.VCPPattern(),
		"is_legacy": rf.IsLegacy,
		"scans":     rf.ScanInfo(nil),
	})
}

func main() {
	r := gin.Default()
	r.GET("/sites/:date", listSitesHandler)
	r.GET("/sites/:date/:site", listVolumesHandler)
	r.GET("/sites/:date/:site/:file", volumeMetaHandler)

	if err := r.Run("0.0.0.0:8082"); err != nil {
		logrus.Fatal(err)
	}
}

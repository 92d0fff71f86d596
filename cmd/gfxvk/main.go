// Command gfxvk runs the gfxvk resource factory end to end against a
// registered driver and reports per-operation latency and allocation
// statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gfxvk"
	"github.com/gogpu/gfxvk/driver"
	"github.com/gogpu/gfxvk/vk"
	_ "github.com/gogpu/gfxvk/vk/soft"
)

func main() {
	var (
		name     = flag.String("driver", "", "driver to open (default: best available)")
		parallel = flag.Int("parallel", 1, "number of factories run concurrently")
		width    = flag.Int("width", 800, "render target width")
		height   = flag.Int("height", 600, "render target height")
		verbose  = flag.Bool("v", false, "log every created object")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gfxvk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dev, driverName, err := openDriver(*name)
	if err != nil {
		log.Fatalf("Failed to open driver: %v", err)
	}
	share := gfxvk.NewShare(dev)
	defer share.Release()

	cfg := config{width: *width, height: *height}
	reports := make([]*report, max(*parallel, 1))
	g, ctx := errgroup.WithContext(context.Background())
	for i := range reports {
		g.Go(func() error {
			r, err := run(ctx, share, cfg)
			reports[i] = r
			return errors.Wrapf(err, "factory %d", i)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	fmt.Printf("driver: %s, factories: %d\n", driverName, len(reports))
	for i, r := range reports {
		fmt.Printf("factory %d:\n", i)
		r.print(os.Stdout)
	}
}

func openDriver(name string) (vk.Device, string, error) {
	if name == "" {
		return driver.Default()
	}
	dev, err := driver.Open(name)
	return dev, name, err
}

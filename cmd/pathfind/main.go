// Command pathfind loads a tile map and answers path and line-of-sight
// queries against it.
//
// Usage:
//
//	go run ./cmd/pathfind -from 0,0,0 -to 12,7,0              # path + LOS
//	go run ./cmd/pathfind -from 0,0,0 -to 12,7,0 -walk        # simulate autowalk
//	go run ./cmd/pathfind -from 0,0,0 -to 12,7,0 -watch       # re-run on map change
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/data"
	"github.com/udisondev/tilewalk/internal/game/geo"
	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/world"
)

const (
	ConfigPath = "config/pathfind.yaml"

	// maxWalkTicks bounds an autowalk simulation.
	maxWalkTicks = 100_000

	avatarID   uint32 = 0x10000001
	avatarBody uint16 = 0x0190
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// query is one path/LOS request.
type query struct {
	from   model.Location
	to     model.Location
	radius int
	los    bool
	walk   bool
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pathfind", flag.ContinueOnError)
	fs.SetOutput(out)

	cfgPath := fs.String("config", config.ResolvePath(ConfigPath), "config file")
	mapPath := fs.String("map", "", "map file (overrides map_path)")
	tilesPath := fs.String("tiledata", "", "tiledata file (overrides tiledata_path)")
	from := fs.String("from", "", "start location x,y,z")
	to := fs.String("to", "", "goal location x,y,z")
	radius := fs.Int("radius", 0, "acceptance radius")
	los := fs.Bool("los", true, "check line of sight from start to goal")
	walk := fs.Bool("walk", false, "simulate autowalk along the path")
	watch := fs.Bool("watch", false, "re-run the query whenever the map file changes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.LoadPathfinding(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *mapPath != "" {
		cfg.MapPath = *mapPath
	}
	if *tilesPath != "" {
		cfg.TileDataPath = *tilesPath
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	q := query{radius: *radius, los: *los, walk: *walk}
	if q.from, err = parseLocation(*from); err != nil {
		return fmt.Errorf("parsing -from: %w", err)
	}
	if q.to, err = parseLocation(*to); err != nil {
		return fmt.Errorf("parsing -to: %w", err)
	}

	tiles, err := data.LoadTileData(cfg.TileDataPath)
	if err != nil {
		return fmt.Errorf("loading tiledata: %w", err)
	}
	m, err := world.LoadMap(cfg.MapPath)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	if err := answer(ctx, out, m, tiles, cfg, q); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	w, err := world.NewWatcher(cfg.MapPath)
	if err != nil {
		return fmt.Errorf("watching map: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return w.Close()
	})
	g.Go(func() error {
		slog.Info("watching map", "path", cfg.MapPath)
		for {
			select {
			case <-gctx.Done():
				return nil
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				slog.Warn("map watcher", "err", err)
			case path, ok := <-w.Events:
				if !ok {
					return nil
				}
				reloaded, err := world.LoadMap(path)
				if err != nil {
					slog.Warn("reloading map, keeping previous", "path", path, "err", err)
					continue
				}
				m = reloaded
				if err := answer(gctx, out, m, tiles, cfg, q); err != nil {
					return err
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// answer runs q against m and prints the result.
func answer(ctx context.Context, out io.Writer, m *world.Map, tiles *data.TileData, cfg config.Pathfinding, q query) error {
	clock := &simClock{now: time.Now()}
	avatar := model.NewPlayer(avatarID, avatarBody, q.from, model.North, cfg.Walker.WalkDelays())
	avatar.SetClock(clock.Now)

	pf := geo.NewPathfinder(m, tiles, avatar, cfg)
	pf.SetClock(clock.Now)
	avatar.SetStepValidator(pf.ValidateStep)

	path, ok := pf.GetPathTo(q.to.X, q.to.Y, q.to.Z, q.radius)
	stats := pf.LastSearch()
	if !ok {
		fmt.Fprintf(out, "path: none (%s, closed %d)\n", stats.State, stats.Closed)
	} else {
		fmt.Fprintf(out, "path: %d steps (closed %d)\n", len(path), stats.Closed)
		for _, wp := range path {
			fmt.Fprintf(out, "  %d,%d,%d %s\n", wp.X, wp.Y, wp.Z, wp.Direction)
		}
	}

	if q.los {
		visible := geo.NewLineOfSight(m, tiles, cfg.LOS).IsVisible(q.from, q.to)
		fmt.Fprintf(out, "los: %t\n", visible)
	}

	if q.walk && ok {
		if err := simulateWalk(ctx, out, pf, avatar, clock, cfg.Tick, q); err != nil {
			return err
		}
	}
	return nil
}

// simulateWalk drives autowalk on a virtual clock, acknowledging every step
// at the end of its tick.
func simulateWalk(ctx context.Context, out io.Writer, pf *geo.Pathfinder, avatar *model.Player, clock *simClock, tick time.Duration, q query) error {
	if !pf.WalkTo(q.to.X, q.to.Y, q.to.Z, q.radius) {
		fmt.Fprintln(out, "walk: not started")
		return nil
	}
	defer pf.StopAutoWalk()

	ticks := 0
	for pf.IsWalking() && ticks < maxWalkTicks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulating walk: %w", err)
		}
		clock.Advance(tick)
		avatar.AckAll()
		pf.ProcessAutoWalk()
		ticks++
	}

	loc := avatar.Location()
	fmt.Fprintf(out, "walk: %d,%d,%d after %d ticks (%s)\n", loc.X, loc.Y, loc.Z, ticks, time.Duration(ticks)*tick)
	return nil
}

// simClock is a clock advanced by the simulation loop.
type simClock struct {
	now time.Time
}

func (c *simClock) Now() time.Time { return c.now }

func (c *simClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// parseLocation parses "x,y,z".
func parseLocation(s string) (model.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model.Location{}, fmt.Errorf("location %q: want x,y,z", s)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.Location{}, fmt.Errorf("location %q: %w", s, err)
		}
		v[i] = n
	}
	return model.NewLocation(v[0], v[1], v[2]), nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

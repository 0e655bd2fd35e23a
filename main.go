// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"tilewm/internal/config"
	"tilewm/internal/engine"
	"tilewm/internal/event"
	"tilewm/internal/ewmh"
	"tilewm/internal/focus"
	"tilewm/internal/grab"
	"tilewm/internal/hook"
	"tilewm/internal/screen"
	"tilewm/internal/wmcore"
	"tilewm/internal/xconn"
)

var appName = "tilewm"

var nameSuffix = ""         // set by build
var version = "unknown"     // ditto
var distribution = "custom" // ditto

func main() {
	opt := parseCLIOpts()
	configureLogging(opt)
	log.Printf("%s starting. Version: %s (%s)\n", appName, version, distribution)

	cfg, err := config.Load(opt.configFile)
	if err != nil {
		exitFatal("could not load configuration: %v", err)
	}
	if opt.checkOnly {
		log.Printf("configuration %s is valid\n", opt.configFile)
		os.Exit(0)
	}

	raiseNoFileLimit()

	conn, err := xconn.Connect(opt.display)
	if err != nil {
		exitFatal("could not connect to X server: %v", err)
	}
	defer conn.Close()

	if err := conn.ClaimSelection(0, opt.replace); err != nil {
		exitFatal("could not become window manager: %v", err)
	}
	if err := conn.SelectWMInputs(); err != nil {
		exitFatal("another window manager still owns the root window: %v", err)
	}

	rects, err := conn.EnumerateScreens(opt.noRandr)
	if err != nil {
		exitFatal("could not enumerate screens: %v", err)
	}
	screens := buildScreens(rects)
	log.Printf("%d screen(s) detected\n", len(screens))

	surface, err := ewmh.NewSurface(conn.X, wmNameOrDefault(cfg))
	if err != nil {
		exitFatal("could not initialize EWMH support: %v", err)
	}
	if err := publishInitialRootState(surface, len(screens)); err != nil {
		log.Printf("could not publish initial root state: %v\n", err)
	}

	eng, err := buildEngine(conn, surface, cfg, screens)
	if err != nil {
		exitFatal("could not build configuration: %v", err)
	}

	if err := conn.GrabWindow(conn.RootWindow(), eng.Grabs); err != nil {
		log.Printf("could not install root grabs: %v\n", err)
	}

	reloadRequested := new(atomic.Bool)
	stopRequested := new(atomic.Bool)
	installSignalHandlers(reloadRequested, stopRequested)

	pump := xconn.NewPump(conn, event.Handlers{})
	pump.Handlers = eng.Handlers(&pump.Ctx)

	evaluateConfig := func() error {
		reloaded, err := config.Load(opt.configFile)
		if err != nil {
			log.Printf("reload: configuration error, keeping previous configuration: %v\n", err)
			return err
		}
		cfg = reloaded
		built, err := buildConfigParts(cfg, conn)
		if err != nil {
			log.Printf("reload: configuration error, keeping previous configuration: %v\n", err)
			return err
		}
		eng.Gravities, eng.Tags, eng.Views, eng.Grabs = built.Gravities, built.Tags, built.Views, built.Grabs
		for _, s := range screens {
			s.ClampViewID(len(cfg.View))
		}
		if err := conn.GrabWindow(conn.RootWindow(), eng.Grabs); err != nil {
			log.Printf("reload: could not reinstall root grabs: %v\n", err)
		}
		return nil
	}

	if err := pump.Start(); err != nil {
		exitFatal("could not start event pump: %v", err)
	}

	eng.ScanExisting()

	dispatcher := event.NewDispatcher(pump.NotifyFD(), nil, event.Handlers{})
	dispatcher.Reload = eng.ReloadSteps(evaluateConfig)
	dispatcher.ReloadRequested = func() bool {
		if reloadRequested.CompareAndSwap(true, false) {
			return true
		}
		if eng.Registry.Flags&wmcore.FlagReload != 0 {
			eng.Registry.Flags &^= wmcore.FlagReload
			return true
		}
		return false
	}
	dispatcher.PollNext = pump.PollNext

	err = dispatcher.Run(
		func() bool {
			return stopRequested.Load() || pump.Dead() ||
				eng.Registry.Flags&wmcore.FlagRun == 0
		},
		func() time.Duration { return event.MaxTimeout },
	)
	if err != nil {
		exitFatal("event loop exited with error: %v", err)
	}
	if eng.Registry.Flags&wmcore.FlagRestart != 0 {
		restartSelf()
		return
	}
	log.Printf("%s shutting down\n", appName)
}

// restartSelf replaces the process image with a fresh copy of itself,
// keeping the original argument vector.
func restartSelf() {
	exe, err := os.Executable()
	if err != nil {
		exitFatal("restart: could not locate own executable: %v", err)
	}
	if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		exitFatal("restart: exec failed: %v", err)
	}
}

// buildConfigParts runs the BuildGravities/BuildTags/BuildViews/BuildGrabs
// translation step config.Config needs before an Engine can use it, so
// both startup and reload go through the identical path.
func buildConfigParts(cfg *config.Config, conn *xconn.Conn) (engine.Built, error) {
	gravities, gravityByName := engine.BuildGravities(cfg.Gravity)
	tags, tagByName, err := engine.BuildTags(cfg.Tag, gravityByName)
	if err != nil {
		return engine.Built{}, err
	}
	views := engine.BuildViews(cfg.View, tagByName, tags)
	grabs, err := engine.BuildGrabs(cfg.Grab, xconn.NewKeyResolver(conn.X))
	if err != nil {
		return engine.Built{}, err
	}
	return engine.Built{
		Gravities: gravities, GravityByName: gravityByName,
		Tags: tags, TagByName: tagByName,
		Views: views, Grabs: grabs,
	}, nil
}

// buildEngine assembles the single running Engine aggregate from the
// loaded configuration and detected screens.
func buildEngine(conn *xconn.Conn, surface *ewmh.Surface, cfg *config.Config, screens []*screen.Screen) (*engine.Engine, error) {
	built, err := buildConfigParts(cfg, conn)
	if err != nil {
		return nil, err
	}

	eng := &engine.Engine{
		Conn:      conn,
		Surface:   surface,
		Hooks:     hook.NewBus(),
		Registry:  wmcore.NewRegistry(),
		Gravities: built.Gravities,
		Tags:      built.Tags,
		Views:     built.Views,
		Screens:   screens,
		Grabs:     built.Grabs,
		Keychain:  grab.NewKeychain(nil),
		Focus:     focus.NewEngine(),
		DisplayBounds: unionBounds(screens),
		Options: engine.EngineOptions{
			Tiling:         cfg.Options.Tiling,
			HonorSizeHints: cfg.Options.HonorSizeHints,
			ClickToFocus:   cfg.Options.ClickToFocus,
			SkipWarp:       cfg.Options.SkipPointerWarp,
			SkipUrgentWarp: cfg.Options.SkipUrgentWarp,
			UrgentDialogs:  cfg.Options.Urgent,
			Step:           cfg.Options.Step,
			Snap:           cfg.Options.Snap,
		},
	}
	eng.Options.BorderActivePixel, eng.Options.BorderInactivePixel = borderPixels(cfg)
	eng.WireFocus()

	for _, s := range screens {
		s.ClampViewID(len(cfg.View))
	}
	return eng, nil
}

// borderPixels resolves the focused/unfocused border colors from the
// style table: the "focus" style's border for the active window, the
// "clients" style's border for everything else.
func borderPixels(cfg *config.Config) (active, inactive uint32) {
	active, inactive = 0xFFFFFF, 0x555555
	if s, ok := cfg.StyleByName("focus"); ok {
		if px, ok := config.ParsePixel(s.Border); ok {
			active = px
		}
	}
	if s, ok := cfg.StyleByName("clients"); ok {
		if px, ok := config.ParsePixel(s.Border); ok {
			inactive = px
		}
	}
	return active, inactive
}

func unionBounds(screens []*screen.Screen) wmcore.Rect {
	if len(screens) == 0 {
		return wmcore.Rect{}
	}
	r := screens[0].BaseGeom
	for _, s := range screens[1:] {
		g := s.BaseGeom
		if g.X < r.X {
			r.W += r.X - g.X
			r.X = g.X
		}
		if g.Y < r.Y {
			r.H += r.Y - g.Y
			r.Y = g.Y
		}
		if g.X+g.W > r.X+r.W {
			r.W = g.X + g.W - r.X
		}
		if g.Y+g.H > r.Y+r.H {
			r.H = g.Y + g.H - r.Y
		}
	}
	return r
}

func wmNameOrDefault(cfg *config.Config) string {
	if cfg.Options.WMName != "" {
		return cfg.Options.WMName
	}
	return appName
}

func buildScreens(rects []wmcore.Rect) []*screen.Screen {
	screens := make([]*screen.Screen, len(rects))
	for i, r := range rects {
		screens[i] = &screen.Screen{ID: wmcore.ID(i), BaseGeom: r, WorkGeom: r}
	}
	return screens
}

func publishInitialRootState(s *ewmh.Surface, screenCount int) error {
	return s.PublishRootState(ewmh.RootState{
		DesktopCount: screenCount,
	})
}

// installSignalHandlers mirrors reload/quit triggers:
// SIGHUP requests a reload, SIGTERM/SIGINT request a clean shutdown.
func installSignalHandlers(reload, stop *atomic.Bool) {
	// Spawned helpers run in their own session and are never waited on;
	// ignoring SIGCHLD lets the kernel reap them.
	signal.Ignore(syscall.SIGCHLD)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range sigs {
			switch sig {
			case syscall.SIGHUP:
				reload.Store(true)
			default:
				stop.Store(true)
			}
		}
	}()
}

package main

import (
	_ "embed"
	"log"
	"runtime/debug"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/freezedemo/internal/config"
	"github.com/go-drift/freezedemo/internal/screens"
)

//go:embed drift.yaml
var driftYAML []byte

// fallbackModulePath is used when build info is unavailable (e.g. under gomobile).
const fallbackModulePath = "github.com/go-drift/freezedemo"

const freezeTestRoute = "/freeze-test"

// App returns the root widget for the freeze demo.
func App() core.Widget {
	return FreezeApp{Config: loadConfig()}
}

func loadConfig() *config.Resolved {
	modulePath := fallbackModulePath
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		modulePath = info.Main.Path
	}
	return resolveConfig(driftYAML, modulePath)
}

// resolveConfig reports invalid configuration and falls back to defaults so
// the screen always comes up. A bad app.id keeps the freeze settings.
func resolveConfig(data []byte, modulePath string) *config.Resolved {
	cfg, err := config.Resolve(data, modulePath)
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:   "freezedemo.loadConfig",
			Kind: errors.KindInit,
			Err:  err,
		})
	}
	if cfg == nil {
		cfg = config.Defaults(modulePath)
	}
	log.Printf("freeze demo: %s (%s) interval=%s iterations=%d", cfg.AppName, cfg.AppID, cfg.Interval, cfg.Iterations)
	return cfg
}

// FreezeApp sets up theme and navigation around the freeze test screen.
type FreezeApp struct {
	Config *config.Resolved
}

func (a FreezeApp) CreateElement() core.Element {
	return core.NewStatefulElement(a, nil)
}

func (a FreezeApp) Key() any {
	return nil
}

func (a FreezeApp) CreateState() core.State {
	return &freezeAppState{}
}

type freezeAppState struct {
	core.StateBase
	cfg       *config.Resolved
	themeData *theme.AppThemeData
}

func (s *freezeAppState) InitState() {
	s.cfg = s.Element().Widget().(FreezeApp).Config
	if s.cfg == nil {
		s.cfg = config.Defaults(fallbackModulePath)
	}
	brightness := theme.BrightnessLight
	if s.cfg.Dark {
		brightness = theme.BrightnessDark
	}
	s.themeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, brightness)
	s.applySystemUI()

	links := navigation.NewDeepLinkController(deepLinkRoute, func(err error) {
		log.Printf("deep link error: %v", err)
	})
	s.OnDispose(links.Stop)
}

func (s *freezeAppState) Build(ctx core.BuildContext) core.Widget {
	navigator := navigation.Navigator{
		InitialRoute: freezeTestRoute,
		IsRoot:       true,
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			switch settings.Name {
			case "/", freezeTestRoute:
				return navigation.NewMaterialPageRoute(s.buildFreezeTestPage, settings)
			}
			return nil
		},
	}

	return theme.AppTheme{
		Data:        s.themeData,
		ChildWidget: navigator,
	}
}

func (s *freezeAppState) buildFreezeTestPage(ctx core.BuildContext) core.Widget {
	return widgets.SafeArea{
		Top:    true,
		Bottom: true,
		ChildWidget: screens.FreezeTest{
			Title:      s.cfg.Title,
			Interval:   s.cfg.Interval,
			Iterations: s.cfg.Iterations,
		},
	}
}

func (s *freezeAppState) applySystemUI() {
	colors := s.themeData.Material.ColorScheme
	engine.SetBackgroundColor(graphics.Color(colors.Background))

	statusStyle := platform.StatusBarStyleDark
	if s.themeData.Brightness() == theme.BrightnessDark {
		statusStyle = platform.StatusBarStyleLight
	}
	backgroundColor := colors.Surface
	if err := platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarStyle:  statusStyle,
		BackgroundColor: &backgroundColor,
		Transparent:     true,
	}); err != nil {
		log.Printf("system ui: %v", err)
	}
}

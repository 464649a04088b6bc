package app

import (
	"log/slog"
	"time"

	"github.com/soocke/docscan-go/config"
	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/device"
	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/orientation"
	"github.com/soocke/docscan-go/domain/scan"
	"github.com/soocke/docscan-go/ui/model"
	"github.com/soocke/docscan-go/ui/presenter"
	"github.com/soocke/docscan-go/ui/view"
)

// Container assembles device, session, coordinator, models, presenters and
// the reference views.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Device      *device.Sim
	Session     *camera.ScriptedSession
	Coordinator *scan.Coordinator
	Tracker     *orientation.Tracker
	Windows     *ScriptedWindows

	OverlayModel *model.OverlayModel
	SessionModel *model.SessionModel
	Overlay      *view.ConsoleOverlayView
	Status       *view.ConsoleStatusView

	Projection *presenter.ProjectionPresenter
	AutoScan   *presenter.AutoScanWatcher
	Screen     *presenter.ScreenPresenter
	State      *presenter.StatePresenter
	SessionP   *presenter.SessionPresenter
	Loop       *presenter.Loop

	Results *resultSink
}

// ScriptedWindows is a windowing-collaborator stand-in whose orientation the
// demo flips mid-run.
type ScriptedWindows struct {
	current orientation.Orientation
}

func NewScriptedWindows() *ScriptedWindows { return &ScriptedWindows{current: orientation.Portrait} }

func (w *ScriptedWindows) InterfaceOrientation() orientation.Orientation { return w.current }

// Rotate sets the foreground orientation reported to the tracker.
func (w *ScriptedWindows) Rotate(o orientation.Orientation) { w.current = o }

// BuildContainer constructs all components. Side effects are limited to
// starting the coordinator's event loop.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, Logger: logger}

	frameSize := geometry.Size{Width: 1080, Height: 1920}
	c.Device = device.NewSim()
	c.Session = camera.NewScriptedSession(
		demoScript(cfg.ScriptDetectionFrames, cfg.ScriptGapFrames),
		frameSize,
		time.Duration(cfg.FrameIntervalMS)*time.Millisecond,
		logger,
	)

	overlayBounds := geometry.Rect{Size: geometry.Size{Width: cfg.OverlayWidth, Height: cfg.OverlayHeight}}
	c.Overlay = view.NewConsoleOverlayView(overlayBounds, logger)
	c.Status = view.NewConsoleStatusView(logger)
	c.OverlayModel = model.NewOverlayModel()
	c.SessionModel = model.NewSessionModel()

	c.Results = newResultSink(logger)
	c.Coordinator = scan.NewCoordinator(logger, c.Device, c.Session, scan.Callbacks{
		ClearOverlay: c.Overlay.RemoveQuadrilateral,
		DisableIdleTimer: func(disabled bool) {
			logger.Debug("idle timer", "disabled", disabled)
		},
	}, c.Results, c.Results)
	c.Results.coordinator = c.Coordinator

	c.Projection = presenter.NewProjectionPresenter(c.Coordinator, c.Overlay, c.OverlayModel, cfg.AnimateOverlay, logger)
	c.AutoScan = presenter.NewAutoScanWatcher(c.Coordinator, cfg.AutoScanStableFrames, cfg.AutoScanMaxDrift, logger)
	c.Session.SetDetectionHandler(camera.MultiHandler(c.Projection, c.AutoScan))

	c.Windows = NewScriptedWindows()
	c.Tracker = orientation.NewTracker(c.Windows, c.Session, logger)
	c.Tracker.AddListener(func(o orientation.Orientation, _ orientation.Rotation) {
		c.Coordinator.OrientationChanged(o)
		c.AutoScan.Reset()
	})

	c.Screen = presenter.NewScreenPresenter(c.Coordinator, c.Overlay, c.AutoScan)
	c.State = presenter.NewStatePresenter(c.Status)
	c.Coordinator.AddListener(c.State.OnState)
	c.SessionP = presenter.NewSessionPresenter(c.SessionModel, c.Coordinator, c.Status)
	c.Loop = presenter.NewLoop(c.SessionP, c.State, nil)
	return c
}

// demoScript alternates between a steady document boundary and short
// no-detection gaps so both the draw and clear paths run.
func demoScript(detectionFrames, gapFrames int) []*geometry.Quadrilateral {
	doc := geometry.Quadrilateral{
		TopLeft:     geometry.Point{X: 140, Y: 420},
		TopRight:    geometry.Point{X: 940, Y: 400},
		BottomLeft:  geometry.Point{X: 120, Y: 1540},
		BottomRight: geometry.Point{X: 960, Y: 1560},
	}
	script := make([]*geometry.Quadrilateral, 0, detectionFrames+gapFrames)
	for i := 0; i < detectionFrames; i++ {
		q := doc
		script = append(script, &q)
	}
	for i := 0; i < gapFrames; i++ {
		script = append(script, nil)
	}
	return script
}

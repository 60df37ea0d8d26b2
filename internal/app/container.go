package app

import (
	"context"
	"time"

	"github.com/doeshing/iris-go/internal/application/assist"
	appconfig "github.com/doeshing/iris-go/internal/application/config"
	"github.com/doeshing/iris-go/internal/application/doctor"
	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/infrastructure/actuators"
	"github.com/doeshing/iris-go/internal/infrastructure/ai"
	"github.com/doeshing/iris-go/internal/infrastructure/config"
	"github.com/doeshing/iris-go/internal/infrastructure/history"
	"github.com/doeshing/iris-go/internal/infrastructure/netcheck"
	"github.com/doeshing/iris-go/internal/infrastructure/planner"
	"github.com/doeshing/iris-go/internal/infrastructure/router"
	"github.com/doeshing/iris-go/internal/infrastructure/weather"
	"github.com/doeshing/iris-go/internal/pkg/logger"
	"github.com/doeshing/iris-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	AssistService  *assist.Service
	DoctorService  *doctor.Service
	AI             ports.AIProcessor
	Network        ports.NetworkMonitor
	Transcripts    ports.TranscriptRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	netmon := netcheck.New(cfg.Network, log)

	selector := ai.NewSelector(cfg, netmon, log)
	system := actuators.NewSystem(cfg.System, log)
	automation := actuators.NewAutomation(log)
	web := actuators.NewWeb(cfg.System.Browser, log)
	toolkit := actuators.NewToolkit(log)
	inspector := actuators.NewInspector(log)
	weatherSvc := weather.NewService(cfg.Weather, log)

	rtr := router.New(router.Deps{
		System:    system,
		Auto:      automation,
		Web:       web,
		Weather:   weatherSvc,
		Toolkit:   toolkit,
		Inspector: inspector,
		AI:        selector,
		Logger:    log,
	})
	plan := planner.New(selector, rtr, system, automation, log,
		planner.WithMaxSteps(cfg.Planner.MaxSteps),
		planner.WithStepDelay(time.Duration(cfg.Planner.StepDelayMS)*time.Millisecond),
	)
	rtr.AttachPlanner(plan)

	var transcripts ports.TranscriptRepository
	if cfg.History.Enabled {
		transcripts = history.NewSQLiteStore(cfg.History.Path)
	}

	assistService := assist.NewService(rtr, transcripts, log)
	doctorService := doctor.NewService(cfgLoader, netmon)

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		AssistService:  assistService,
		DoctorService:  doctorService,
		AI:             selector,
		Network:        netmon,
		Transcripts:    transcripts,
		Logger:         log,
	}, nil
}

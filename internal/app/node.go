package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/corpus"             //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/rclone"             //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/report"             //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/store"              //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/babblewitz/internal/engine/builder"
	"go.trai.ch/babblewitz/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			corpus.LoaderNodeID,
			corpus.SavesNodeID,
			builder.NodeID,
			scheduler.NodeID,
			report.NodeID,
			rclone.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Telemetry: telemetry}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	registry, err := graft.Dep[ports.ImplementationRegistry](ctx)
	if err != nil {
		return nil, err
	}

	corpusLoader, err := graft.Dep[ports.CorpusLoader](ctx)
	if err != nil {
		return nil, err
	}

	saves, err := graft.Dep[ports.SaveFileSource](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.ReportRenderer](ctx)
	if err != nil {
		return nil, err
	}

	syncer, err := graft.Dep[ports.AssetSyncer](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.ResultStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(registry, corpusLoader, saves, b, sched, renderer, syncer, stores, log), nil
}

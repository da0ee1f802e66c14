// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/babblewitz/internal/adapters/config"
	_ "go.trai.ch/babblewitz/internal/adapters/corpus"
	_ "go.trai.ch/babblewitz/internal/adapters/fs"
	_ "go.trai.ch/babblewitz/internal/adapters/logger"
	_ "go.trai.ch/babblewitz/internal/adapters/rclone"
	_ "go.trai.ch/babblewitz/internal/adapters/report"
	_ "go.trai.ch/babblewitz/internal/adapters/shell"
	_ "go.trai.ch/babblewitz/internal/adapters/store"
	_ "go.trai.ch/babblewitz/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/babblewitz/internal/app"
	_ "go.trai.ch/babblewitz/internal/engine/builder"
	_ "go.trai.ch/babblewitz/internal/engine/scheduler"
)

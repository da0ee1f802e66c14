// Package rclone downloads the performance save files from the public bucket.
package rclone

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	bucket   = "eu4saves-test-cases"
	endpoint = "s3.us-west-002.backblazeb2.com"
	prefix   = "babblewitz"
)

// Assets are the known save files, relative to the saves directory.
var Assets = []string{
	"ck3/autosave.zip",
	"eu4/eu4-autosave.zip",
	"hoi4/canada.zip",
	"imperator/autosave-debug.zip",
	"stellaris/test.sav",
	"vic3/autosave.zip",
}

var _ ports.AssetSyncer = (*Syncer)(nil)

// Syncer implements ports.AssetSyncer by shelling out to rclone.
type Syncer struct {
	logger ports.Logger
	binary string
	output io.Writer
	assets []string
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithBinary overrides the rclone executable.
func WithBinary(bin string) Option {
	return func(s *Syncer) {
		s.binary = bin
	}
}

// WithOutput sets where rclone progress is written. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(s *Syncer) {
		s.output = w
	}
}

// WithAssets overrides the asset list.
func WithAssets(assets ...string) Option {
	return func(s *Syncer) {
		s.assets = assets
	}
}

// NewSyncer creates a Syncer.
func NewSyncer(logger ports.Logger, opts ...Option) *Syncer {
	s := &Syncer{
		logger: logger,
		binary: "rclone",
		output: os.Stderr,
		assets: Assets,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync copies every asset into dest. A failing copy is logged and skipped.
func (s *Syncer) Sync(ctx context.Context, dest string) error {
	if err := exec.CommandContext(ctx, s.binary, "version").Run(); err != nil { //nolint:gosec // binary is configured, not user input
		return errors.Join(domain.ErrToolMissing, zerr.With(err, "binary", s.binary))
	}

	for _, asset := range s.assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		local := filepath.Join(dest, filepath.FromSlash(asset))
		if err := os.MkdirAll(filepath.Dir(local), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create asset directory"), "path", filepath.Dir(local))
		}

		s.logger.Info("syncing " + asset)
		cmd := exec.CommandContext(ctx, s.binary, copyArgs(asset, local)...) //nolint:gosec // arguments are fixed
		cmd.Stdout = s.output
		cmd.Stderr = s.output
		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("could not sync " + asset + ": " + err.Error())
			continue
		}
		s.logger.Info("synced " + asset)
	}
	return nil
}

func copyArgs(asset, local string) []string {
	return []string{
		"copyto",
		"--s3-provider=AWS",
		"--s3-endpoint", endpoint,
		"--s3-no-check-bucket",
		"--log-level", "ERROR",
		":s3:" + path.Join(bucket, prefix, asset),
		local,
		"--progress",
	}
}

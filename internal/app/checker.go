package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/quantmind-br/stylecfg/internal/config"
	"github.com/quantmind-br/stylecfg/internal/manifest"
	"github.com/quantmind-br/stylecfg/internal/utils"
)

// ManifestLoader loads manifests from paths and discovers them in directories
type ManifestLoader interface {
	Load(path string) (*manifest.Manifest, error)
	Find(dir string) (string, error)
}

// Result is the outcome of loading one manifest source
type Result struct {
	Path     string
	Manifest *manifest.Manifest
	Err      error
}

// OK reports whether the manifest loaded
func (r Result) OK() bool {
	return r.Err == nil
}

// Checker resolves and validates manifests
type Checker struct {
	config   *config.Config
	loader   ManifestLoader
	logger   *utils.Logger
	progress io.Writer
}

// CheckerOptions contains options for creating a checker
type CheckerOptions struct {
	Config *config.Config
	Loader ManifestLoader
	Logger *utils.Logger
	// Progress receives a progress bar during Check; nil disables it
	Progress io.Writer
}

// NewChecker creates a checker; a nil Loader uses manifest.NewLoader
func NewChecker(opts CheckerOptions) (*Checker, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	loader := opts.Loader
	if loader == nil {
		loader = manifest.NewLoader(manifest.WithLogger(logger))
	}

	return &Checker{
		config:   opts.Config,
		loader:   loader,
		logger:   logger.WithComponent("checker"),
		progress: opts.Progress,
	}, nil
}

// Resolve picks the manifest path: the explicit argument, then
// manifest.path from the config, then discovery in manifest.dir.
// A directory argument is searched for a default manifest file.
func (c *Checker) Resolve(path string) (string, error) {
	if path == "" {
		path = c.config.Manifest.Path
	}
	if path == "" {
		return c.loader.Find(utils.ExpandPath(c.config.Manifest.Dir))
	}

	path = utils.ExpandPath(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return c.loader.Find(path)
	}
	return path, nil
}

// Load resolves and loads a single manifest
func (c *Checker) Load(path string) (Result, error) {
	resolved, err := c.Resolve(path)
	if err != nil {
		return Result{Path: path, Err: err}, err
	}

	m, err := c.loader.Load(resolved)
	if err != nil {
		return Result{Path: resolved, Err: err}, err
	}

	c.logger.Debug().
		Str("source", resolved).
		Int("content_patterns", len(m.ContentPatterns())).
		Int("plugins", len(m.Plugins())).
		Msg("Manifest loaded")

	return Result{Path: resolved, Manifest: m}, nil
}

// Check loads every path concurrently using check.workers goroutines.
// Results are returned in input order; an empty input checks the default
// manifest. The returned error is non-nil only if ctx was cancelled.
func (c *Checker) Check(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		paths = []string{""}
	}

	results := make([]Result, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	var advance func()
	if c.progress != nil {
		bar := utils.NewProgressBar(len(paths), utils.DescChecking, c.progress)
		var mu sync.Mutex
		advance = func() {
			mu.Lock()
			defer mu.Unlock()
			_ = bar.Add(1)
		}
		defer func() { _ = bar.Finish() }()
	}

	indexes := make([]int, len(paths))
	for i := range indexes {
		indexes[i] = i
	}

	errs := utils.ParallelForEach(ctx, indexes, c.config.Check.Workers, func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			return err
		}
		res, err := c.Load(paths[i])
		results[i] = res
		if err != nil {
			c.logger.WithSource(res.Path).Debug().Err(err).Msg("Manifest check failed")
		}
		if advance != nil {
			advance()
		}
		return err
	})

	failed := utils.CollectErrors(errs)
	c.logger.Debug().
		Int("total", len(paths)).
		Int("failed", len(failed)).
		Msg("Manifest check finished")

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Manifest == nil && results[i].Err == nil {
				results[i].Err = err
			}
		}
		return results, err
	}
	return results, nil
}

// Failures returns the results that did not load
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// ErrManifestExists is returned by Init when the target exists and force is unset
var ErrManifestExists = errors.New("manifest already exists")

// Init writes the scaffold manifest to path (a file, or a directory that
// receives stylecfg.yaml).
func (c *Checker) Init(path string, force bool) (string, error) {
	if path == "" {
		path = c.config.Manifest.Dir
	}
	path = utils.ExpandPath(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, manifest.DefaultFileNames[0])
	}

	if utils.FileExists(path) && !force {
		return path, fmt.Errorf("%w: %s (use --force to overwrite)", ErrManifestExists, path)
	}

	if err := manifest.Write(path, manifest.Scaffold()); err != nil {
		return path, err
	}

	c.logger.Info().Str("source", path).Msg("Manifest written")
	return path, nil
}

// Package generate runs the encode, render and output pipeline and reports
// every outcome as a barnode.Result.
//
// Importing this package registers all symbology encoders.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ericlevine/barnode"
	_ "github.com/ericlevine/barnode/aztec"
	_ "github.com/ericlevine/barnode/datamatrix"
	_ "github.com/ericlevine/barnode/oned"
	_ "github.com/ericlevine/barnode/qrcode"
	"github.com/ericlevine/barnode/render"
	"github.com/ericlevine/barnode/sink"
)

// Generator produces symbols. It holds no per-call state and is safe for
// concurrent use.
type Generator struct {
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{logger: newLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateStream encodes text and returns the output in format (an extension
// such as "png" or "svg") base64 encoded in Result.Data.
func (g *Generator) CreateStream(ctx context.Context, cfg barnode.Config, text, format string) barnode.Result {
	logger := loggerFromContext(ctx, g.logger)
	start := time.Now()
	data, err := guard(func() (*string, error) {
		f, err := sink.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		img, err := g.render(ctx, logger, cfg, text, f)
		if err != nil {
			return nil, err
		}
		s, err := sink.ToStream(img, f)
		if err != nil {
			return nil, err
		}
		return &s, nil
	})
	return report(logger, "stream", start, data, err)
}

// CreateFile encodes text and writes it to cfg.FileName in the format given
// by the file's extension. Result.Data is always nil.
func (g *Generator) CreateFile(ctx context.Context, cfg barnode.Config, text string) barnode.Result {
	logger := loggerFromContext(ctx, g.logger)
	start := time.Now()
	_, err := guard(func() (*string, error) {
		cfg = cfg.Normalize()
		f, err := sink.FormatFromPath(cfg.FileName)
		if err != nil {
			return nil, err
		}
		img, err := g.render(ctx, logger, cfg, text, f)
		if err != nil {
			return nil, err
		}
		if err := sink.ToFile(img, cfg.FileName); err != nil {
			return nil, err
		}
		logger.Debug("wrote file", "path", cfg.FileName)
		return nil, nil
	})
	return report(logger, "file", start, nil, err)
}

// render validates cfg, encodes text and renders it on the path format f
// needs.
func (g *Generator) render(ctx context.Context, logger *log.Logger, cfg barnode.Config, text string, f sink.Format) (*render.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, err := barnode.Lookup(cfg.Symbology)
	if err != nil {
		return nil, err
	}
	sym, err := barnode.Encode(d, text, cfg)
	if err != nil {
		return nil, err
	}
	w, h := sym.Size()
	logger.Debug("encoded", "symbology", d.Name, "modules", fmt.Sprintf("%dx%d", w, h))

	opts, err := render.NewOptions(cfg)
	if err != nil {
		return nil, err
	}
	img, err := render.Render(sym, f.Kind(), opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered", "format", f, "kind", f.Kind())
	return img, nil
}

// guard runs fn, turning a panic into a validation failure.
func guard(fn func() (*string, error)) (data *string, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, barnode.Invalidf("panic during generation: %v", r)
		}
	}()
	return fn()
}

func report(logger *log.Logger, op string, start time.Time, data *string, err error) barnode.Result {
	res := barnode.NewResult(data, err)
	if res.OK() {
		logger.Debug("generated", "output", op, "duration", time.Since(start).Round(time.Microsecond))
	} else {
		logger.Warn("generation failed", "output", op, "code", res.Code, "err", *res.Message)
	}
	return res
}

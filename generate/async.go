package generate

import (
	"context"

	"github.com/ericlevine/barnode"
)

// CreateStreamAsync runs CreateStream in a goroutine. The returned channel
// yields exactly one Result and is then closed.
func (g *Generator) CreateStreamAsync(ctx context.Context, cfg barnode.Config, text, format string) <-chan barnode.Result {
	ch := make(chan barnode.Result, 1)
	go func() {
		defer close(ch)
		ch <- g.CreateStream(ctx, cfg, text, format)
	}()
	return ch
}

// CreateFileAsync runs CreateFile in a goroutine. The returned channel
// yields exactly one Result and is then closed.
func (g *Generator) CreateFileAsync(ctx context.Context, cfg barnode.Config, text string) <-chan barnode.Result {
	ch := make(chan barnode.Result, 1)
	go func() {
		defer close(ch)
		ch <- g.CreateFile(ctx, cfg, text)
	}()
	return ch
}

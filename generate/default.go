package generate

import (
	"context"

	"github.com/ericlevine/barnode"
)

var std = New()

// CreateStream calls CreateStream on the default Generator.
func CreateStream(ctx context.Context, cfg barnode.Config, text, format string) barnode.Result {
	return std.CreateStream(ctx, cfg, text, format)
}

// CreateFile calls CreateFile on the default Generator.
func CreateFile(ctx context.Context, cfg barnode.Config, text string) barnode.Result {
	return std.CreateFile(ctx, cfg, text)
}

// CreateStreamAsync calls CreateStreamAsync on the default Generator.
func CreateStreamAsync(ctx context.Context, cfg barnode.Config, text, format string) <-chan barnode.Result {
	return std.CreateStreamAsync(ctx, cfg, text, format)
}

// CreateFileAsync calls CreateFileAsync on the default Generator.
func CreateFileAsync(ctx context.Context, cfg barnode.Config, text string) <-chan barnode.Result {
	return std.CreateFileAsync(ctx, cfg, text)
}

// Batch calls Batch on the default Generator.
func Batch(ctx context.Context, jobs []Job) []barnode.Result {
	return std.Batch(ctx, jobs)
}

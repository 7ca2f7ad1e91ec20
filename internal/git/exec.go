package git

import (
	"context"

	"github.com/fikriauliya/maestro-ai/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// run executes git through the client's runner. An empty dir falls back to
// the client's directory, and then to the process working directory.
func (c *Client) run(ctx context.Context, dir string, args ...string) (cmd.Result, error) {
	if dir == "" {
		dir = c.dir
	}
	return c.runner.Run(ctx, "", "git", gitArgs(dir, args)...)
}

// output executes git and returns stdout, or a *cmd.Error carrying stderr
// when git exits non-zero.
func (c *Client) output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	res, err := c.run(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Stdout, nil
}

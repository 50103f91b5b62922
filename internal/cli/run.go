package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gookit/color"

	"github.com/cruciblehq/pyfreeze/internal"
	"github.com/cruciblehq/pyfreeze/internal/build"
	"github.com/cruciblehq/pyfreeze/internal/probe"
	"github.com/cruciblehq/pyfreeze/internal/project"
)

// Executes the packaging pass.
//
// Loads the project from the workspace root, runs the build pipeline, and
// prints the outcome. Any returned error makes the process exit with status 1.
func (c *RootCmd) Run(ctx context.Context) error {
	p, err := project.Load(c.Dir, c.Config)
	if err != nil {
		return err
	}

	res, err := build.Run(ctx, build.Options{
		Project: p,
		Root:    c.Dir,
	})

	if res != nil && internal.IsVerbose() {
		fmt.Fprintln(os.Stderr, probe.Table(res.Probes, res.Platform))
	}

	return report(res, err)
}

// Prints the success line and, when known, the artifact digest.
//
// Failures print nothing here; the returned error is the single line the
// caller logs before exiting.
func report(res *build.Result, err error) error {
	if err != nil {
		return err
	}

	color.Success.Println(res.Outcome.Message)
	if res.Digest != "" {
		color.Info.Printf("digest: %s\n", res.Digest)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kurochkinivan/voicebot/internal/config"
	"github.com/kurochkinivan/voicebot/internal/imagebuild"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd(log *slog.Logger, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "imagebuilder",
		Usage:   "build the voicebot container image",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Usage:   "Set project layout: split (backend + frontend) or single (src)",
				Value:   string(imagebuild.LayoutSplit),
				Sources: cli.EnvVars("IMAGE_LAYOUT"),
			},
			&cli.StringFlag{
				Name:    "context",
				Usage:   "Set build context `DIR`",
				Value:   ".",
				Sources: cli.EnvVars("IMAGE_CONTEXT"),
			},
			&cli.StringFlag{
				Name:    "base-image",
				Usage:   "Override base image",
				Value:   imagebuild.DefaultBaseImage,
				Sources: cli.EnvVars("IMAGE_BASE"),
			},
			&cli.StringSliceFlag{
				Name:  "system-package",
				Usage: "Override OS packages installed with apt, repeatable",
			},
			&cli.StringFlag{
				Name:    "history",
				Usage:   "Set build history `FILE`",
				Value:   ".imagebuilder.db",
				Sources: cli.EnvVars("IMAGE_HISTORY"),
			},
		},
		Commands: []*cli.Command{
			renderCmd(stdout),
			checkCmd(log, stdout),
			buildCmd(log, stdout),
			inspectCmd(stdout),
			historyCmd(stdout),
		},
	}
}

func renderCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "print the Dockerfile equivalent of the build plan",
		Action: func(_ context.Context, cmd *cli.Command) error {
			spec, err := specFromConfig(config.LoadImage(cmd))
			if err != nil {
				return err
			}

			plan, err := imagebuild.NewPlan(spec)
			if err != nil {
				return err
			}

			dockerfile, err := plan.Dockerfile()
			if err != nil {
				return err
			}

			_, err = io.WriteString(stdout, dockerfile)
			return err
		},
	}
}

func checkCmd(log *slog.Logger, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "verify build inputs without building",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "check-base-image", Usage: "Also resolve the base image in its registry"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.LoadImage(cmd)

			spec, err := specFromConfig(cfg)
			if err != nil {
				return err
			}

			if err := spec.Validate(); err != nil {
				return err
			}

			digest, err := imagebuild.ContextDigest(cfg.ContextDir, spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "context %s\n", digest)

			if cfg.CheckBaseImage {
				baseDigest, err := imagebuild.CheckBaseImage(ctx, spec.BaseImage)
				if err != nil {
					return err
				}
				log.InfoContext(ctx, "base image resolved", slog.String("image", spec.BaseImage))
				fmt.Fprintf(stdout, "base    %s@%s\n", spec.BaseImage, baseDigest)
			}

			return nil
		},
	}
}

func buildCmd(log *slog.Logger, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "build the image and publish and/or export it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "publish", Usage: "Publish to image `REF`", Sources: cli.EnvVars("IMAGE_PUBLISH")},
			&cli.StringFlag{Name: "export", Usage: "Export an image tarball to `FILE`", Sources: cli.EnvVars("IMAGE_EXPORT")},
			&cli.BoolFlag{Name: "check-base-image", Usage: "Resolve the base image before building"},
			&cli.BoolFlag{Name: "verify", Usage: "Inspect the exported tarball after building", Value: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			cfg := config.LoadImage(cmd)

			spec, err := specFromConfig(cfg)
			if err != nil {
				return err
			}

			if cfg.CheckBaseImage {
				if _, err := imagebuild.CheckBaseImage(ctx, spec.BaseImage); err != nil {
					return err
				}
			}

			history, err := imagebuild.OpenHistory(ctx, cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, history.Close())
			}()

			runner := imagebuild.NewRunner(log, imagebuild.NewDaggerBuilder(os.Stderr), history)

			result, err := runner.Run(ctx, cfg.ContextDir, spec, imagebuild.Output{
				Publish: cfg.Publish,
				Export:  cfg.Export,
			})
			if err != nil {
				return err
			}

			printResult(stdout, result)

			if result.ExportPath != "" && cmd.Bool("verify") {
				inspected, err := imagebuild.InspectTarball(result.ExportPath)
				if err != nil {
					return err
				}
				if err := inspected.Verify(spec); err != nil {
					return fmt.Errorf("built image does not match its spec: %w", err)
				}
			}

			return nil
		},
	}
}

func inspectCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "read and verify the runtime config of an exported image",
		ArgsUsage: "TARBALL",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("%w: tarball path is required", imagebuild.ErrNoOutput)
			}

			spec, err := specFromConfig(config.LoadImage(cmd))
			if err != nil {
				return err
			}

			inspected, err := imagebuild.InspectTarball(path)
			if err != nil {
				return err
			}

			ports := make([]string, 0, len(inspected.Ports))
			for _, p := range inspected.Ports {
				ports = append(ports, p.String())
			}

			fmt.Fprintf(stdout, "ports   %s\n", strings.Join(ports, " "))
			fmt.Fprintf(stdout, "cmd     %s\n", strings.Join(append(inspected.Entrypoint, inspected.Cmd...), " "))
			fmt.Fprintf(stdout, "workdir %s\n", inspected.WorkingDir)

			return inspected.Verify(spec)
		},
	}
}

func historyCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recorded builds, newest first",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "limit", Value: 20, Usage: "Show at most `N` builds, 0 for all"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			history, err := imagebuild.OpenHistory(ctx, config.LoadImage(cmd).HistoryPath)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, history.Close())
			}()

			runs, err := history.Runs(ctx, cmd.Uint64("limit"))
			if err != nil {
				return err
			}

			return printRuns(stdout, runs, time.Now())
		},
	}
}

func specFromConfig(cfg *config.Image) (imagebuild.Spec, error) {
	layout, err := imagebuild.ParseLayout(cfg.Layout)
	if err != nil {
		return imagebuild.Spec{}, err
	}

	spec := imagebuild.DefaultSpec(layout)
	if cfg.BaseImage != "" {
		spec.BaseImage = cfg.BaseImage
	}
	if len(cfg.SystemPackages) > 0 {
		spec.SystemPackages = cfg.SystemPackages
	}

	return spec, nil
}

func printResult(w io.Writer, r *imagebuild.Result) {
	if r.Reference != "" {
		fmt.Fprintf(w, "published %s\n", r.Reference)
	}
	if r.ExportPath != "" {
		fmt.Fprintf(w, "exported  %s\n", r.ExportPath)
	}
	fmt.Fprintf(w, "context   %s\n", r.ContextDigest)
	fmt.Fprintf(w, "took      %s\n", r.Duration.Round(time.Millisecond))
}

func printRuns(w io.Writer, runs []imagebuild.Run, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSTARTED\tLAYOUT\tSTATUS\tDURATION\tREFERENCE")
	for _, r := range runs {
		ref := r.Reference
		if r.Status == imagebuild.RunFailed {
			ref = r.Error
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			humanize.RelTime(r.StartedAt, now, "ago", "from now"),
			r.Layout,
			r.Status,
			r.Duration.Round(time.Millisecond),
			ref,
		)
	}

	return tw.Flush()
}

package imagebuild

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strconv"
	"strings"

	"dagger.io/dagger"
)

// DaggerBuilder builds images on a Dagger engine.
type DaggerBuilder struct {
	logOutput io.Writer
}

func NewDaggerBuilder(logOutput io.Writer) *DaggerBuilder {
	return &DaggerBuilder{logOutput: logOutput}
}

func (b *DaggerBuilder) Build(ctx context.Context, dir string, plan *Plan, out Output) (_ *Result, err error) {
	client, err := dagger.Connect(ctx, dagger.WithLogOutput(b.logOutput), dagger.WithWorkdir(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dagger engine: %w", err)
	}
	defer func() {
		err = errors.Join(err, client.Close())
	}()

	ctr, err := applyPlan(client, plan)
	if err != nil {
		return nil, err
	}

	ctr, err = ctr.Sync(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	ports, err := ctr.ExposedPorts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read exposed ports: %w", err)
	}
	for _, p := range ports {
		number, err := p.Port(ctx)
		if err != nil {
			return nil, err
		}
		protocol, err := p.Protocol(ctx)
		if err != nil {
			return nil, err
		}
		result.Ports = append(result.Ports, Port{Number: number, Protocol: strings.ToLower(string(protocol))})
	}

	result.DefaultArgs, err = ctr.DefaultArgs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read default args: %w", err)
	}

	if out.Publish != "" {
		result.Reference, err = ctr.Publish(ctx, out.Publish)
		if err != nil {
			return nil, fmt.Errorf("failed to publish %s: %w", out.Publish, err)
		}
	}

	if out.Export != "" {
		result.ExportPath, err = ctr.Export(ctx, out.Export)
		if err != nil {
			return nil, fmt.Errorf("failed to export to %s: %w", out.Export, err)
		}
	}

	return result, nil
}

// applyPlan turns every step into a container operation. Host paths are
// relative to the client workdir, which is the build context.
func applyPlan(client *dagger.Client, plan *Plan) (*dagger.Container, error) {
	spec := plan.Spec()
	workdir := spec.Workdir

	var ctr *dagger.Container

	for i, s := range plan.steps {
		if ctr == nil && s.Kind != StepFrom {
			return nil, fmt.Errorf("step %d: %s before FROM", i, s.Kind)
		}

		switch s.Kind {
		case StepFrom:
			ctr = client.Container().From(s.Args[0])
		case StepEnv:
			ctr = ctr.WithEnvVariable(s.Args[0], s.Args[1])
		case StepWorkdir:
			workdir = s.Args[0]
			ctr = ctr.WithWorkdir(workdir)
		case StepRun:
			ctr = ctr.WithExec([]string{"sh", "-c", s.Args[0]})
		case StepCopy:
			for _, op := range copyOps(spec, workdir, s.Args) {
				if op.Dir {
					ctr = ctr.WithDirectory(op.Destination, client.Host().Directory(op.Source, dagger.HostDirectoryOpts{
						Exclude: ContextExcludes,
					}))
					continue
				}
				ctr = ctr.WithFile(op.Destination, client.Host().File(op.Source))
			}
		case StepExpose:
			port, opts, err := exposeOpts(spec, s.Args[0])
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			ctr = ctr.WithExposedPort(port, opts)
		case StepCmd:
			ctr = ctr.WithDefaultArgs(s.Args)
		default:
			return nil, fmt.Errorf("step %d: unknown kind %q", i, s.Kind)
		}
	}

	if ctr == nil {
		return nil, errors.New("empty plan")
	}

	return ctr, nil
}

// copyOp is one host path copied into the container. Source trees are
// copied as directories, everything else as single files.
type copyOp struct {
	Source      string
	Destination string
	Dir         bool
}

// copyOps expands COPY args (sources..., destination) into absolute
// container paths. A relative destination is joined to workdir.
func copyOps(spec Spec, workdir string, args []string) []copyOp {
	if len(args) < 2 {
		return nil
	}

	srcs, dst := args[:len(args)-1], args[len(args)-1]
	if !path.IsAbs(dst) {
		dst = path.Join(workdir, dst)
	}

	ops := make([]copyOp, 0, len(srcs))
	for _, src := range srcs {
		if slices.Contains(spec.SourceTrees, src) {
			ops = append(ops, copyOp{Source: src, Destination: dst, Dir: true})
			continue
		}
		ops = append(ops, copyOp{Source: src, Destination: path.Join(dst, path.Base(src))})
	}

	return ops
}

func exposeOpts(spec Spec, arg string) (int, dagger.ContainerWithExposedPortOpts, error) {
	port, err := parsePort(arg)
	if err != nil {
		return 0, dagger.ContainerWithExposedPortOpts{}, err
	}

	return port.Number, dagger.ContainerWithExposedPortOpts{
		Protocol:    daggerProtocol(port.Protocol),
		Description: describePort(spec, port),
	}, nil
}

func parsePort(s string) (Port, error) {
	number, protocol, ok := strings.Cut(s, "/")
	if !ok {
		protocol = "tcp"
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > 65535 {
		return Port{}, fmt.Errorf("invalid port %q", s)
	}

	return Port{Number: n, Protocol: strings.ToLower(protocol)}, nil
}

func daggerProtocol(protocol string) dagger.NetworkProtocol {
	if protocol == "udp" {
		return dagger.NetworkProtocolUdp
	}

	return dagger.NetworkProtocolTcp
}

func describePort(spec Spec, port Port) string {
	for _, p := range spec.Ports {
		if p.Number == port.Number && p.Protocol == port.Protocol {
			return p.Description
		}
	}

	return ""
}

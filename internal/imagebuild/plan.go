package imagebuild

import (
	"fmt"
	"slices"
	"strings"
)

type StepKind string

const (
	StepFrom    StepKind = "FROM"
	StepEnv     StepKind = "ENV"
	StepWorkdir StepKind = "WORKDIR"
	StepRun     StepKind = "RUN"
	StepCopy    StepKind = "COPY"
	StepExpose  StepKind = "EXPOSE"
	StepCmd     StepKind = "CMD"
)

// Step is one layer-producing instruction.
//
// Args by kind:
//   - FROM: image reference
//   - ENV: name, value
//   - WORKDIR: absolute path
//   - RUN: shell script
//   - COPY: sources..., destination relative to the workdir
//   - EXPOSE: port/protocol
//   - CMD: argv
type Step struct {
	Kind StepKind
	Args []string
}

func (s Step) Equal(o Step) bool {
	return s.Kind == o.Kind && slices.Equal(s.Args, o.Args)
}

// Plan is the immutable, ordered list of steps for one Spec.
type Plan struct {
	spec  Spec
	steps []Step
}

func NewPlan(spec Spec) (*Plan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	steps := []Step{{Kind: StepFrom, Args: []string{spec.BaseImage}}}

	for _, e := range spec.Env {
		steps = append(steps, Step{Kind: StepEnv, Args: []string{e.Name, e.Value}})
	}

	steps = append(steps, Step{Kind: StepWorkdir, Args: []string{spec.Workdir}})

	if len(spec.SystemPackages) > 0 {
		steps = append(steps, Step{Kind: StepRun, Args: []string{aptInstall(spec.SystemPackages)}})
	}

	steps = append(steps, Step{Kind: StepCopy, Args: []string{spec.Manifest, spec.Readme, "./"}})
	for _, tree := range spec.SourceTrees {
		steps = append(steps, Step{Kind: StepCopy, Args: []string{tree, "./" + tree}})
	}

	steps = append(steps, Step{Kind: StepRun, Args: []string{"pip install ."}})

	for _, p := range spec.Ports {
		steps = append(steps, Step{Kind: StepExpose, Args: []string{p.String()}})
	}

	steps = append(steps, Step{Kind: StepCmd, Args: spec.Command()})

	return &Plan{spec: spec, steps: steps}, nil
}

func (p *Plan) Spec() Spec {
	return p.spec
}

// Steps returns a copy of the plan steps.
func (p *Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	for i, s := range p.steps {
		out[i] = Step{Kind: s.Kind, Args: slices.Clone(s.Args)}
	}

	return out
}

func (p *Plan) Equal(o *Plan) bool {
	return slices.EqualFunc(p.steps, o.steps, Step.Equal)
}

// aptInstall installs packages and drops the package lists in the same layer.
func aptInstall(packages []string) string {
	return fmt.Sprintf(
		"apt-get update && apt-get install -y --no-install-recommends %s && rm -rf /var/lib/apt/lists/*",
		strings.Join(packages, " "),
	)
}

package imagebuild

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/go-containerregistry/pkg/v1/tarball"
)

// ImageConfig is the runtime contract read back from a built image.
type ImageConfig struct {
	Ports      []Port
	Cmd        []string
	Entrypoint []string
	Env        map[string]string
	WorkingDir string
}

func InspectTarball(path string) (*ImageConfig, error) {
	img, err := tarball.ImageFromPath(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open image tarball: %w", err)
	}

	cf, err := img.ConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to read image config: %w", err)
	}

	cfg := &ImageConfig{
		Cmd:        cf.Config.Cmd,
		Entrypoint: cf.Config.Entrypoint,
		Env:        make(map[string]string, len(cf.Config.Env)),
		WorkingDir: cf.Config.WorkingDir,
	}

	for exposed := range cf.Config.ExposedPorts {
		p, err := parsePort(exposed)
		if err != nil {
			return nil, err
		}
		cfg.Ports = append(cfg.Ports, p)
	}
	slices.SortFunc(cfg.Ports, func(a, b Port) int {
		return a.Number - b.Number
	})

	for _, kv := range cf.Config.Env {
		k, v, _ := strings.Cut(kv, "=")
		cfg.Env[k] = v
	}

	return cfg, nil
}

// Verify reports every difference between the image and the contract of spec.
func (c *ImageConfig) Verify(spec Spec) error {
	var errs []error

	want := make([]string, 0, len(spec.Ports))
	for _, p := range spec.Ports {
		want = append(want, p.String())
	}
	got := make([]string, 0, len(c.Ports))
	for _, p := range c.Ports {
		got = append(got, p.String())
	}
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		errs = append(errs, fmt.Errorf("exposed ports %v, want %v", got, want))
	}

	if argv := append(slices.Clone(c.Entrypoint), c.Cmd...); !slices.Equal(argv, spec.Command()) {
		errs = append(errs, fmt.Errorf("default command %q, want %q", argv, spec.Command()))
	}

	for _, e := range spec.Env {
		if v, ok := c.Env[e.Name]; !ok || v != e.Value {
			errs = append(errs, fmt.Errorf("env %s=%q, want %q", e.Name, v, e.Value))
		}
	}

	if c.WorkingDir != spec.Workdir {
		errs = append(errs, fmt.Errorf("working dir %q, want %q", c.WorkingDir, spec.Workdir))
	}

	return errors.Join(errs...)
}

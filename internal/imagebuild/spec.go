// Package imagebuild packages the voicebot Python project into a container
// image: it validates the build context, turns a Spec into an ordered Plan
// and applies that plan with a Builder.
package imagebuild

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

type Layout string

const (
	// LayoutSplit ships separate backend and frontend trees and serves a static app object.
	LayoutSplit Layout = "split"
	// LayoutSingle ships one src tree and serves through an application factory.
	LayoutSingle Layout = "single"
)

const (
	DefaultBaseImage = "python:3.12-slim"
	DefaultWorkdir   = "/app"

	APIPort       = 8000
	DashboardPort = 8501
)

var (
	ErrUnknownLayout = errors.New("unknown layout")
	ErrInvalidSpec   = errors.New("invalid image spec")
)

func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutSplit, LayoutSingle:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q, expected %q or %q", ErrUnknownLayout, s, LayoutSplit, LayoutSingle)
	}
}

type EnvVar struct {
	Name  string
	Value string
}

type Port struct {
	Number      int
	Protocol    string
	Description string
}

func (p Port) String() string {
	return strconv.Itoa(p.Number) + "/" + p.Protocol
}

// Entrypoint names the ASGI application the server loads, e.g. "backend.api_server:app".
type Entrypoint struct {
	Target  string
	Factory bool
}

type Spec struct {
	Layout         Layout
	BaseImage      string
	SystemPackages []string
	Env            []EnvVar
	Workdir        string
	Manifest       string
	Readme         string
	SourceTrees    []string
	Ports          []Port
	Entrypoint     Entrypoint
	ServerHost     string
	ServerPort     int
}

func DefaultSpec(layout Layout) Spec {
	s := Spec{
		Layout:         layout,
		BaseImage:      DefaultBaseImage,
		SystemPackages: []string{"ffmpeg"},
		Env: []EnvVar{
			{Name: "PYTHONDONTWRITEBYTECODE", Value: "1"},
			{Name: "PYTHONUNBUFFERED", Value: "1"},
			{Name: "PIP_NO_CACHE_DIR", Value: "1"},
		},
		Workdir:  DefaultWorkdir,
		Manifest: "pyproject.toml",
		Readme:   "README.md",
		Ports: []Port{
			{Number: APIPort, Protocol: "tcp", Description: "api"},
			{Number: DashboardPort, Protocol: "tcp", Description: "dashboard"},
		},
		ServerHost: "0.0.0.0",
		ServerPort: APIPort,
	}

	switch layout {
	case LayoutSingle:
		s.SourceTrees = []string{"src"}
		s.Entrypoint = Entrypoint{Target: "src.main:create_app", Factory: true}
	default:
		s.SourceTrees = []string{"backend", "frontend"}
		s.Entrypoint = Entrypoint{Target: "backend.api_server:app"}
	}

	return s
}

func (s Spec) Validate() error {
	var errs []error

	if strings.TrimSpace(s.BaseImage) == "" {
		errs = append(errs, errors.New("base image is required"))
	}
	if !path.IsAbs(s.Workdir) {
		errs = append(errs, fmt.Errorf("workdir %q must be absolute", s.Workdir))
	}
	if s.Manifest == "" || s.Readme == "" {
		errs = append(errs, errors.New("manifest and readme are required"))
	}
	if len(s.SourceTrees) == 0 {
		errs = append(errs, errors.New("at least one source tree is required"))
	}
	if len(s.Ports) == 0 {
		errs = append(errs, errors.New("at least one port is required"))
	}
	if s.Entrypoint.Target == "" {
		errs = append(errs, errors.New("entrypoint is required"))
	}

	seen := make(map[string]bool, len(s.Ports))
	serverDeclared := false
	for _, p := range s.Ports {
		if p.Number < 1 || p.Number > 65535 {
			errs = append(errs, fmt.Errorf("port %d out of range", p.Number))
		}
		if p.Protocol != "tcp" && p.Protocol != "udp" {
			errs = append(errs, fmt.Errorf("port %d: unknown protocol %q", p.Number, p.Protocol))
		}
		if seen[p.String()] {
			errs = append(errs, fmt.Errorf("port %s declared twice", p))
		}
		seen[p.String()] = true

		if p.Number == s.ServerPort {
			serverDeclared = true
		}
	}
	if len(s.Ports) > 0 && !serverDeclared {
		errs = append(errs, fmt.Errorf("server port %d is not exposed", s.ServerPort))
	}

	for _, e := range s.Env {
		if e.Name == "" || strings.ContainsAny(e.Name, "= ") {
			errs = append(errs, fmt.Errorf("invalid env name %q", e.Name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return nil
}

// Command is the default process of the image.
func (s Spec) Command() []string {
	cmd := []string{"uvicorn", s.Entrypoint.Target}
	if s.Entrypoint.Factory {
		cmd = append(cmd, "--factory")
	}

	return append(cmd, "--host", s.ServerHost, "--port", strconv.Itoa(s.ServerPort))
}

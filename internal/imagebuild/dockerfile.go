package imagebuild

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

const dockerfileTemplate = `{{range .}}{{render .}}
{{end}}`

var dockerfileTmpl = template.Must(template.New("Dockerfile").
	Funcs(template.FuncMap{"render": renderStep}).
	Parse(dockerfileTemplate))

// Dockerfile renders the plan as an equivalent Dockerfile.
func (p *Plan) Dockerfile() (string, error) {
	var buf bytes.Buffer
	if err := dockerfileTmpl.Execute(&buf, p.steps); err != nil {
		return "", fmt.Errorf("failed to render Dockerfile: %w", err)
	}

	return buf.String(), nil
}

func renderStep(s Step) (string, error) {
	switch s.Kind {
	case StepEnv:
		return fmt.Sprintf("ENV %s=%s", s.Args[0], quoteEnv(s.Args[1])), nil
	case StepCmd:
		argv, err := json.Marshal(s.Args)
		if err != nil {
			return "", err
		}
		return "CMD " + string(argv), nil
	case StepFrom, StepWorkdir, StepRun, StepCopy, StepExpose:
		return string(s.Kind) + " " + strings.Join(s.Args, " "), nil
	default:
		return "", fmt.Errorf("unknown step kind %q", s.Kind)
	}
}

func quoteEnv(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\"'$\\") {
		return v
	}

	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`).Replace(v) + `"`
}

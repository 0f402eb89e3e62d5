// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	appLayer := []string{
		"pwsim/internal/appcore", "pwsim/internal/app",
		"pwsim/internal/auditapp", "pwsim/internal/reportapp",
		"pwsim/internal/cli", "pwsim/internal/auditcli", "pwsim/internal/reportcli",
		"pwsim/cmd/",
	}
	withPipeline := append([]string{"pwsim/internal/pipeline"}, appLayer...)

	bans := map[string][]string{
		"pwsim/internal/pipeline":    appLayer,
		"pwsim/internal/writers":     withPipeline,
		"pwsim/internal/output":      withPipeline,
		"pwsim/internal/auditoutput": withPipeline,
		"pwsim/internal/pretty":      withPipeline,
		"pwsim/internal/report":      withPipeline,
		"pwsim/internal/strength":    withPipeline,
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pwsim/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "pwsim/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

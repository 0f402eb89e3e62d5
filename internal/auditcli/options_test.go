package auditcli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"pwsim/internal/clibase"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("pwsim-audit-test")
	fs.SetOutput(io.Discard)
	return fs
}

func TestParsePositional(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--policy", "pol.yaml", "p.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.PolicyFile != "pol.yaml" {
		t.Errorf("PolicyFile = %q", o.PolicyFile)
	}
	if len(o.PassFiles) != 1 || o.PassFiles[0] != "p.txt" {
		t.Errorf("PassFiles = %v", o.PassFiles)
	}
}

func TestMissingInputRejected(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "csv"}); err == nil {
		t.Fatal("parse without password files succeeded")
	}
}

func TestHelpAndExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h err = %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("--examples err = %v", err)
	}
}

package cliutil

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("wordlist", "", "")
	fs.Bool("quiet", false, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"--wordlist", "rockyou.txt", "passwords.txt", "--quiet", "more.txt",
	})
	if want := []string{"--wordlist", "rockyou.txt", "--quiet"}; !reflect.DeepEqual(flagArgs, want) {
		t.Fatalf("flagArgs = %v; want %v", flagArgs, want)
	}
	if want := []string{"passwords.txt", "more.txt"}; !reflect.DeepEqual(posArgs, want) {
		t.Fatalf("posArgs = %v; want %v", posArgs, want)
	}
}

func TestSplitEqualsForm(t *testing.T) {
	fs := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--wordlist=r.txt", "p.txt"})
	if want := []string{"--wordlist=r.txt"}; !reflect.DeepEqual(flagArgs, want) {
		t.Fatalf("flagArgs = %v; want %v", flagArgs, want)
	}
	if want := []string{"p.txt"}; !reflect.DeepEqual(posArgs, want) {
		t.Fatalf("posArgs = %v; want %v", posArgs, want)
	}
}

func TestSplitDashAndDoubleDash(t *testing.T) {
	fs := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"-", "--", "--wordlist", "x"})
	if len(flagArgs) != 0 {
		t.Fatalf("flagArgs = %v; want none", flagArgs)
	}
	if want := []string{"-", "--wordlist", "x"}; !reflect.DeepEqual(posArgs, want) {
		t.Fatalf("posArgs = %v; want %v", posArgs, want)
	}
}

func TestExpandPositionalsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.txt"), "-"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), "-"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandPositionals = %v; want %v", got, want)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.nope")}); err == nil {
		t.Fatal("glob with no matches succeeded")
	}
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/cfgpatch/cfg"
)

const testTarget = `// autoexec
sensitivity "2.5"
volume "0.4"
bind "mouse1" "+attack"
host_writeconfig
`

const testPatch = `sensitivity "1.2"
bind "f" "+lookatweapon"
cl_righthand "0"
`

const testMerged = `host_writeconfig
bind "f" "+lookatweapon"
bind "mouse1" "+attack"
cl_righthand "0"
sensitivity "1.2"
volume "0.4"
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestPatchRun_InPlace(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", testTarget)
	patch := writeTestFile(t, "tweaks.cfg", testPatch)

	cmd := &Patch{Target: target, Patch: patch}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Patch.Run() error = %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != testMerged {
		t.Errorf("merged target:\n%s\nwant:\n%s", got, testMerged)
	}
}

func TestPatchRun_Output(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", testTarget)
	patch := writeTestFile(t, "tweaks.cfg", testPatch)
	output := filepath.Join(t.TempDir(), "merged.cfg")

	cmd := &Patch{Target: target, Patch: patch, Output: output}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Patch.Run() error = %v", err)
	}

	// Target is untouched when an alternate destination is given.
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != testTarget {
		t.Errorf("target was modified:\n%s", got)
	}

	merged, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if string(merged) != testMerged {
		t.Errorf("merged output:\n%s\nwant:\n%s", merged, testMerged)
	}
}

func TestPatchRun_MalformedPatchLeavesTarget(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", testTarget)
	patch := writeTestFile(t, "tweaks.cfg", "sensitivity \"1.2\"\nbogus line\n")

	cmd := &Patch{Target: target, Patch: patch}

	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrParseSource) {
		t.Fatalf("Patch.Run() error = %v, want %v", err, ErrParseSource)
	}

	var lineErr *cfg.LineError
	if !errors.As(err, &lineErr) || lineErr.Index != 1 {
		t.Errorf("error = %v, want line index 1", err)
	}

	got, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatal(readErr)
	}

	if string(got) != testTarget {
		t.Errorf("target was modified after failed merge:\n%s", got)
	}
}

func TestPatchRun_MalformedTargetReportsTargetFile(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", "broken target line\n")
	patch := writeTestFile(t, "tweaks.cfg", testPatch)

	cmd := &Patch{Target: target, Patch: patch}

	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrParseSource) {
		t.Fatalf("Patch.Run() error = %v, want %v", err, ErrParseSource)
	}
}

func TestPatchRun_Filter(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", testTarget)
	patch := writeTestFile(t, "tweaks.cfg", testPatch)
	output := filepath.Join(t.TempDir(), "merged.cfg")

	cmd := &Patch{
		Target: target,
		Patch:  patch,
		Output: output,
		Filter: `kind == "bind"`,
	}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Patch.Run() error = %v", err)
	}

	merged, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	set := cfg.NewSet()
	if err := set.Load(bytes.NewReader(merged)); err != nil {
		t.Fatal(err)
	}

	// Filtered-out patch settings leave target values alone.
	if st, ok := set.Get(cfg.KindSetting, "sensitivity"); !ok || st.Val != "2.5" {
		t.Errorf("sensitivity = %v, %v, want target value 2.5", st, ok)
	}

	if _, ok := set.Get(cfg.KindSetting, "cl_righthand"); ok {
		t.Error("cl_righthand applied despite filter")
	}

	if _, ok := set.Get(cfg.KindBind, "f"); !ok {
		t.Error("bind f missing")
	}
}

func TestPatchRun_BadFilter(t *testing.T) {
	t.Parallel()

	target := writeTestFile(t, "autoexec.cfg", testTarget)
	patch := writeTestFile(t, "tweaks.cfg", testPatch)

	cmd := &Patch{Target: target, Patch: patch, Filter: `kind ==`}

	if err := cmd.Run(context.Background()); !errors.Is(err, cfg.ErrFilterCompile) {
		t.Errorf("Patch.Run() error = %v, want %v", err, cfg.ErrFilterCompile)
	}
}

func TestPatchRun_MissingTarget(t *testing.T) {
	t.Parallel()

	patch := writeTestFile(t, "tweaks.cfg", testPatch)

	cmd := &Patch{
		Target: filepath.Join(t.TempDir(), "missing.cfg"),
		Patch:  patch,
	}

	if err := cmd.Run(context.Background()); !errors.Is(err, ErrReadSource) {
		t.Errorf("Patch.Run() error = %v, want %v", err, ErrReadSource)
	}
}

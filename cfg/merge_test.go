package cfg

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSet_Insert_ReplacesByIdentity(t *testing.T) {
	s := NewSet()

	if replaced := s.Insert(Setting("volume", "0.4")); replaced {
		t.Error("first insert reported replacement")
	}

	if replaced := s.Insert(Setting("volume", "1.0")); !replaced {
		t.Error("second insert did not report replacement")
	}

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	st, ok := s.Get(KindSetting, "volume")
	if !ok || st.Val != "1.0" {
		t.Errorf("Get = %v, %v, want volume 1.0", st, ok)
	}
}

func TestSet_Insert_KindsDoNotCollide(t *testing.T) {
	s := NewSet()
	s.Insert(Command("volume"))
	s.Insert(Setting("volume", "0.4"))
	s.Insert(Bind("volume", "toggle"))

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_Load_LastWins(t *testing.T) {
	input := strings.Join([]string{
		`sensitivity "1.0"`,
		`sensitivity "2.5"`,
	}, "\n")

	s := NewSet()
	if err := s.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	st, ok := s.Get(KindSetting, "sensitivity")
	if !ok || st.Val != "2.5" {
		t.Errorf("Get = %v, %v, want sensitivity 2.5", st, ok)
	}
}

func TestSet_Load_LineError(t *testing.T) {
	input := strings.Join([]string{
		`sensitivity "2.5"`,
		"",
		"// comment",
		`volume 0.4`, // index 3: unquoted value
	}, "\n")

	s := NewSet()
	err := s.Load(strings.NewReader(input))

	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Load error = %v, want *LineError", err)
	}

	if lineErr.Index != 3 {
		t.Errorf("Index = %d, want 3", lineErr.Index)
	}

	if !errors.Is(err, ErrInvalidString) {
		t.Errorf("error = %v, want %v", err, ErrInvalidString)
	}

	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("Error() = %q, want 1-based line 4", err.Error())
	}
}

const mergeTarget = `// autoexec
sensitivity "2.5"
volume "0.4"
bind "mouse1" "+attack"
host_writeconfig
`

const mergePatch = `sensitivity "1.2"
bind "f" "+lookatweapon"
cl_righthand "0"
`

func TestMerge_PatchOverridesAndAppends(t *testing.T) {
	s, err := Merge(
		strings.NewReader(mergeTarget),
		strings.NewReader(mergePatch),
	)
	if err != nil {
		t.Fatalf("Merge error = %v", err)
	}

	var out bytes.Buffer
	if _, err := s.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo error = %v", err)
	}

	want := `host_writeconfig
bind "f" "+lookatweapon"
bind "mouse1" "+attack"
cl_righthand "0"
sensitivity "1.2"
volume "0.4"
`
	if out.String() != want {
		t.Errorf("merged output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestMerge_EmptyPatchIsIdentity(t *testing.T) {
	s, err := Merge(strings.NewReader(mergeTarget), strings.NewReader(""))
	if err != nil {
		t.Fatalf("Merge error = %v", err)
	}

	var once bytes.Buffer
	if _, err := s.WriteTo(&once); err != nil {
		t.Fatalf("WriteTo error = %v", err)
	}

	// Merging the canonical output with an empty patch again must
	// reproduce it byte for byte.
	again, err := Merge(strings.NewReader(once.String()), strings.NewReader(""))
	if err != nil {
		t.Fatalf("second Merge error = %v", err)
	}

	var twice bytes.Buffer
	if _, err := again.WriteTo(&twice); err != nil {
		t.Fatalf("second WriteTo error = %v", err)
	}

	if once.String() != twice.String() {
		t.Errorf("not idempotent:\nfirst:\n%s\nsecond:\n%s",
			once.String(), twice.String())
	}
}

func TestMerge_Idempotent(t *testing.T) {
	first, err := Merge(
		strings.NewReader(mergeTarget),
		strings.NewReader(mergePatch),
	)
	if err != nil {
		t.Fatalf("Merge error = %v", err)
	}

	var out1 bytes.Buffer
	if _, err := first.WriteTo(&out1); err != nil {
		t.Fatalf("WriteTo error = %v", err)
	}

	second, err := Merge(
		strings.NewReader(out1.String()),
		strings.NewReader(mergePatch),
	)
	if err != nil {
		t.Fatalf("second Merge error = %v", err)
	}

	var out2 bytes.Buffer
	if _, err := second.WriteTo(&out2); err != nil {
		t.Fatalf("second WriteTo error = %v", err)
	}

	if out1.String() != out2.String() {
		t.Errorf("patch application is not idempotent:\nfirst:\n%s\nsecond:\n%s",
			out1.String(), out2.String())
	}
}

func TestMerge_MalformedPatchFails(t *testing.T) {
	_, err := Merge(
		strings.NewReader(mergeTarget),
		strings.NewReader("sensitivity \"1.2\"\nbroken line here\n"),
	)

	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Merge error = %v, want *LineError", err)
	}

	if lineErr.Index != 1 {
		t.Errorf("Index = %d, want 1", lineErr.Index)
	}
}

func TestMergeFiltered_RestrictsPatch(t *testing.T) {
	filter, err := CompileFilter(`kind == "bind"`)
	if err != nil {
		t.Fatalf("CompileFilter error = %v", err)
	}

	s, err := MergeFiltered(
		strings.NewReader(mergeTarget),
		strings.NewReader(mergePatch),
		filter,
	)
	if err != nil {
		t.Fatalf("MergeFiltered error = %v", err)
	}

	// Only the bind from the patch applies. Filtered-out settings leave
	// the target values alone.
	if st, ok := s.Get(KindSetting, "sensitivity"); !ok || st.Val != "2.5" {
		t.Errorf("sensitivity = %v, %v, want target value 2.5", st, ok)
	}

	if _, ok := s.Get(KindSetting, "cl_righthand"); ok {
		t.Error("cl_righthand applied despite filter")
	}

	if _, ok := s.Get(KindBind, "f"); !ok {
		t.Error("bind f missing")
	}
}

func TestSet_Lookup(t *testing.T) {
	s := NewSet()
	s.Insert(Command("volume"))
	s.Insert(Setting("volume", "0.4"))
	s.Insert(Setting("sensitivity", "2.5"))

	got := s.Lookup("volume")
	if len(got) != 2 {
		t.Fatalf("Lookup returned %d statements, want 2", len(got))
	}

	if got[0].Kind != KindCommand || got[1].Kind != KindSetting {
		t.Errorf("Lookup order = %v, want command then setting", got)
	}

	if s.Lookup("missing") != nil {
		t.Error("Lookup of missing key returned statements")
	}
}

func TestSet_Keys_SortedDeduplicated(t *testing.T) {
	s := NewSet()
	s.Insert(Command("volume"))
	s.Insert(Setting("volume", "0.4"))
	s.Insert(Bind("mouse1", "+attack"))

	got := s.Keys()
	want := []string{"mouse1", "volume"}

	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSet_WriteTo_Empty(t *testing.T) {
	var out bytes.Buffer

	n, err := NewSet().WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo error = %v", err)
	}

	if n != 0 || out.Len() != 0 {
		t.Errorf("WriteTo wrote %d bytes: %q", n, out.String())
	}
}

func TestSet_Load_LongLine(t *testing.T) {
	// Well past the bufio.Scanner default of 64KiB.
	action := strings.Repeat("say spam; ", 10240)
	input := `bind "k" "` + action + `"` + "\n"

	s := NewSet()
	if err := s.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	st, ok := s.Get(KindBind, "k")
	if !ok || st.Val != action {
		t.Errorf("Get = %v, %v, want full action payload", ok, len(st.Val))
	}
}

func TestSet_Load_OverLongLineReportsLine(t *testing.T) {
	input := "volume \"0.4\"\n" +
		`bind "k" "` + strings.Repeat("x", maxLineBytes+1) + `"` + "\n"

	s := NewSet()
	err := s.Load(strings.NewReader(input))

	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Load error = %v, want *LineError", err)
	}

	if lineErr.Index != 1 {
		t.Errorf("Index = %d, want 1", lineErr.Index)
	}

	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("error = %v, want %v", err, bufio.ErrTooLong)
	}
}

// failWriter accepts up to limit bytes, then fails.
type failWriter struct {
	limit int
	n     int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		accept := w.limit - w.n
		w.n = w.limit

		return accept, errors.New("write failed")
	}

	w.n += len(p)

	return len(p), nil
}

func TestSet_WriteTo_FailedFlushCount(t *testing.T) {
	s := NewSet()
	s.Insert(Setting("sensitivity", "2.5"))
	s.Insert(Setting("volume", "0.4"))

	w := &failWriter{limit: 10}

	n, err := s.WriteTo(w)
	if err == nil {
		t.Fatal("WriteTo succeeded against a failing writer")
	}

	// The count reports bytes delivered to the writer, not bytes
	// buffered before the failed flush.
	if n != int64(w.n) {
		t.Errorf("WriteTo returned %d, writer accepted %d", n, w.n)
	}
}

func TestSet_WriteTo_ByteCount(t *testing.T) {
	s := NewSet()
	s.Insert(Setting("volume", "0.4"))

	var out bytes.Buffer

	n, err := s.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo error = %v", err)
	}

	if n != int64(out.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, out.Len())
	}
}

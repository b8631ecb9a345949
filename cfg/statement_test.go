package cfg

import (
	"slices"
	"testing"
)

func TestStatement_Compare_GroupOrder(t *testing.T) {
	input := []Statement{
		Setting("volume", "0.4"),
		Bind("mouse1", "+attack"),
		Command("clear"),
		Setting("sensitivity", "2.5"),
		Bind("f", "+lookatweapon"),
		Command("host_writeconfig"),
	}

	want := []Statement{
		Command("clear"),
		Command("host_writeconfig"),
		Bind("f", "+lookatweapon"),
		Bind("mouse1", "+attack"),
		Setting("sensitivity", "2.5"),
		Setting("volume", "0.4"),
	}

	got := slices.Clone(input)
	slices.SortFunc(got, Statement.Compare)

	if !slices.Equal(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestStatement_Compare_IgnoresPayload(t *testing.T) {
	a := Setting("sensitivity", "2.5")
	b := Setting("sensitivity", "0.5")

	if a.Compare(b) != 0 {
		t.Errorf("Compare(%v, %v) = %d, want 0", a, b, a.Compare(b))
	}
}

func TestStatement_SameIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b Statement
		want bool
	}{
		{
			name: "same key different payload",
			a:    Setting("volume", "0.4"),
			b:    Setting("volume", "1.0"),
			want: true,
		},
		{
			name: "same key different kind",
			a:    Command("volume"),
			b:    Setting("volume", "0.4"),
			want: false,
		},
		{
			name: "bind key vs setting key",
			a:    Bind("f", "+lookatweapon"),
			b:    Setting("f", "+lookatweapon"),
			want: false,
		},
		{
			name: "different keys",
			a:    Bind("f", "+lookatweapon"),
			b:    Bind("g", "+lookatweapon"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameIdentity(tt.b); got != tt.want {
				t.Errorf("SameIdentity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatement_String(t *testing.T) {
	tests := []struct {
		name string
		st   Statement
		want string
	}{
		{"command", Command("host_writeconfig"), "host_writeconfig"},
		{"setting", Setting("sensitivity", "2.5"), `sensitivity "2.5"`},
		{"empty setting value", Setting("rcon_password", ""), `rcon_password ""`},
		{"bind", Bind("mouse1", "+attack"), `bind "mouse1" "+attack"`},
		{
			// Payloads are verbatim; a backslash must not be doubled.
			"setting value with backslash",
			Setting("exec_path", `cfg\autoexec`),
			`exec_path "cfg\autoexec"`,
		},
		{
			"bind action with tab",
			Bind("k", "say\tgg"),
			"bind \"k\" \"say\tgg\"",
		},
		{
			"setting value with non-ascii",
			Setting("clan_tag", "ギルド"),
			`clan_tag "ギルド"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatement_StringRoundTrip(t *testing.T) {
	stmts := []Statement{
		Command("clear"),
		Setting("say_team", "rush b"),
		Bind("k", "say gg // wp"),
		Setting("exec_path", `cfg\autoexec`),
		Bind("k", "say\tgg"),
		Setting("motd", `line1\nline2`),
		Setting("clan_tag", "ギルド"),
	}

	for _, st := range stmts {
		parsed, err := ParseLine(st.String())
		if err != nil {
			t.Fatalf("ParseLine(%q) error = %v", st.String(), err)
		}

		if parsed == nil || *parsed != st {
			t.Errorf("round trip of %v produced %v", st, parsed)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCommand, "command"},
		{KindBind, "bind"},
		{KindSetting, "setting"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{"command", KindCommand, true},
		{"BIND", KindBind, true},
		{" setting ", KindSetting, true},
		{"alias", KindCommand, false},
		{"", KindCommand, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseKind(%q) = %v, %v, want %v, %v",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

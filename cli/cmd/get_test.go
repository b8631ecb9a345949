package cmd

import (
	"context"
	"errors"
	"testing"
)

func TestGetRun(t *testing.T) {
	t.Parallel()

	source := writeTestFile(t, "game.cfg", testTarget)

	tests := []struct {
		name    string
		key     string
		kind    string
		wantErr error
	}{
		{name: "setting", key: "sensitivity"},
		{name: "bind", key: "mouse1"},
		{name: "command", key: "host_writeconfig"},
		{name: "kind restricted", key: "sensitivity", kind: "setting"},
		{name: "missing key", key: "nonexistent", wantErr: ErrKeyNotFound},
		{
			name:    "wrong kind",
			key:     "sensitivity",
			kind:    "bind",
			wantErr: ErrKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := &Get{Key: tt.key, Kind: tt.kind, Source: []string{source}}

			err := cmd.Run(context.Background())
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Get.Run() error = %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get.Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetRun_LaterSourceWins(t *testing.T) {
	t.Parallel()

	first := writeTestFile(t, "a.cfg", `sensitivity "1.0"`+"\n")
	second := writeTestFile(t, "b.cfg", `sensitivity "2.5"`+"\n")

	cmd := &Get{Key: "sensitivity", Source: []string{first, second}}
	if err := cmd.Run(context.Background()); err != nil {
		t.Errorf("Get.Run() error = %v", err)
	}
}

func TestGetRun_SuggestionsOnMiss(t *testing.T) {
	t.Parallel()

	source := writeTestFile(t, "game.cfg", testTarget)

	cmd := &Get{Key: "sensitvty", Source: []string{source}}

	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Get.Run() error = %v, want %v", err, ErrKeyNotFound)
	}
}

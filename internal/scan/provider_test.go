package scan

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) ListModules(context.Context, string) ([]Record, error) {
	return nil, nil
}

func okFactory(name string) Factory {
	return Factory{Name: name, New: func() (Provider, error) {
		return &stubProvider{name: name}, nil
	}}
}

func failFactory(name string) Factory {
	return Factory{Name: name, New: func() (Provider, error) {
		return nil, errors.New("unavailable")
	}}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		factories []Factory
		names     []string
		want      string
		wantErr   bool
	}{
		{
			name:      "first available wins",
			factories: []Factory{okFactory("a"), okFactory("b")},
			names:     []string{"a", "b"},
			want:      "a",
		},
		{
			name:      "preference order decides, not factory order",
			factories: []Factory{okFactory("a"), okFactory("b")},
			names:     []string{"b", "a"},
			want:      "b",
		},
		{
			name:      "failing constructor falls through",
			factories: []Factory{failFactory("a"), okFactory("b")},
			names:     []string{"a", "b"},
			want:      "b",
		},
		{
			name:      "unknown names are skipped",
			factories: []Factory{okFactory("b")},
			names:     []string{"nosuch", "b"},
			want:      "b",
		},
		{
			name:      "all failing",
			factories: []Factory{failFactory("a"), failFactory("b")},
			names:     []string{"a", "b"},
			wantErr:   true,
		},
		{
			name:      "empty preference list",
			factories: []Factory{okFactory("a")},
			names:     nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Select(tt.factories, tt.names)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Select() expected error")
				}

				if !errors.Is(err, ErrNoScanner) {
					t.Errorf("Select() error = %v, want ErrNoScanner", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			if p.Name() != tt.want {
				t.Errorf("Select() picked %q, want %q", p.Name(), tt.want)
			}
		})
	}
}

func TestDefaultFactoriesOrder(t *testing.T) {
	factories := DefaultFactories()

	want := []string{"golist", "gosyntax", "linescan"}
	if len(factories) != len(want) {
		t.Fatalf("DefaultFactories() returned %d factories, want %d", len(factories), len(want))
	}

	for i, name := range want {
		if factories[i].Name != name {
			t.Errorf("factory %d = %q, want %q", i, factories[i].Name, name)
		}
	}
}

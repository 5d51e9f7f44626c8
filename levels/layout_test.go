package levels

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantErr    error
		wantRange  float64
		wantActive bool
		wantVerts  int
	}{
		{
			name:       "active_portal",
			data:       `{"points": [[10, 20], [40, 60], [0.25, 1], [0, 0], [100, 0], [100, 100]], "portal": [50, 50]}`,
			wantRange:  math.Pi / 4,
			wantActive: true,
			wantVerts:  3,
		},
		{
			name:      "inactive_portal_no_origin",
			data:      `{"points": [[10, 20], [0, 0], [0.5, 0], [0, 0], [100, 0]]}`,
			wantRange: math.Pi / 2,
			wantVerts: 2,
		},
		{
			name:      "multiplier_clamped_high",
			data:      `{"points": [[0, 0], [0, 0], [3, 0], [0, 0], [100, 0]]}`,
			wantRange: math.Pi,
			wantVerts: 2,
		},
		{
			name:      "multiplier_clamped_low",
			data:      `{"points": [[0, 0], [0, 0], [-1, 0], [0, 0], [100, 0]]}`,
			wantRange: 0,
			wantVerts: 2,
		},
		{
			name:    "single_boundary_vertex",
			data:    `{"points": [[0, 0], [0, 0], [0.5, 0], [0, 0]]}`,
			wantErr: ErrInsufficientVertices,
		},
		{
			name:    "active_portal_without_origin",
			data:    `{"points": [[0, 0], [40, 60], [0.5, 1], [0, 0], [100, 0]]}`,
			wantErr: ErrInvalidPortal,
		},
		{
			name:    "active_portal_zero_size",
			data:    `{"points": [[0, 0], [0, 60], [0.5, 1], [0, 0], [100, 0]], "portal": [1, 1]}`,
			wantErr: ErrInvalidPortal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Parse(0, []byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(layout.MaxGravity-tt.wantRange) > 1e-12 {
				t.Fatalf("expected half range %v, got %v", tt.wantRange, layout.MaxGravity)
			}
			if layout.PortalActive != tt.wantActive {
				t.Fatalf("expected portal active %v, got %v", tt.wantActive, layout.PortalActive)
			}
			if len(layout.Vertices) != tt.wantVerts {
				t.Fatalf("expected %d vertices, got %d", tt.wantVerts, len(layout.Vertices))
			}
			if len(layout.Edges()) != tt.wantVerts-1 {
				t.Fatalf("expected %d edges, got %d", tt.wantVerts-1, len(layout.Edges()))
			}
		})
	}
}

func TestParseMalformedJSON(t *testing.T) {
	if _, err := Parse(0, []byte(`{"points": `)); err == nil {
		t.Fatalf("expected error for truncated json")
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	n := Count()
	if n == 0 {
		t.Fatalf("expected embedded levels")
	}
	for i := 0; i < n; i++ {
		layout, err := LoadLayout(i)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		if layout.Index != i {
			t.Fatalf("expected index %d, got %d", i, layout.Index)
		}
		if !layout.PortalActive {
			t.Fatalf("level %d: expected an active portal", i)
		}
	}
}

func TestRunScript(t *testing.T) {
	layout, err := LoadLayout(1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if layout.Script == "" {
		t.Fatalf("expected level 1 to carry a script")
	}
	if layout.MaxGravity < math.Pi/2-1e-12 {
		t.Fatalf("expected script to keep at least a half turn, got %v", layout.MaxGravity)
	}

	layout.Spawn.X = 600
	layout.MaxGravity = 0.1
	if err := RunScript(layout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if layout.PortalActive {
		t.Fatalf("expected script to close the portal")
	}
	if math.Abs(layout.MaxGravity-math.Pi/2) > 1e-12 {
		t.Fatalf("expected half range pi/2, got %v", layout.MaxGravity)
	}
}

func TestRunScriptOpensPortal(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantErr    error
		wantOrigin Point
	}{
		{
			name:       "closed_portal_keeps_origin",
			data:       `{"points": [[0, 0], [40, 60], [0.5, 0], [0, 0], [800, 0]], "portal": [700, 380], "script": "open.tengo"}`,
			wantOrigin: Point{X: 700, Y: 380},
		},
		{
			name:    "no_origin",
			data:    `{"points": [[0, 0], [40, 60], [0.5, 0], [0, 0], [800, 0]], "script": "open.tengo"}`,
			wantErr: ErrInvalidPortal,
		},
		{
			name:    "zero_size",
			data:    `{"points": [[0, 0], [0, 60], [0.5, 0], [0, 0], [800, 0]], "portal": [700, 380], "script": "open.tengo"}`,
			wantErr: ErrInvalidPortal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Parse(0, []byte(tt.data))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			err = runScript(layout, []byte("portal_active = true\nmax_gravity = 1"))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if layout.PortalActive {
					t.Fatalf("portal should stay closed after a failed script")
				}
				if math.Abs(layout.MaxGravity-math.Pi/2) > 1e-12 {
					t.Fatalf("failed script should not change gravity, got %v", layout.MaxGravity)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if !layout.PortalActive {
				t.Fatalf("expected script to open the portal")
			}
			if layout.PortalOrigin != tt.wantOrigin {
				t.Fatalf("expected origin %v, got %v", tt.wantOrigin, layout.PortalOrigin)
			}
		})
	}
}

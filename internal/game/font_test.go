package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ncruces/zenity"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/frequency/internal/config"
)

func TestLoadFace(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "regular.ttf")
	if err := os.WriteFile(valid, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	junk := filepath.Join(dir, "junk.otf")
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write junk: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
		wantIs  error
	}{
		{name: "valid", path: valid},
		{name: "missing", path: filepath.Join(dir, "missing.otf"), wantErr: "load font:", wantIs: fs.ErrNotExist},
		{name: "not a font", path: junk, wantErr: "parse font"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := loadFace(tt.path, 8)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("loadFace() error = %v", err)
				}
				if face == nil || face.Size != 8 {
					t.Fatalf("loadFace() face = %+v, want size 8", face)
				}
				return
			}
			if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Fatalf("loadFace() error = %v, want prefix %q", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Fatalf("loadFace() error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestNewGameFallsBackToBuiltinFont(t *testing.T) {
	opts := config.Default()
	opts.FontPath = filepath.Join(t.TempDir(), "DIN.otf")
	opts.FontSize = 11

	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if !errors.Is(g.FontErr(), fs.ErrNotExist) {
		t.Fatalf("FontErr() = %v, want not-exist", g.FontErr())
	}
	if g.face == nil || g.face.Size != 11 {
		t.Fatalf("face = %+v, want built-in face at 11", g.face)
	}
	if g.lastErr == nil {
		t.Fatal("lastErr not set after fallback")
	}
}

func TestNewGameConfiguredFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	opts := config.Default()
	opts.FontPath = path

	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if g.FontErr() != nil || g.lastErr != nil {
		t.Fatalf("FontErr() = %v, lastErr = %v; want nil", g.FontErr(), g.lastErr)
	}
}

func TestCollectFont(t *testing.T) {
	picked, err := fallbackFace(14)
	if err != nil {
		t.Fatalf("fallbackFace() error = %v", err)
	}
	failure := errors.New("dialog exploded")

	tests := []struct {
		name     string
		result   *fontResult
		wantErr  error
		wantFace bool
		picking  bool
	}{
		{name: "canceled", result: &fontResult{err: zenity.ErrCanceled}},
		{name: "failed", result: &fontResult{err: failure}, wantErr: failure},
		{name: "picked", result: &fontResult{path: "x.ttf", face: picked}, wantFace: true},
		{name: "still open", picking: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			before := g.face
			g.picking = true
			if tt.result != nil {
				g.fonts <- *tt.result
			}

			g.collectFont()

			if g.picking != tt.picking {
				t.Fatalf("picking = %v, want %v", g.picking, tt.picking)
			}
			if !errors.Is(g.lastErr, tt.wantErr) {
				t.Fatalf("lastErr = %v, want %v", g.lastErr, tt.wantErr)
			}
			if tt.wantFace && g.face != picked {
				t.Fatal("picked face not applied")
			}
			if !tt.wantFace && g.face != before {
				t.Fatal("face changed")
			}
		})
	}
}

func TestCollectFontClearsPreviousError(t *testing.T) {
	g := newTestGame(t)
	g.lastErr = errors.New("old")
	face, err := fallbackFace(8)
	if err != nil {
		t.Fatalf("fallbackFace() error = %v", err)
	}
	g.picking = true
	g.fonts <- fontResult{path: "new.ttf", face: face}
	g.collectFont()
	if g.lastErr != nil {
		t.Fatalf("lastErr = %v after a successful pick", g.lastErr)
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	face, err := fallbackFace(config.DefaultFontSize)
	if err != nil {
		t.Fatalf("fallbackFace() error = %v", err)
	}
	return &Game{
		opts:  config.Default(),
		face:  face,
		fonts: make(chan fontResult, 1),
	}
}

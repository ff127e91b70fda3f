package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		key   sdl.Keycode
		shift bool
		want  byte
		ok    bool
	}{
		{sdl.K_ESCAPE, false, 27, true},
		{sdl.K_q, false, 'q', true},
		{sdl.K_q, true, 'q', true},
		{sdl.K_KP_PLUS, false, '+', true},
		{sdl.K_EQUALS, true, '+', true},
		{sdl.K_EQUALS, false, '=', true},
		{sdl.K_MINUS, false, '-', true},
		{sdl.K_KP_MINUS, false, '-', true},
		{sdl.K_F1, false, 0, false},
		{sdl.K_LSHIFT, true, 0, false},
	}
	for _, tt := range tests {
		got, ok := Symbol(tt.key, tt.shift)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Symbol(%v, %v) = %q, %v, want %q, %v", tt.key, tt.shift, got, ok, tt.want, tt.ok)
		}
	}
}

package enigma

import (
	"reflect"
	"testing"

	enerr "goenigma/internal/errors"
)

func TestPlugboard_EmptyIsIdentity(t *testing.T) {
	p := NewPlugboard()
	for i := 0; i < Size; i++ {
		got, err := p.Switch(Letter(i))
		if err != nil {
			t.Fatalf("Switch: %v", err)
		}
		if got != Letter(i) {
			t.Errorf("empty plugboard maps %c to %c", Letter(i), got)
		}
	}
	if p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
}

func TestPlugboard_AddPairIsReciprocal(t *testing.T) {
	p := NewPlugboard()
	if err := p.AddPair('h', 'z'); err != nil {
		t.Fatalf("AddPair: %v", err)
	}
	if got, _ := p.Switch('h'); got != 'z' {
		t.Errorf("Switch(h) = %c, want z", got)
	}
	if got, _ := p.Switch('z'); got != 'h' {
		t.Errorf("Switch(z) = %c, want h", got)
	}
	if got, _ := p.SwitchReverse('h'); got != 'z' {
		t.Errorf("SwitchReverse(h) = %c, want z", got)
	}
	if partner, ok := p.Partner('z'); !ok || partner != 'h' {
		t.Errorf("Partner(z) = %c, %v", partner, ok)
	}
}

func TestPlugboard_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		a, b    rune
		wantErr error
	}{
		{"self pair", 'a', 'a', enerr.ErrSelfPair},
		{"first socket taken", 'h', 'q', enerr.ErrSocketOccupied},
		{"second socket taken", 'q', 'z', enerr.ErrSocketOccupied},
		{"same pair again", 'z', 'h', enerr.ErrSocketOccupied},
		{"digit", '1', 'q', enerr.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlugboard()
			if err := p.AddPair('h', 'z'); err != nil {
				t.Fatalf("AddPair: %v", err)
			}
			before := p.sockets

			err := p.AddPair(tt.a, tt.b)
			if !enerr.Is(err, tt.wantErr) {
				t.Fatalf("AddPair(%c, %c) err = %v, want %v", tt.a, tt.b, err, tt.wantErr)
			}
			if p.sockets != before {
				t.Error("a rejected AddPair must leave the plugboard unchanged")
			}
		})
	}
}

func TestPlugboard_RemovePair(t *testing.T) {
	p := NewPlugboard()
	_ = p.AddPair('a', 'b')
	_ = p.AddPair('c', 'd')

	if err := p.RemovePair('b'); err != nil {
		t.Fatalf("RemovePair: %v", err)
	}
	if got, _ := p.Switch('a'); got != 'a' {
		t.Errorf("after removal Switch(a) = %c, want a", got)
	}
	if got, _ := p.Switch('c'); got != 'd' {
		t.Errorf("other pair lost: Switch(c) = %c", got)
	}

	err := p.RemovePair('a')
	if !enerr.Is(err, enerr.ErrNoPairing) {
		t.Errorf("RemovePair(a) err = %v, want no pairing", err)
	}
	if !enerr.IsPlugConflict(err) {
		t.Error("no pairing should classify as a plug conflict")
	}
}

func TestPlugboard_PairsListedOnce(t *testing.T) {
	p := NewPlugboard()
	_ = p.AddPair('z', 'h')
	_ = p.AddPair('b', 'a')
	_ = p.AddPair('x', 'm')

	want := []Pair{{'a', 'b'}, {'h', 'z'}, {'m', 'x'}}
	if got := p.Pairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, want 3", p.Len())
	}
}

func TestPlugboard_FullBoard(t *testing.T) {
	p := NewPlugboard()
	for i := 0; i < Size; i += 2 {
		if err := p.AddPair(Letter(i), Letter(i+1)); err != nil {
			t.Fatalf("AddPair: %v", err)
		}
	}
	if p.Len() != MaxPairs {
		t.Fatalf("Len = %d, want %d", p.Len(), MaxPairs)
	}
	if err := p.AddPair('a', 'z'); !enerr.Is(err, enerr.ErrSocketOccupied) {
		t.Errorf("full board should reject, got %v", err)
	}
	if !p.Map().SelfInverse() {
		t.Error("plugboard map must be self-inverse")
	}
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Clear left %d pairs", p.Len())
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		input   string
		want    Pair
		wantErr bool
	}{
		{"hz", Pair{'h', 'z'}, false},
		{"ZH", Pair{'h', 'z'}, false},
		{"a-b", Pair{'a', 'b'}, false},
		{"a:q", Pair{'a', 'q'}, false},
		{"abc", Pair{}, true},
		{"a", Pair{}, true},
		{"a1", Pair{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePair(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePair(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

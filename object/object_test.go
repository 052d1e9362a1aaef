package object

import "testing"

func TestCeilDiv8(t *testing.T) {
	tests := []struct {
		n    uintptr
		want uintptr
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}
	for _, tc := range tests {
		if got := CeilDiv8(tc.n); got != tc.want {
			t.Errorf("CeilDiv8(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestSizeUnitsOrdinary(t *testing.T) {
	p := &Prototype{Size: 16, TypeTag: Other}
	if got, want := SizeUnits(p, 0), uintptr(5); got != want {
		t.Errorf("SizeUnits(ordinary 16) = %d, want %d", got, want)
	}
}

func TestSizeUnitsArray(t *testing.T) {
	p := &Prototype{Size: -8, TypeTag: ObjList}
	if got, want := SizeUnits(p, 3), uintptr(7); got != want {
		// ArrayHeaderSize(32) + 8*3 = 56 -> ceil(56/8) = 7
		t.Errorf("SizeUnits(array len 3) = %d, want %d", got, want)
	}
}

func TestTestBit(t *testing.T) {
	bitmap := []uint8{0b00000101, 0b00000010}
	base := &bitmap[0]
	cases := map[int]bool{
		0: true, 1: false, 2: true, 3: false,
		8: false, 9: true, 10: false,
	}
	for i, want := range cases {
		if got := TestBit(base, i); got != want {
			t.Errorf("TestBit(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestTestBitNilBase(t *testing.T) {
	if TestBit(nil, 0) {
		t.Error("TestBit(nil, 0) should be false")
	}
}

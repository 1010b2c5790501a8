package statictree

import "testing"

// =============================================================================
// Recurrence Tests
// =============================================================================

func TestBlockCount(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 1}, {16, 1}, {17, 2}, {272, 17}, {273, 18},
	}
	for _, tt := range tests {
		if got := BlockCount(tt.n); got != tt.want {
			t.Errorf("BlockCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestParentLayerKeys(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 16},
		{17, 16},    // 2 blocks -> 1 parent block
		{272, 16},   // 17 blocks -> 1 parent block
		{273, 32},   // 18 blocks -> 2 parent blocks
		{4624, 272}, // 289 blocks -> 17 parent blocks
		{4625, 288}, // 290 blocks -> 18 parent blocks
	}
	for _, tt := range tests {
		if got := ParentLayerKeys(tt.n); got != tt.want {
			t.Errorf("ParentLayerKeys(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1}, {1, 1}, {16, 1}, {17, 2}, {272, 2}, {273, 3}, {4624, 3}, {4625, 4},
	}
	for _, tt := range tests {
		if got := Height(tt.n); got != tt.want {
			t.Errorf("Height(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// =============================================================================
// Geometry Tests
// =============================================================================

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		blocks  []int
		offsets []int
	}{
		{"empty", 0, []int{1}, []int{0, 16}},
		{"one_block", 16, []int{1}, []int{0, 16}},
		{"first_internal_layer", 17, []int{2, 1}, []int{0, 32, 48}},
		{"eighty", 80, []int{5, 1}, []int{0, 80, 96}},
		{"full_two_layers", 272, []int{17, 1}, []int{0, 272, 288}},
		{"one_past_two_layers", 273, []int{18, 2, 1}, []int{0, 288, 320, 336}},
		{"full_three_layers", 4624, []int{289, 17, 1}, []int{0, 4624, 4896, 4912}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.n)
			if g.N() != tt.n {
				t.Errorf("N() = %d, want %d", g.N(), tt.n)
			}
			if g.Height() != len(tt.blocks) {
				t.Fatalf("Height() = %d, want %d", g.Height(), len(tt.blocks))
			}
			if g.Height() != Height(tt.n) {
				t.Errorf("Height() = %d disagrees with Height(%d) = %d", g.Height(), tt.n, Height(tt.n))
			}
			for h, want := range tt.blocks {
				if got := g.Blocks(h); got != want {
					t.Errorf("Blocks(%d) = %d, want %d", h, got, want)
				}
			}
			for h, want := range tt.offsets {
				if got := g.Offset(h); got != want {
					t.Errorf("Offset(%d) = %d, want %d", h, got, want)
				}
			}
			if g.Size() != tt.offsets[len(tt.offsets)-1] {
				t.Errorf("Size() = %d, want %d", g.Size(), tt.offsets[len(tt.offsets)-1])
			}
			if g.TotalBlocks()*BlockLen != g.Size() {
				t.Errorf("TotalBlocks() = %d, Size() = %d", g.TotalBlocks(), g.Size())
			}
		})
	}
}

func TestNewGeometry_TopLayerIsOneBlock(t *testing.T) {
	for _, n := range []int{0, 1, 17, 300, 5000, 100_000, 1 << 22} {
		g := NewGeometry(n)
		if top := g.Blocks(g.Height() - 1); top != 1 {
			t.Errorf("n=%d: top layer has %d blocks, want 1", n, top)
		}
	}
}

func TestNewGeometry_Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGeometry(-1) did not panic")
		}
	}()
	NewGeometry(-1)
}

package types

import "testing"

// TestTileTypeString 测试瓦片类型的字符串表示
func TestTileTypeString(t *testing.T) {
	tests := []struct {
		tileType TileType
		want     string
	}{
		{TileGrass, "Grass"},
		{TileWater, "Water"},
		{TileBuilding, "Building"},
		{TileUnknown, "Unknown"},
		{TileType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.tileType.String(); got != tt.want {
			t.Errorf("TileType(%d).String() = %q, want %q", tt.tileType, got, tt.want)
		}
	}
}

// TestParseTileType 测试字符串到瓦片类型的往返解析
func TestParseTileType(t *testing.T) {
	for _, tileType := range AllTileTypes() {
		parsed, ok := ParseTileType(tileType.String())
		if !ok || parsed != tileType {
			t.Errorf("ParseTileType(%q) = (%v, %v), want (%v, true)", tileType.String(), parsed, ok, tileType)
		}
	}

	if parsed, ok := ParseTileType("Lava"); ok || parsed != TileUnknown {
		t.Errorf("ParseTileType(\"Lava\") = (%v, %v), want (Unknown, false)", parsed, ok)
	}
}

// TestIsStructure 测试结构类瓦片判定
func TestIsStructure(t *testing.T) {
	structures := map[TileType]bool{TileTree: true, TileBuilding: true}
	for _, tileType := range AllTileTypes() {
		if got := tileType.IsStructure(); got != structures[tileType] {
			t.Errorf("%v.IsStructure() = %v, want %v", tileType, got, structures[tileType])
		}
	}
}

// TestAllTileTypes 测试有效类型列表不含 Unknown 且无重复
func TestAllTileTypes(t *testing.T) {
	seen := make(map[TileType]bool)
	for _, tileType := range AllTileTypes() {
		if tileType == TileUnknown {
			t.Error("AllTileTypes() 不应包含 TileUnknown")
		}
		if seen[tileType] {
			t.Errorf("AllTileTypes() 包含重复类型 %v", tileType)
		}
		seen[tileType] = true
	}
	if len(seen) != 8 {
		t.Errorf("有效瓦片类型数 = %d, want 8", len(seen))
	}
}

package editor

import (
	"testing"

	"github.com/gonewx/isoedit/pkg/types"
)

// TestTileTypeSetBasicOps 测试集合的基本操作
func TestTileTypeSetBasicOps(t *testing.T) {
	s := NewTileTypeSet(types.TileWater)

	if !s.Has(types.TileWater) {
		t.Error("Has(Water) = false, want true")
	}
	if s.Has(types.TileGrass) {
		t.Error("Has(Grass) = true, want false")
	}

	s.Add(types.TileTree)
	if !s.Has(types.TileTree) {
		t.Error("Add 后 Has(Tree) = false, want true")
	}

	s.Remove(types.TileWater)
	if s.Has(types.TileWater) {
		t.Error("Remove 后 Has(Water) = true, want false")
	}
}

// TestTileTypeSetNil 测试 nil 集合视为空集合
func TestTileTypeSetNil(t *testing.T) {
	var s TileTypeSet
	for _, tileType := range types.AllTileTypes() {
		if s.Has(tileType) {
			t.Errorf("nil 集合 Has(%v) = true, want false", tileType)
		}
	}
}

// TestTileTypeSetToggle 测试成员状态切换
func TestTileTypeSetToggle(t *testing.T) {
	s := NewTileTypeSet()

	if got := s.Toggle(types.TileRoad); !got {
		t.Error("第一次 Toggle 应返回 true（加入集合）")
	}
	if got := s.Toggle(types.TileRoad); got {
		t.Error("第二次 Toggle 应返回 false（移出集合）")
	}
	if s.Has(types.TileRoad) {
		t.Error("两次 Toggle 后集合应不包含 Road")
	}
}

// TestTileTypeSetClone 测试副本独立性
func TestTileTypeSetClone(t *testing.T) {
	s := NewTileTypeSet(types.TileWater, types.TileTree)
	clone := s.Clone()

	clone.Add(types.TileBuilding)
	clone.Remove(types.TileWater)

	if s.Has(types.TileBuilding) {
		t.Error("修改副本不应影响原集合 (Building)")
	}
	if !s.Has(types.TileWater) {
		t.Error("修改副本不应影响原集合 (Water)")
	}
}

// TestTileTypeSetString 测试字符串表示按类型名排序
func TestTileTypeSetString(t *testing.T) {
	s := NewTileTypeSet(types.TileWater, types.TileBuilding)
	if got, want := s.String(), "{Building, Water}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty := NewTileTypeSet()
	if got, want := empty.String(), "{}"; got != want {
		t.Errorf("空集合 String() = %q, want %q", got, want)
	}
}

package utils

import (
	"testing"

	"github.com/gonewx/isoedit/pkg/config"
)

// TestGridToWorldCoords 测试网格坐标到世界坐标的等距投影
func TestGridToWorldCoords(t *testing.T) {
	tests := []struct {
		name       string
		col, row   int
		wantX      float64
		wantY      float64
	}{
		{"原点格子", 0, 0, config.OriginX, config.OriginY},
		{"向右一列", 1, 0, config.OriginX + config.TileWidth/2, config.OriginY + config.TileHeight/2},
		{"向下一行", 0, 1, config.OriginX - config.TileWidth/2, config.OriginY + config.TileHeight/2},
		{"对角线格子", 3, 3, config.OriginX, config.OriginY + 3*config.TileHeight},
		{"负方向越界格子", -2, -2, config.OriginX, config.OriginY - 2*config.TileHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := GridToWorldCoords(tt.col, tt.row)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("GridToWorldCoords(%d, %d) = (%v, %v), want (%v, %v)",
					tt.col, tt.row, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestScreenToGridRoundTrip 测试投影往返：
// 每个格子中心的屏幕坐标换算回网格坐标必须得到原格子
func TestScreenToGridRoundTrip(t *testing.T) {
	const mapWidth, mapHeight = 16, 12

	cameras := []struct {
		name             string
		cameraX, cameraY float64
	}{
		{"无摄像机偏移", 0, 0},
		{"正偏移", 123, 45},
		{"负偏移", -300, -77.5},
	}

	for _, cam := range cameras {
		t.Run(cam.name, func(t *testing.T) {
			for row := 0; row < mapHeight; row++ {
				for col := 0; col < mapWidth; col++ {
					centerX, centerY := GridToScreenCoords(col, row, cam.cameraX, cam.cameraY)

					gotCol, gotRow, inBounds := ScreenToGridCoords(int(centerX), int(centerY), cam.cameraX, cam.cameraY, mapWidth, mapHeight)
					if gotCol != col || gotRow != row {
						t.Fatalf("往返失败: 格子 (%d,%d) 中心 (%v,%v) 换算回 (%d,%d)",
							col, row, centerX, centerY, gotCol, gotRow)
					}
					if !inBounds {
						t.Fatalf("格子 (%d,%d) 中心被判定为图外", col, row)
					}
				}
			}
		})
	}
}

// TestScreenToGridOutOfBounds 测试图外屏幕点的越界报告
// 返回的网格坐标仍是连续的计算值（调用方可钳制），inBounds 为 false
func TestScreenToGridOutOfBounds(t *testing.T) {
	const mapWidth, mapHeight = 8, 8

	tests := []struct {
		name             string
		screenX, screenY int
	}{
		{"地图原点上方", int(config.OriginX), int(config.OriginY) - 200},
		{"地图左侧远处", int(config.OriginX) - 2000, int(config.OriginY) + 100},
		{"地图下方远处", int(config.OriginX), int(config.OriginY) + 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, inBounds := ScreenToGridCoords(tt.screenX, tt.screenY, 0, 0, mapWidth, mapHeight)
			if inBounds {
				t.Errorf("屏幕点 (%d,%d) 应判定为图外", tt.screenX, tt.screenY)
			}
		})
	}
}

// TestScreenToGridNegativeRegion 测试负象限的取整方向
// math.Floor 保证原点上方/左侧的点落入负数格子而不是格子 0
func TestScreenToGridNegativeRegion(t *testing.T) {
	// 格子 (-1,-1) 的中心
	centerX, centerY := GridToScreenCoords(-1, -1, 0, 0)

	col, row, inBounds := ScreenToGridCoords(int(centerX), int(centerY), 0, 0, 8, 8)
	if col != -1 || row != -1 {
		t.Errorf("负象限格子中心换算为 (%d,%d), want (-1,-1)", col, row)
	}
	if inBounds {
		t.Error("负象限格子不应判定为图内")
	}
}

// TestMapWorldBounds 测试地图包围盒
func TestMapWorldBounds(t *testing.T) {
	minX, minY, maxX, maxY := MapWorldBounds(10, 6)

	if wantMinX := config.OriginX - 6*config.TileWidth/2; minX != wantMinX {
		t.Errorf("minX = %v, want %v", minX, wantMinX)
	}
	if wantMaxX := config.OriginX + 10*config.TileWidth/2; maxX != wantMaxX {
		t.Errorf("maxX = %v, want %v", maxX, wantMaxX)
	}
	if minY != config.OriginY {
		t.Errorf("minY = %v, want %v", minY, config.OriginY)
	}
	if wantMaxY := config.OriginY + 16*config.TileHeight/2; maxY != wantMaxY {
		t.Errorf("maxY = %v, want %v", maxY, wantMaxY)
	}
}

// TestClamp 测试区间钳制
func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

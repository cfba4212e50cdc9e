package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/isoedit/pkg/types"
)

// writeTempTileset 把 YAML 内容写入临时文件并返回路径
func writeTempTileset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tileset.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入临时瓦片集失败: %v", err)
	}
	return path
}

// TestLoadTilesetConfig 测试正常加载瓦片集配置
func TestLoadTilesetConfig(t *testing.T) {
	path := writeTempTileset(t, `
version: "1.0"
tiles:
  - type: Grass
    name: 草地
    color: "#4CAF50"
    category: terrain
  - type: Water
    name: 水面
    color: "#42A5F5"
    category: terrain
  - type: Building
    name: 建筑
    color: "#795548"
    category: structure
`)

	ts, err := LoadTilesetConfig(path)
	if err != nil {
		t.Fatalf("LoadTilesetConfig() error: %v", err)
	}

	grass := ts.Style(types.TileGrass)
	if grass.Name != "草地" {
		t.Errorf("Grass 显示名称 = %q, want 草地", grass.Name)
	}
	if grass.R != 0x4C || grass.G != 0xAF || grass.B != 0x50 {
		t.Errorf("Grass 颜色 = (%02X,%02X,%02X), want (4C,AF,50)", grass.R, grass.G, grass.B)
	}

	// 未覆盖的类型
	missing := ts.Covers()
	if len(missing) != len(types.AllTileTypes())-3 {
		t.Errorf("Covers() 返回 %d 个缺失类型, want %d: %v", len(missing), len(types.AllTileTypes())-3, missing)
	}
}

// TestLoadTilesetConfigErrors 测试非法配置的错误处理
func TestLoadTilesetConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"未知瓦片类型", `
tiles:
  - type: Lava
    name: 岩浆
    color: "#FF0000"
`},
		{"重复定义", `
tiles:
  - type: Grass
    name: a
    color: "#000000"
  - type: Grass
    name: b
    color: "#FFFFFF"
`},
		{"非法颜色格式", `
tiles:
  - type: Grass
    name: 草地
    color: "green"
`},
		{"非法 YAML", "tiles: [}{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempTileset(t, tt.content)
			if _, err := LoadTilesetConfig(path); err == nil {
				t.Error("LoadTilesetConfig() 应返回错误")
			}
		})
	}
}

// TestLoadTilesetConfigMissingFile 测试文件不存在
func TestLoadTilesetConfigMissingFile(t *testing.T) {
	if _, err := LoadTilesetConfig(filepath.Join(t.TempDir(), "no_such.yaml")); err == nil {
		t.Error("加载不存在的文件应返回错误")
	}
}

// TestDefaultTileset 测试内置瓦片集覆盖所有有效类型
func TestDefaultTileset(t *testing.T) {
	ts := DefaultTileset()

	if missing := ts.Covers(); len(missing) != 0 {
		t.Errorf("内置瓦片集缺少类型: %v", missing)
	}

	// 未定义类型的兜底样式（品红）
	unknown := ts.Style(types.TileUnknown)
	if unknown.R != 0xFF || unknown.G != 0x00 || unknown.B != 0xFF {
		t.Errorf("兜底样式颜色 = (%02X,%02X,%02X), want (FF,00,FF)", unknown.R, unknown.G, unknown.B)
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	r, g, b, err := parseHexColor("#1A2B3C")
	if err != nil {
		t.Fatalf("parseHexColor() error: %v", err)
	}
	if r != 0x1A || g != 0x2B || b != 0x3C {
		t.Errorf("parseHexColor() = (%02X,%02X,%02X), want (1A,2B,3C)", r, g, b)
	}

	for _, bad := range []string{"", "#FFF", "123456", "#GGHHII"} {
		if _, _, _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) 应返回错误", bad)
		}
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/gonewx/isoedit/pkg/types"
	"gopkg.in/yaml.v3"
)

// TilesetConfig 瓦片集配置
// 定义每种瓦片类型的显示名称、填充颜色和类别，
// 从 assets/config/tileset.yaml 加载
//
// 文件结构：
//
//	version: "1.0"
//	tiles:
//	  - type: Grass
//	    name: 草地
//	    color: "#4CAF50"
//	    category: terrain
type TilesetConfig struct {
	Version string      `yaml:"version"` // 配置文件版本
	Tiles   []TileEntry `yaml:"tiles"`   // 瓦片定义列表
}

// TileEntry 单个瓦片类型的定义
type TileEntry struct {
	Type     string `yaml:"type"`     // 瓦片类型名，必须能被 types.ParseTileType 识别
	Name     string `yaml:"name"`     // 显示名称
	Color    string `yaml:"color"`    // 填充颜色，"#RRGGBB" 格式
	Category string `yaml:"category"` // 类别: terrain 或 structure
}

// TileStyle 解析后的单个瓦片样式
type TileStyle struct {
	Name    string // 显示名称
	R, G, B uint8  // 填充颜色
}

// Tileset 解析并校验后的瓦片集，按类型索引
type Tileset struct {
	styles map[types.TileType]TileStyle
}

// LoadTilesetConfig 从 YAML 文件加载瓦片集配置
//
// 参数：
//   - path: 配置文件路径（如 "assets/config/tileset.yaml"）
//
// 返回：
//   - *Tileset: 解析后的瓦片集
//   - error: 文件不存在、YAML 非法或条目校验失败时返回错误
func LoadTilesetConfig(path string) (*Tileset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取瓦片集配置失败: %w", err)
	}

	var cfg TilesetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析瓦片集配置失败: %w", err)
	}

	return buildTileset(&cfg)
}

// buildTileset 校验配置条目并构建 Tileset
func buildTileset(cfg *TilesetConfig) (*Tileset, error) {
	ts := &Tileset{styles: make(map[types.TileType]TileStyle)}

	for i, entry := range cfg.Tiles {
		tileType, ok := types.ParseTileType(entry.Type)
		if !ok {
			return nil, fmt.Errorf("瓦片集条目 %d: 未知瓦片类型 %q", i, entry.Type)
		}
		if _, dup := ts.styles[tileType]; dup {
			return nil, fmt.Errorf("瓦片集条目 %d: 瓦片类型 %q 重复定义", i, entry.Type)
		}

		r, g, b, err := parseHexColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("瓦片集条目 %d (%s): %w", i, entry.Type, err)
		}

		ts.styles[tileType] = TileStyle{Name: entry.Name, R: r, G: g, B: b}
	}

	return ts, nil
}

// DefaultTileset 返回内置瓦片集
// 配置文件缺失时的降级方案，覆盖所有有效瓦片类型
func DefaultTileset() *Tileset {
	return &Tileset{styles: map[types.TileType]TileStyle{
		types.TileGrass:    {Name: "草地", R: 0x4C, G: 0xAF, B: 0x50},
		types.TileDirt:     {Name: "泥土", R: 0x8D, G: 0x6E, B: 0x63},
		types.TileSand:     {Name: "沙地", R: 0xE6, G: 0xD6, B: 0x90},
		types.TileWater:    {Name: "水面", R: 0x42, G: 0xA5, B: 0xF5},
		types.TileStone:    {Name: "石地", R: 0x90, G: 0xA4, B: 0xAE},
		types.TileRoad:     {Name: "道路", R: 0x61, G: 0x61, B: 0x61},
		types.TileTree:     {Name: "树木", R: 0x2E, G: 0x7D, B: 0x32},
		types.TileBuilding: {Name: "建筑", R: 0x79, G: 0x55, B: 0x48},
	}}
}

// Style 返回指定瓦片类型的样式
// 未定义的类型返回醒目的品红色，便于在画面上发现配置缺口
func (ts *Tileset) Style(t types.TileType) TileStyle {
	if style, ok := ts.styles[t]; ok {
		return style
	}
	return TileStyle{Name: t.String(), R: 0xFF, G: 0x00, B: 0xFF}
}

// Covers 检查瓦片集是否覆盖所有有效瓦片类型
// 返回缺失的类型列表，全覆盖时为空
func (ts *Tileset) Covers() []types.TileType {
	var missing []types.TileType
	for _, t := range types.AllTileTypes() {
		if _, ok := ts.styles[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// parseHexColor 解析 "#RRGGBB" 格式的颜色字符串
func parseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("非法颜色格式 %q (应为 #RRGGBB)", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("非法颜色格式 %q: %w", s, err)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}

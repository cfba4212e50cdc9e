// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TileType 定义地图瓦片的类型
type TileType int

const (
	// TileUnknown 未知瓦片类型
	TileUnknown TileType = iota
	// TileGrass 草地
	TileGrass
	// TileDirt 泥土
	TileDirt
	// TileSand 沙地
	TileSand
	// TileWater 水面
	TileWater
	// TileStone 石地
	TileStone
	// TileRoad 道路
	TileRoad
	// TileTree 树木
	TileTree
	// TileBuilding 建筑
	TileBuilding
)

// String 返回瓦片类型的字符串表示
func (t TileType) String() string {
	switch t {
	case TileGrass:
		return "Grass"
	case TileDirt:
		return "Dirt"
	case TileSand:
		return "Sand"
	case TileWater:
		return "Water"
	case TileStone:
		return "Stone"
	case TileRoad:
		return "Road"
	case TileTree:
		return "Tree"
	case TileBuilding:
		return "Building"
	default:
		return "Unknown"
	}
}

// IsStructure 返回该类型是否属于结构类瓦片（非地形）
// 结构类瓦片通常作为排除规则的默认成员（例如批量刷地形时跳过建筑）
func (t TileType) IsStructure() bool {
	switch t {
	case TileTree, TileBuilding:
		return true
	default:
		return false
	}
}

// AllTileTypes 返回所有有效瓦片类型（不含 TileUnknown）
// 顺序与枚举声明一致，供配置校验和编辑器调色板使用
func AllTileTypes() []TileType {
	return []TileType{
		TileGrass,
		TileDirt,
		TileSand,
		TileWater,
		TileStone,
		TileRoad,
		TileTree,
		TileBuilding,
	}
}

// ParseTileType 将字符串解析为瓦片类型
// 无法识别的字符串返回 TileUnknown 和 false
func ParseTileType(s string) (TileType, bool) {
	switch s {
	case "Grass":
		return TileGrass, true
	case "Dirt":
		return TileDirt, true
	case "Sand":
		return TileSand, true
	case "Water":
		return TileWater, true
	case "Stone":
		return TileStone, true
	case "Road":
		return TileRoad, true
	case "Tree":
		return TileTree, true
	case "Building":
		return TileBuilding, true
	default:
		return TileUnknown, false
	}
}

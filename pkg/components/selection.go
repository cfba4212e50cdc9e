package components

import "fmt"

// TileClassification 表示单个瓦片在当前选区中的分类
// 三值枚举，避免用两个布尔值编码出非法组合
type TileClassification int

const (
	// TileUnselected 不在选区内
	TileUnselected TileClassification = iota
	// TileSelected 在选区内且可参与编辑（计入 EligibleCount）
	TileSelected
	// TileIneligible 在选区内但因排除规则不可编辑（不计入 EligibleCount）
	TileIneligible
)

// String 返回分类的字符串表示
func (c TileClassification) String() string {
	switch c {
	case TileUnselected:
		return "Unselected"
	case TileSelected:
		return "Selected"
	case TileIneligible:
		return "Ineligible"
	default:
		return fmt.Sprintf("TileClassification(%d)", int(c))
	}
}

// SelectionComponent 存储地图的矩形选区状态
// 与 TileMapComponent 挂在同一个地图实体上，生命周期一致
//
// 不变式: EligibleCount 恒等于 Classification 中 TileSelected 的数量，
// 每次 Select/Clear 操作结束后都必须成立
type SelectionComponent struct {
	// Classification 每个格子的选区分类，索引与 TileMapComponent.Tiles 一致
	Classification []TileClassification

	// EligibleCount 当前分类为 TileSelected 的格子数量
	EligibleCount int
}

// NewSelectionComponent 创建与地图尺寸匹配的选区组件
// 所有格子初始为 TileUnselected，EligibleCount 为 0
//
// 尺寸非法属于程序错误（选区数组必须与 width*height 严格一致），
// 直接 panic 而不是返回可恢复错误
func NewSelectionComponent(width, height int) *SelectionComponent {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("selection: invalid grid size %dx%d", width, height))
	}
	return &SelectionComponent{
		Classification: make([]TileClassification, width*height),
	}
}

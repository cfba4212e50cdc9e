package components

import "github.com/gonewx/isoedit/pkg/types"

// TileMapComponent 存储地图的瓦片数据
// 每个格子保存一个瓦片类型，按行优先顺序平铺:
//
//	index = row*Width + col
//
// 选区状态（SelectionComponent）只通过 TypeAt 查询瓦片类型，
// 不持有瓦片数据本身
type TileMapComponent struct {
	Width  int              // 地图列数
	Height int              // 地图行数
	Tiles  []types.TileType // 瓦片类型，长度恒为 Width*Height
}

// TileCount 返回地图的瓦片总数
func (m *TileMapComponent) TileCount() int {
	return m.Width * m.Height
}

// InBounds 检查网格坐标是否落在地图内
func (m *TileMapComponent) InBounds(col, row int) bool {
	return col >= 0 && col < m.Width && row >= 0 && row < m.Height
}

// TypeAt 返回指定格子的瓦片类型
// 越界坐标返回 TileUnknown
func (m *TileMapComponent) TypeAt(col, row int) types.TileType {
	if !m.InBounds(col, row) {
		return types.TileUnknown
	}
	return m.Tiles[row*m.Width+col]
}

// SetTypeAt 设置指定格子的瓦片类型
// 越界坐标直接忽略
func (m *TileMapComponent) SetTypeAt(col, row int, t types.TileType) {
	if !m.InBounds(col, row) {
		return
	}
	m.Tiles[row*m.Width+col] = t
}

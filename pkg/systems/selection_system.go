package systems

import (
	"log"

	"github.com/gonewx/isoedit/pkg/components"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/types"
)

// SelectionSystem 管理地图的矩形选区状态
// 负责根据选区矩形和排除规则重算每个格子的分类，
// 并维护可编辑格子计数（EligibleCount）的不变式
//
// 操作约定：
//   - 拖拽过程中每次输入更新都先 Clear 再 Select，选区从干净状态重算
//   - Select 本身是增量的：只改写矩形内的格子，矩形外保持原分类
type SelectionSystem struct {
	entityManager *ecs.EntityManager
}

// NewSelectionSystem 创建选区系统
func NewSelectionSystem(em *ecs.EntityManager) *SelectionSystem {
	return &SelectionSystem{entityManager: em}
}

// Select 将矩形区域内的格子标记为选中，并应用排除规则
//
// 参数:
//   - mapEntity: 地图实体ID（需同时挂载 TileMapComponent 和 SelectionComponent）
//   - startCol, startRow: 矩形一角的网格坐标，任意整数，无范围前提
//   - endCol, endRow: 矩形另一角的网格坐标，任意整数，无范围前提
//   - exclusion: 排除规则，集合内类型的格子标记为不可编辑；可为 nil（不排除任何类型）
//
// 两个角点不要求有序：先按轴归一化（start <= end），再逐坐标钳制到地图范围内。
// 完全在地图外的矩形会塌缩到边缘的单个格子/行/列，绝不报错，
// 也绝不产生越界的瓦片索引
//
// 矩形内每个格子独立重算分类：
//   - 类型在排除集合中 → TileIneligible，不计入 EligibleCount
//   - 否则 → TileSelected，计入 EligibleCount
//
// 格子之间没有顺序依赖，同一次调用中任何格子的分类不取决于其他格子
func (s *SelectionSystem) Select(mapEntity ecs.EntityID, startCol, startRow, endCol, endRow int, exclusion editor.TileTypeSet) {
	grid, sel, ok := s.getMapComponents(mapEntity)
	if !ok {
		return
	}

	// 归一化：保证 start <= end（逐轴）
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}

	// 逐坐标钳制到 [0, width-1] / [0, height-1]
	startCol = clampInt(startCol, 0, grid.Width-1)
	endCol = clampInt(endCol, 0, grid.Width-1)
	startRow = clampInt(startRow, 0, grid.Height-1)
	endRow = clampInt(endRow, 0, grid.Height-1)

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			idx := row*grid.Width + col

			// 先撤销该格子之前对计数的贡献，再重新分类
			if sel.Classification[idx] == components.TileSelected {
				sel.EligibleCount--
			}

			if exclusion.Has(grid.TypeAt(col, row)) {
				sel.Classification[idx] = components.TileIneligible
			} else {
				sel.Classification[idx] = components.TileSelected
				sel.EligibleCount++
			}
		}
	}
}

// Clear 清空整个选区
// 所有格子恢复为 TileUnselected，EligibleCount 归零，无条件覆盖全图
func (s *SelectionSystem) Clear(mapEntity ecs.EntityID) {
	_, sel, ok := s.getMapComponents(mapEntity)
	if !ok {
		return
	}

	for i := range sel.Classification {
		sel.Classification[i] = components.TileUnselected
	}
	sel.EligibleCount = 0
}

// ClassificationAt 返回指定格子的选区分类（渲染层只读访问）
// 越界坐标返回 TileUnselected
func (s *SelectionSystem) ClassificationAt(mapEntity ecs.EntityID, col, row int) components.TileClassification {
	grid, sel, ok := s.getMapComponents(mapEntity)
	if !ok || !grid.InBounds(col, row) {
		return components.TileUnselected
	}
	return sel.Classification[row*grid.Width+col]
}

// EligibleCount 返回当前分类为 TileSelected 的格子数量
func (s *SelectionSystem) EligibleCount(mapEntity ecs.EntityID) int {
	_, sel, ok := s.getMapComponents(mapEntity)
	if !ok {
		return 0
	}
	return sel.EligibleCount
}

// PaintSelected 将所有 TileSelected 格子的瓦片类型改写为笔刷类型
//
// TileIneligible 和 TileUnselected 的格子不受影响。
// 选区分类保持不变：下一次输入更新会按约定先 Clear 再 Select，
// 在这里重算分类属于无效功
//
// 返回:
//   - int: 实际改写的格子数量（等于调用时的 EligibleCount）
func (s *SelectionSystem) PaintSelected(mapEntity ecs.EntityID, brush types.TileType) int {
	grid, sel, ok := s.getMapComponents(mapEntity)
	if !ok {
		return 0
	}

	painted := 0
	for idx, c := range sel.Classification {
		if c != components.TileSelected {
			continue
		}
		grid.Tiles[idx] = brush
		painted++
	}

	if painted > 0 {
		log.Printf("[SelectionSystem] 批量改写 %d 个格子为 %s", painted, brush)
	}
	return painted
}

// getMapComponents 获取地图实体上的瓦片与选区组件
// 组件缺失或选区数组尺寸与地图不符时返回 false（防御，正常流程不会发生）
func (s *SelectionSystem) getMapComponents(mapEntity ecs.EntityID) (*components.TileMapComponent, *components.SelectionComponent, bool) {
	grid, ok := ecs.GetComponent[*components.TileMapComponent](s.entityManager, mapEntity)
	if !ok {
		log.Printf("[SelectionSystem] 实体 %d 缺少 TileMapComponent", mapEntity)
		return nil, nil, false
	}
	sel, ok := ecs.GetComponent[*components.SelectionComponent](s.entityManager, mapEntity)
	if !ok {
		log.Printf("[SelectionSystem] 实体 %d 缺少 SelectionComponent", mapEntity)
		return nil, nil, false
	}
	if len(sel.Classification) != grid.TileCount() {
		log.Printf("[SelectionSystem] 选区数组长度 %d 与地图尺寸 %dx%d 不匹配", len(sel.Classification), grid.Width, grid.Height)
		return nil, nil, false
	}
	return grid, sel, true
}

// clampInt 把 v 钳制到闭区间 [lo, hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package editor

import "github.com/gonewx/isoedit/pkg/types"

// EditorState 存储全局编辑器状态
// 这是一个单例，用于管理跨系统共享的编辑器状态数据
type EditorState struct {
	// BrushType 当前笔刷瓦片类型，批量编辑选区时写入
	BrushType types.TileType

	// Exclusion 当前排除规则：集合内的瓦片类型在选区中标记为不可编辑
	Exclusion TileTypeSet

	// CurrentMapName 当前编辑的地图名称（用于保存）
	CurrentMapName string

	// Dirty 地图自上次保存后是否被修改过
	Dirty bool
}

// 全局单例实例
var globalEditorState *EditorState

// GetEditorState 返回全局 EditorState 单例
// 使用延迟初始化模式，确保整个编辑器生命周期只有一个实例
func GetEditorState() *EditorState {
	if globalEditorState == nil {
		globalEditorState = &EditorState{
			BrushType: types.TileGrass,
			// 默认排除结构类瓦片：刷地形时不应覆盖树木和建筑
			Exclusion:      NewTileTypeSet(types.TileTree, types.TileBuilding),
			CurrentMapName: "untitled",
		}
	}
	return globalEditorState
}

// ResetEditorState 重置全局单例（仅测试使用）
func ResetEditorState() {
	globalEditorState = nil
}

// SetBrush 设置当前笔刷瓦片类型
func (es *EditorState) SetBrush(t types.TileType) {
	es.BrushType = t
}

// ToggleExclusion 切换排除规则中某个类型的成员状态
// 返回切换后该类型是否在排除集合中
func (es *EditorState) ToggleExclusion(t types.TileType) bool {
	return es.Exclusion.Toggle(t)
}

// MarkDirty 标记地图已修改
func (es *EditorState) MarkDirty() {
	es.Dirty = true
}

// MarkSaved 标记地图已保存
func (es *EditorState) MarkSaved() {
	es.Dirty = false
}

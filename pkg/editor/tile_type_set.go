package editor

import (
	"sort"
	"strings"

	"github.com/gonewx/isoedit/pkg/types"
)

// TileTypeSet 瓦片类型的无序集合
// 作为选区操作的排除规则：集合内的类型在选区中一律标记为不可编辑
type TileTypeSet map[types.TileType]struct{}

// NewTileTypeSet 创建包含指定类型的集合
func NewTileTypeSet(tileTypes ...types.TileType) TileTypeSet {
	s := make(TileTypeSet, len(tileTypes))
	for _, t := range tileTypes {
		s[t] = struct{}{}
	}
	return s
}

// Has 检查类型是否在集合中
// nil 集合视为空集合，任何类型都不在其中
func (s TileTypeSet) Has(t types.TileType) bool {
	_, ok := s[t]
	return ok
}

// Add 将类型加入集合
func (s TileTypeSet) Add(t types.TileType) {
	s[t] = struct{}{}
}

// Remove 将类型移出集合
func (s TileTypeSet) Remove(t types.TileType) {
	delete(s, t)
}

// Toggle 切换类型的成员状态，返回切换后是否在集合中
func (s TileTypeSet) Toggle(t types.TileType) bool {
	if s.Has(t) {
		delete(s, t)
		return false
	}
	s[t] = struct{}{}
	return true
}

// Clone 返回集合的独立副本
func (s TileTypeSet) Clone() TileTypeSet {
	clone := make(TileTypeSet, len(s))
	for t := range s {
		clone[t] = struct{}{}
	}
	return clone
}

// String 返回集合的字符串表示（按类型名排序，便于日志输出）
func (s TileTypeSet) String() string {
	names := make([]string, 0, len(s))
	for t := range s {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}

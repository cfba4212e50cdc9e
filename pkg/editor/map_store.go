package editor

import (
	"fmt"
	"log"
	"sort"

	"github.com/gonewx/isoedit/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MapData 地图存档数据结构
//
// 序列化为 YAML 后通过 gdata 持久化。
// 只保存瓦片数据，选区状态是临时的，不参与存档
type MapData struct {
	Name   string `yaml:"name"`   // 地图名称
	Width  int    `yaml:"width"`  // 列数
	Height int    `yaml:"height"` // 行数
	Tiles  []int  `yaml:"tiles"`  // 瓦片类型，行优先，长度必须等于 width*height
}

// Validate 校验存档数据的完整性
func (md *MapData) Validate() error {
	if md.Width <= 0 || md.Height <= 0 {
		return fmt.Errorf("非法地图尺寸 %dx%d", md.Width, md.Height)
	}
	if len(md.Tiles) != md.Width*md.Height {
		return fmt.Errorf("瓦片数量 %d 与地图尺寸 %dx%d 不匹配", len(md.Tiles), md.Width, md.Height)
	}
	return nil
}

// TileTypes 将存档中的整数瓦片值转换为 TileType 切片
// 未知值归一化为 TileUnknown
func (md *MapData) TileTypes() []types.TileType {
	tiles := make([]types.TileType, len(md.Tiles))
	for i, v := range md.Tiles {
		t := types.TileType(v)
		if t.String() == "Unknown" {
			t = types.TileUnknown
		}
		tiles[i] = t
	}
	return tiles
}

// MapStore 地图存储管理器
//
// 职责：
//   - 地图的保存、加载和列表
//   - 维护地图名称索引（gdata 没有目录遍历概念，用索引属性代替）
//
// 架构说明：
//   - 数据通过 gdata 跨平台持久化，载荷为 YAML（与项目配置格式保持一致）
//   - gdataManager 为 nil 时进入降级模式：保存为空操作，加载返回不存在
type MapStore struct {
	gdataManager *gdata.Manager
}

// 存储路径常量
const (
	mapsObject   = "maps"
	mapIndexProp = "_index"
)

// mapIndex 地图名称索引的 YAML 载荷
type mapIndex struct {
	Names []string `yaml:"names"`
}

// NewMapStore 创建地图存储管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存编辑）
func NewMapStore(gdataManager *gdata.Manager) *MapStore {
	if gdataManager == nil {
		log.Printf("[MapStore] Warning: 无持久化存储，地图保存功能不可用")
	}
	return &MapStore{gdataManager: gdataManager}
}

// Exists 检查指定名称的地图是否已保存
func (ms *MapStore) Exists(name string) bool {
	if ms.gdataManager == nil {
		return false
	}
	return ms.gdataManager.ObjectPropExists(mapsObject, mapProp(name))
}

// Save 保存地图
//
// 参数：
//   - data: 地图数据，保存前会执行完整性校验
//
// 返回：
//   - error: 校验、序列化或写入失败时返回错误；降级模式下静默成功
func (ms *MapStore) Save(data *MapData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("地图数据校验失败: %w", err)
	}
	if data.Name == "" {
		return fmt.Errorf("地图名称不能为空")
	}

	// 降级模式：无法持久化，但不报错
	if ms.gdataManager == nil {
		return nil
	}

	payload, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化地图失败: %w", err)
	}

	if err := ms.gdataManager.SaveObjectProp(mapsObject, mapProp(data.Name), payload); err != nil {
		return fmt.Errorf("保存地图失败: %w", err)
	}

	if err := ms.addToIndex(data.Name); err != nil {
		return fmt.Errorf("更新地图索引失败: %w", err)
	}

	log.Printf("[MapStore] 地图已保存: %s (%dx%d)", data.Name, data.Width, data.Height)
	return nil
}

// Load 加载指定名称的地图
//
// 返回：
//   - *MapData: 地图数据，通过完整性校验
//   - error: 地图不存在、读取或反序列化失败时返回错误
func (ms *MapStore) Load(name string) (*MapData, error) {
	if ms.gdataManager == nil {
		return nil, fmt.Errorf("地图 %q 不存在（降级模式）", name)
	}
	if !ms.gdataManager.ObjectPropExists(mapsObject, mapProp(name)) {
		return nil, fmt.Errorf("地图 %q 不存在", name)
	}

	payload, err := ms.gdataManager.LoadObjectProp(mapsObject, mapProp(name))
	if err != nil {
		return nil, fmt.Errorf("读取地图失败: %w", err)
	}

	var data MapData
	if err := yaml.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("解析地图失败: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("地图 %q 数据损坏: %w", name, err)
	}

	log.Printf("[MapStore] 地图已加载: %s (%dx%d)", data.Name, data.Width, data.Height)
	return &data, nil
}

// List 返回所有已保存地图的名称（按字典序）
func (ms *MapStore) List() []string {
	if ms.gdataManager == nil {
		return nil
	}
	idx := ms.loadIndex()
	names := append([]string(nil), idx.Names...)
	sort.Strings(names)
	return names
}

// addToIndex 将地图名称加入索引（已存在则不变）
func (ms *MapStore) addToIndex(name string) error {
	idx := ms.loadIndex()
	for _, n := range idx.Names {
		if n == name {
			return nil
		}
	}
	idx.Names = append(idx.Names, name)

	payload, err := yaml.Marshal(idx)
	if err != nil {
		return err
	}
	return ms.gdataManager.SaveObjectProp(mapsObject, mapIndexProp, payload)
}

// loadIndex 读取地图名称索引，不存在或损坏时返回空索引
func (ms *MapStore) loadIndex() *mapIndex {
	idx := &mapIndex{}
	if !ms.gdataManager.ObjectPropExists(mapsObject, mapIndexProp) {
		return idx
	}
	payload, err := ms.gdataManager.LoadObjectProp(mapsObject, mapIndexProp)
	if err != nil {
		log.Printf("[MapStore] Warning: 读取地图索引失败: %v", err)
		return idx
	}
	if err := yaml.Unmarshal(payload, idx); err != nil {
		log.Printf("[MapStore] Warning: 地图索引损坏: %v", err)
		return &mapIndex{}
	}
	return idx
}

// mapProp 返回地图名称对应的 gdata 属性名
func mapProp(name string) string {
	return "map_" + name
}

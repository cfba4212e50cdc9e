package entities

import (
	"fmt"

	"github.com/gonewx/isoedit/pkg/components"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/types"
)

// CreateTileMap 创建空白地图实体
// 实体上挂载 TileMapComponent 和与之尺寸匹配的 SelectionComponent，
// 所有格子填充为 fill 类型，选区为空
//
// 尺寸非法属于程序错误，直接 panic（由 NewSelectionComponent 保证）
func CreateTileMap(em *ecs.EntityManager, width, height int, fill types.TileType) ecs.EntityID {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tilemap: invalid map size %dx%d", width, height))
	}

	tiles := make([]types.TileType, width*height)
	for i := range tiles {
		tiles[i] = fill
	}

	entity := em.CreateEntity()
	em.AddComponent(entity, &components.TileMapComponent{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	})
	em.AddComponent(entity, components.NewSelectionComponent(width, height))
	return entity
}

// CreateTileMapFromData 从存档数据创建地图实体
//
// 返回:
//   - ecs.EntityID: 地图实体ID
//   - error: 存档数据校验失败时返回错误，不创建实体
func CreateTileMapFromData(em *ecs.EntityManager, data *editor.MapData) (ecs.EntityID, error) {
	if err := data.Validate(); err != nil {
		return 0, fmt.Errorf("无法从存档创建地图: %w", err)
	}

	entity := em.CreateEntity()
	em.AddComponent(entity, &components.TileMapComponent{
		Width:  data.Width,
		Height: data.Height,
		Tiles:  data.TileTypes(),
	})
	em.AddComponent(entity, components.NewSelectionComponent(data.Width, data.Height))
	return entity, nil
}

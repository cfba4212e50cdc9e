package scenes

import (
	"log"

	"github.com/gonewx/isoedit/pkg/config"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/entities"
	"github.com/gonewx/isoedit/pkg/systems"
	"github.com/gonewx/isoedit/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// EditorScene 地图编辑场景
// 持有地图实体和全部编辑器系统，按固定顺序驱动它们：
// 输入 → 摄像机钳制 → 渲染
type EditorScene struct {
	editorState *editor.EditorState
	mapStore    *editor.MapStore

	entityManager *ecs.EntityManager
	mapEntity     ecs.EntityID

	selectionSystem *systems.SelectionSystem
	inputSystem     *systems.InputSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem
}

// NewEditorScene 创建编辑场景
//
// 参数：
//   - store: 地图存储管理器
//   - tileset: 瓦片集（样式表）
//   - mapName: 要打开的地图名称；不存在时新建默认尺寸的空白地图
func NewEditorScene(store *editor.MapStore, tileset *config.Tileset, mapName string) *EditorScene {
	em := ecs.NewEntityManager()
	es := editor.GetEditorState()

	var mapEntity ecs.EntityID
	if store.Exists(mapName) {
		data, err := store.Load(mapName)
		if err == nil {
			if mapEntity, err = entities.CreateTileMapFromData(em, data); err == nil {
				log.Printf("[EditorScene] 打开地图: %s", mapName)
			}
		}
		if err != nil {
			log.Printf("[EditorScene] 加载地图 %q 失败: %v (新建空白地图)", mapName, err)
			mapEntity = 0
		}
	}
	if mapEntity == 0 {
		mapEntity = entities.CreateTileMap(em, config.DefaultMapWidth, config.DefaultMapHeight, types.TileGrass)
		log.Printf("[EditorScene] 新建空白地图: %s (%dx%d)", mapName, config.DefaultMapWidth, config.DefaultMapHeight)
	}
	es.CurrentMapName = mapName
	es.MarkSaved()

	selectionSystem := systems.NewSelectionSystem(em)
	cameraSystem := systems.NewCameraSystem(em, mapEntity)
	inputSystem := systems.NewInputSystem(em, selectionSystem, es, store, mapEntity, cameraSystem.CameraEntity())
	renderSystem := systems.NewRenderSystem(em, selectionSystem, inputSystem, es, tileset, mapEntity, cameraSystem.CameraEntity())

	return &EditorScene{
		editorState:     es,
		mapStore:        store,
		entityManager:   em,
		mapEntity:       mapEntity,
		selectionSystem: selectionSystem,
		inputSystem:     inputSystem,
		cameraSystem:    cameraSystem,
		renderSystem:    renderSystem,
	}
}

// MapEntity 返回地图实体ID（测试使用）
func (s *EditorScene) MapEntity() ecs.EntityID {
	return s.mapEntity
}

// Update 更新场景逻辑
func (s *EditorScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
}

// Draw 渲染场景
func (s *EditorScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// SaveOnExit 窗口关闭时保存未存盘的修改
// 实现 editor.Saveable 接口
func (s *EditorScene) SaveOnExit() bool {
	if !s.editorState.Dirty {
		return true
	}
	if err := s.inputSystem.SaveCurrentMap(); err != nil {
		log.Printf("[EditorScene] 退出保存失败: %v", err)
		return false
	}
	return true
}

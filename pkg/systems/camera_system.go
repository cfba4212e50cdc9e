package systems

import (
	"github.com/gonewx/isoedit/pkg/components"
	"github.com/gonewx/isoedit/pkg/config"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/utils"
)

// CameraSystem 管理摄像机的平移范围
// 输入系统直接修改摄像机偏移，本系统每帧把偏移钳制在
// 地图包围盒（外扩 CameraSlack）允许的范围内，防止把地图移出画面
type CameraSystem struct {
	entityManager *ecs.EntityManager
	mapEntity     ecs.EntityID
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建摄像机系统，并创建摄像机实体
func NewCameraSystem(em *ecs.EntityManager, mapEntity ecs.EntityID) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		mapEntity:     mapEntity,
	}

	cs.cameraEntity = em.CreateEntity()
	em.AddComponent(cs.cameraEntity, &components.CameraComponent{})

	return cs
}

// CameraEntity 返回摄像机实体ID
func (cs *CameraSystem) CameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Update 钳制摄像机偏移
func (cs *CameraSystem) Update(deltaTime float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	grid, ok := ecs.GetComponent[*components.TileMapComponent](cs.entityManager, cs.mapEntity)
	if !ok {
		return
	}

	minX, minY, maxX, maxY := utils.MapWorldBounds(grid.Width, grid.Height)

	// 允许的偏移范围：包围盒外扩 CameraSlack 后仍需与画布相交
	camera.X = utils.Clamp(camera.X,
		minX-config.CameraSlack,
		maxX+config.CameraSlack-config.ScreenWidth)
	camera.Y = utils.Clamp(camera.Y,
		minY-config.CameraSlack,
		maxY+config.CameraSlack-config.ScreenHeight)
}

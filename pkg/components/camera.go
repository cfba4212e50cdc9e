package components

// CameraComponent 存储摄像机在世界坐标系中的偏移
// 渲染和坐标转换统一通过该偏移把世界坐标换算成屏幕坐标:
//
//	screenX = worldX - X
//	screenY = worldY - Y
type CameraComponent struct {
	X float64 // 摄像机X偏移（世界坐标）
	Y float64 // 摄像机Y偏移（世界坐标）
}

package ecs

import "reflect"

// GetComponent 获取实体的特定类型组件（泛型版本）
// 类型参数 T 必须是组件的指针类型，例如:
//
//	grid, ok := ecs.GetComponent[*components.TileMapComponent](em, mapEntity)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var z1 T1
	return em.GetEntitiesWith(reflect.TypeOf(z1))
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	var z3 T3
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2), reflect.TypeOf(z3))
}

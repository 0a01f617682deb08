package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y     float64
	Rotation float64
}

type testToppleComponent struct {
	Threshold float64
	Toppled   bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 3, Y: 1.5, Rotation: 12})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 3 || retrieved.Y != 1.5 || retrieved.Rotation != 12 {
		t.Errorf("Component data mismatch, got %+v", retrieved)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testToppleComponent{Threshold: 30})

	topple, ok := GetComponent[*testToppleComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	if topple.Threshold != 30 {
		t.Errorf("Threshold = %f, want 30", topple.Threshold)
	}

	if _, ok := GetComponent[*testTransformComponent](em, id); ok {
		t.Error("generic GetComponent should not find a missing component")
	}

	if !HasComponent[*testToppleComponent](em, id) {
		t.Error("generic HasComponent should report true")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransformComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.Exists(id) {
		t.Error("Entity should not exist after cleanup")
	}
}

func TestDestroyEntityTwiceRunsHookOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	calls := 0
	em.AddDestroyHook(func(destroyed EntityID) {
		if destroyed != id {
			t.Errorf("hook got %d, want %d", destroyed, id)
		}
		calls++
	})

	// 生命周期到期与碰撞可能在同一帧标记同一实体
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if calls != 1 {
		t.Errorf("destroy hook called %d times, want 1", calls)
	}

	// 已删除实体再次标记不应生效
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if calls != 1 {
		t.Errorf("destroy hook called %d times after re-destroy, want 1", calls)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTransformComponent{})
	em.AddComponent(id1, &testToppleComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTransformComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testToppleComponent{})

	entities := GetEntitiesWith2[*testTransformComponent, *testToppleComponent](em)
	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 结果按ID升序
	transformEntities := GetEntitiesWith1[*testTransformComponent](em)
	if len(transformEntities) != 2 {
		t.Fatalf("Expected 2 entities with Transform component, got %d", len(transformEntities))
	}
	if transformEntities[0] != id1 || transformEntities[1] != id2 {
		t.Errorf("Expected ordered [%d %d], got %v", id1, id2, transformEntities)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testTransformComponent{})
	em.AddComponent(id2, &testTransformComponent{})
	em.AddComponent(id3, &testTransformComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.Exists(id1) || em.Exists(id3) {
		t.Error("id1 and id3 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", em.EntityCount())
	}
}

package physics

import (
	"math"
	"testing"

	"github.com/decker502/cannonbox/pkg/ecs"
)

// recordingListener 记录收到的碰撞事件
type recordingListener struct {
	events map[ecs.EntityID][]Collision
}

func newRecordingListener() *recordingListener {
	return &recordingListener{events: make(map[ecs.EntityID][]Collision)}
}

func (l *recordingListener) OnCollision(self ecs.EntityID, c Collision) {
	l.events[self] = append(l.events[self], c)
}

func testBoxDef() BodyDef {
	return BodyDef{
		Layer:          LayerBox,
		Mass:           2,
		LinearDamping:  0.5,
		AngularDamping: 2,
		GravityScale:   1,
		Friction:       0.4,
		Elasticity:     0.2,
	}
}

func testBallDef() BodyDef {
	return BodyDef{
		Layer:        LayerProjectile,
		Mass:         1,
		GravityScale: 1,
		Friction:     0.4,
		Elasticity:   0.2,
	}
}

func TestWorldAddBodyValidation(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81, Substeps: 2})

	tests := []struct {
		name string
		add  func() error
	}{
		{"实体ID为0", func() error {
			_, err := w.AddBox(0, testBoxDef(), 0, 0, 1, 1, 0)
			return err
		}},
		{"尺寸为0", func() error {
			_, err := w.AddBox(1, testBoxDef(), 0, 0, 0, 1, 0)
			return err
		}},
		{"质量为0", func() error {
			def := testBoxDef()
			def.Mass = 0
			_, err := w.AddBox(2, def, 0, 0, 1, 1, 0)
			return err
		}},
		{"半径为负", func() error {
			_, err := w.AddCircle(3, testBallDef(), 0, 0, -1)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if w.BodyCount() != 0 {
		t.Errorf("BodyCount = %d, want 0", w.BodyCount())
	}
}

func TestWorldDuplicateBody(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81})
	if _, err := w.AddBox(1, testBoxDef(), 0, 0.5, 1, 1, 0); err != nil {
		t.Fatalf("AddBox failed: %v", err)
	}
	if _, err := w.AddCircle(1, testBallDef(), 0, 3, 0.25); err == nil {
		t.Error("expected error for second body on the same entity")
	}
}

func TestWorldInitialPose(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81})
	body, err := w.AddBox(1, testBoxDef(), 2, 3, 1, 1, 45)
	if err != nil {
		t.Fatalf("AddBox failed: %v", err)
	}

	pos := body.Position()
	if math.Abs(pos.X-2) > 1e-9 || math.Abs(pos.Y-3) > 1e-9 {
		t.Errorf("Position = %+v, want (2, 3)", pos)
	}
	if math.Abs(body.RotationDegrees()-45) > 1e-9 {
		t.Errorf("RotationDegrees = %f, want 45", body.RotationDegrees())
	}
	if body.Mass() != 2 {
		t.Errorf("Mass = %f, want 2", body.Mass())
	}
}

func TestWorldGravityAndImpulse(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81})
	ball, err := w.AddCircle(1, testBallDef(), 0, 10, 0.25)
	if err != nil {
		t.Fatalf("AddCircle failed: %v", err)
	}

	ball.ApplyImpulse(Vec2{X: 5, Y: 0})
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}

	v := ball.Velocity()
	if v.X <= 0 {
		t.Errorf("impulse to the right should give positive vx, got %f", v.X)
	}
	if v.Y >= 0 {
		t.Errorf("gravity should give negative vy, got %f", v.Y)
	}
	if ball.Position().Y >= 10 {
		t.Errorf("ball should fall, y = %f", ball.Position().Y)
	}
}

func TestWorldCollisionDispatch(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81, Substeps: 2})
	w.AddGround(-10, 10, 0, 0.4)

	boxListener := newRecordingListener()
	ballListener := newRecordingListener()
	w.SetListener(LayerBox, boxListener)
	w.SetListener(LayerProjectile, ballListener)

	const boxID, ballID ecs.EntityID = 1, 2
	if _, err := w.AddBox(boxID, testBoxDef(), 0, 0.5, 1, 1, 0); err != nil {
		t.Fatalf("AddBox failed: %v", err)
	}
	if _, err := w.AddCircle(ballID, testBallDef(), 0, 4, 0.25); err != nil {
		t.Fatalf("AddCircle failed: %v", err)
	}

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	hitByBall := false
	for _, c := range boxListener.events[boxID] {
		if c.Other == ballID && c.OtherLayer == LayerProjectile {
			hitByBall = true
			if c.RelativeSpeed <= 0 {
				t.Errorf("relative speed should be positive, got %f", c.RelativeSpeed)
			}
		}
	}
	if !hitByBall {
		t.Errorf("box listener did not see the ball, events: %+v", boxListener.events[boxID])
	}

	hitBox := false
	for _, c := range ballListener.events[ballID] {
		if c.Other == boxID && c.OtherLayer == LayerBox {
			hitBox = true
		}
	}
	if !hitBox {
		t.Errorf("ball listener did not see the box, events: %+v", ballListener.events[ballID])
	}
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld(WorldOptions{Gravity: 9.81})
	if _, err := w.AddBox(1, testBoxDef(), 0, 0.5, 1, 1, 0); err != nil {
		t.Fatalf("AddBox failed: %v", err)
	}

	w.Remove(1)
	if _, ok := w.Body(1); ok {
		t.Error("body should be gone after Remove")
	}
	// 重复移除是安全的
	w.Remove(1)
	w.Step(1.0 / 60.0)

	if w.BodyCount() != 0 {
		t.Errorf("BodyCount = %d, want 0", w.BodyCount())
	}
}

func TestLayerString(t *testing.T) {
	if LayerBox.String() != "box" {
		t.Errorf("LayerBox.String() = %q", LayerBox.String())
	}
	if Layer(42).String() != "layer(42)" {
		t.Errorf("unknown layer string = %q", Layer(42).String())
	}
}

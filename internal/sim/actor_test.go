package sim

import "testing"

func TestActorImpulseOverwritesVelocity(t *testing.T) {
	a := Actor{Y: 100, VelY: 250} // falling fast
	a.ApplyImpulse(-900)

	if a.VelY != -900 {
		t.Errorf("impulse should overwrite velocity, got %v", a.VelY)
	}
	if a.Y != 100 {
		t.Errorf("impulse should not move the actor, Y = %v", a.Y)
	}
}

func TestActorIntegrateExactArithmetic(t *testing.T) {
	// One impulse followed by one fixed step, checked with exact float64
	// arithmetic: velocity = V + G*dt, position = Y0 + velocity*dt.
	const (
		gravity = 3240.0 // 0.9 per tick² at 60 Hz
		impulse = -900.0 // -15 per tick
		dt      = 1.0 / 60.0
		startY  = 243.0
	)

	a := Actor{Y: startY}
	a.ApplyImpulse(impulse)
	a.Integrate(gravity, dt)

	wantVel := impulse + gravity*dt
	wantY := startY + wantVel*dt
	if a.VelY != wantVel {
		t.Errorf("VelY = %v, expected %v", a.VelY, wantVel)
	}
	if a.Y != wantY {
		t.Errorf("Y = %v, expected %v", a.Y, wantY)
	}
}

func TestActorNoTerminalVelocity(t *testing.T) {
	a := Actor{}
	for i := 0; i < 600; i++ {
		a.Integrate(3240, 1.0/60.0)
	}
	// Ten seconds of free fall: velocity keeps growing unclamped.
	if a.VelY < 30000 {
		t.Errorf("fall velocity should be unclamped, got %v", a.VelY)
	}
}

func TestActorDescending(t *testing.T) {
	a := Actor{VelY: -1}
	if a.Descending() {
		t.Error("rising actor reported as descending")
	}
	a.VelY = 1
	if !a.Descending() {
		t.Error("falling actor not reported as descending")
	}
	a.VelY = 0
	if a.Descending() {
		t.Error("hovering actor reported as descending")
	}
}

package parameter

// Rotation Speed
const (
	// RotationSpeed is the initial angle delta in radians per key press
	RotationSpeed = 0.25

	// RotationSpeedStep is the increment applied by speed up/down commands
	// Speed down is refused once speed would drop to or below this step
	RotationSpeedStep = 0.1
)

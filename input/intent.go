// Package input decodes terminal key events into rendering intents.
package input

// Intent is a decoded user action; raw key codes never reach the frame loop
type Intent uint8

const (
	IntentNone Intent = iota

	// Rotation
	IntentRotateUp    // X -= speed
	IntentRotateDown  // X += speed
	IntentRotateLeft  // Y -= speed
	IntentRotateRight // Y += speed
	IntentRollLeft    // Z -= speed
	IntentRollRight   // Z += speed

	// Speed
	IntentSpeedUp
	IntentSpeedDown

	// Session
	IntentMenu
	IntentQuit

	// Menu selection
	IntentSelectCube
	IntentSelectSphere
	IntentSelectPyramid

	// Bound key that maps to nothing known
	IntentUnknown
)

// actionNames maps config action names to intents
// "none" unbinds a key when merged
var actionNames = map[string]Intent{
	"none":           IntentNone,
	"rotate_up":      IntentRotateUp,
	"rotate_down":    IntentRotateDown,
	"rotate_left":    IntentRotateLeft,
	"rotate_right":   IntentRotateRight,
	"roll_left":      IntentRollLeft,
	"roll_right":     IntentRollRight,
	"speed_up":       IntentSpeedUp,
	"speed_down":     IntentSpeedDown,
	"menu":           IntentMenu,
	"quit":           IntentQuit,
	"select_cube":    IntentSelectCube,
	"select_sphere":  IntentSelectSphere,
	"select_pyramid": IntentSelectPyramid,
}

// intentNames is the reverse of actionNames, built at init
var intentNames map[Intent]string

func init() {
	intentNames = make(map[Intent]string, len(actionNames))
	for name, in := range actionNames {
		intentNames[in] = name
	}
	intentNames[IntentUnknown] = "unknown"
}

// String returns the config action name of the intent
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// IntentByName resolves a config action name
func IntentByName(name string) (Intent, bool) {
	in, ok := actionNames[name]
	return in, ok
}

// IsRotation reports whether the intent changes orientation
func (i Intent) IsRotation() bool {
	return i >= IntentRotateUp && i <= IntentRollRight
}

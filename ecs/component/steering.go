package component

import "github.com/milk9111/ladderfall/movement"

var SteeringComponent = NewComponent[movement.Steering]()

var IntentComponent = NewComponent[movement.Intent]()

// Controls holds grace timers and button history between ticks.
var ControlsComponent = NewComponent[movement.Controls]()

package component

import "github.com/milk9111/ladderfall/movement"

// Transform is the continuous position renderers draw from. Only the
// kinematic and wrap systems write it.
type Transform = movement.Body

var TransformComponent = NewComponent[Transform]()

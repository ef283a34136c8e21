package tetris

import (
	"errors"
	"fmt"
)

type Action int

const (
	ActionTick Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionRestart
)

var ErrUnknownAction = errors.New("unknown action")

var actionNames = map[Action]string{
	ActionTick:      "tick",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionSoftDrop:  "soft_drop",
	ActionRotate:    "rotate",
	ActionHardDrop:  "hard_drop",
	ActionRestart:   "restart",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

func ParseAction(name string) (Action, error) {
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

package matchview

import "github.com/ComicarrDev/comicarr-sub001/internal/ui/action"

// Close requests closing the popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "matchview.close" }

// Confirm requests saving the selected candidate as the item's match.
type Confirm struct {
	ItemID   int64
	VolumeID int64
}

// ActionType implements action.Action.
func (Confirm) ActionType() string { return "matchview.confirm" }

// ActionMsg wraps an action with the component source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "matchview", Action: a}
}

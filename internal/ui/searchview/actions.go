package searchview

import "github.com/ComicarrDev/comicarr-sub001/internal/ui/action"

// Close requests closing the popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "searchview.close" }

// Imported announces a completed import so the root app can surface a toast.
type Imported struct {
	Title  string
	Year   int
	Folder string
}

// ActionType implements action.Action.
func (Imported) ActionType() string { return "searchview.imported" }

// ActionMsg wraps an action with the component source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "searchview", Action: a}
}

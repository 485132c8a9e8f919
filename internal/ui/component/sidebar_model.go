package component

import "github.com/nemuelw/protodesk/internal/domain/entity"

// SidebarAction is what a sidebar button does when clicked.
type SidebarAction int

const (
	// ActionService loads a catalog service in the view.
	ActionService SidebarAction = iota
	// ActionDonate opens the donate dialog.
	ActionDonate
	// ActionAbout opens the about dialog.
	ActionAbout
)

// SidebarItem describes one sidebar button.
type SidebarItem struct {
	Key     string
	Tooltip string
	Icon    string
	Action  SidebarAction
}

// SidebarLayout returns the buttons above the spacer (one per service, in
// catalog order) and below it (Donate, About).
func SidebarLayout(services []entity.Service) (top, bottom []SidebarItem) {
	top = make([]SidebarItem, 0, len(services))
	for _, svc := range services {
		icon := svc.Icon
		if icon == "" {
			icon = string(svc.ID)
		}
		top = append(top, SidebarItem{
			Key:     string(svc.ID),
			Tooltip: svc.Title,
			Icon:    icon,
			Action:  ActionService,
		})
	}
	bottom = []SidebarItem{
		{Key: "donate", Tooltip: "Donate", Icon: "donate", Action: ActionDonate},
		{Key: "about", Tooltip: "About", Icon: "about", Action: ActionAbout},
	}
	return top, bottom
}

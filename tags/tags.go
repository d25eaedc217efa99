package tags

import "github.com/yohamta/donburi"

var (
	Logo    = donburi.NewTag().SetName("Logo")
	HUDIcon = donburi.NewTag().SetName("HUDIcon")
)

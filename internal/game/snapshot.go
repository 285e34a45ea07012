package game

import (
	"ruins-game/internal/backend"
	"ruins-game/internal/locomotion"
	"ruins-game/internal/rebind"
	"ruins-game/internal/transform"
	"ruins-game/internal/wolf"

	"github.com/jinzhu/copier"
)

// View is everything the renderer and HUD read for one frame. It shares no memory with the
// session.
type View struct {
	Player      transform.Transform
	PlayerPose  locomotion.Pose
	PlayerState locomotion.State

	Camera transform.Transform

	Wolf          transform.Transform
	WolfPose      locomotion.Pose
	WolfFollowing bool
	WolfMode      string
	Indicator     wolf.Indicator

	Inventory []string
	Items     []backend.Item

	ShowInventory bool
	ShowControls  bool
	PanelOpen     bool
	BindingRows   []rebind.Row
}

// Snapshot returns a deep copy of the current view state.
func (s *Session) Snapshot() View {
	v := View{
		Player:        *s.player,
		PlayerPose:    s.playerGait.Pose(),
		PlayerState:   s.playerGait.State(),
		Camera:        *s.cam,
		Wolf:          *s.wolf.Transform(),
		WolfPose:      s.wolf.Gait().Pose(),
		WolfFollowing: s.wolf.Following(),
		WolfMode:      s.wolf.Mode().String(),
		Indicator:     s.wolf.Indicator(),
		Inventory:     s.inventory,
		Items:         s.items,
		ShowInventory: s.showInventory,
		ShowControls:  s.showControls,
		PanelOpen:     s.panel.IsOpen(),
		BindingRows:   s.panel.Rows(),
	}
	var out View
	if err := copier.CopyWithOption(&out, &v, copier.Option{DeepCopy: true}); err != nil {
		s.log.Error("snapshot copy failed", "error", err)
		return v
	}
	return out
}

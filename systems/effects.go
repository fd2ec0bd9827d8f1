package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual effects.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs.World, deltaTime(ecs.World))
}

// startFlash tints the entity's surfaces with the flash colour. A flash
// already in progress is left to finish on its own schedule.
func startFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	if flash.Active {
		return
	}
	flash.Active = true
	flash.Color = config.Health.FlashColor
	flash.Tween = gween.New(1, 0, float32(config.Health.FlashDuration), ease.Linear)

	if sink := visualSink(e); sink != nil {
		sink.SetHighlight(flash.Color)
	}
}

// updateFlashEffects runs flash tweens and reverts the surfaces once they finish.
func updateFlashEffects(w donburi.World, dt float64) {
	for e := range components.Flash.Iter(w) {
		flash := components.Flash.Get(e)
		if !flash.Active || flash.Tween == nil {
			continue
		}
		if _, finished := flash.Tween.Update(float32(dt)); !finished {
			continue
		}
		flash.Active = false
		flash.Tween = nil
		if sink := visualSink(e); sink != nil {
			sink.RevertHighlight()
		}
	}
}

func visualSink(e *donburi.Entry) components.VisualSink {
	if !e.HasComponent(components.Surfaces) {
		return nil
	}
	return components.Surfaces.Get(e).Sink
}

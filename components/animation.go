package components

import "github.com/yohamta/donburi"

// AnimationSink receives boolean animation parameters.
type AnimationSink interface {
	SetBool(name string, value bool)
}

type AnimatorData struct {
	Sink AnimationSink
}

var Animator = donburi.NewComponentType[AnimatorData]()

// BoolAnimator is an AnimationSink that keeps the last value of every parameter.
type BoolAnimator struct {
	params map[string]bool
}

func NewBoolAnimator() *BoolAnimator {
	return &BoolAnimator{params: make(map[string]bool)}
}

func (a *BoolAnimator) SetBool(name string, value bool) {
	a.params[name] = value
}

// Bool returns the last value set for name.
func (a *BoolAnimator) Bool(name string) bool {
	return a.params[name]
}

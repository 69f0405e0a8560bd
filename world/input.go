package world

// Key is a logical key the game reacts to. Physical key mapping lives in the
// client.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
)

// Input is the set of held keys. Only key events change it; entities see a
// copy per frame.
type Input struct {
	Left, Right, Fire bool
}

func (in *Input) set(key Key, held bool) {
	switch key {
	case KeyLeft:
		in.Left = held
	case KeyRight:
		in.Right = held
	case KeyFire:
		in.Fire = held
	}
}

func (in *Input) Press(key Key) {
	in.set(key, true)
}

func (in *Input) Release(key Key) {
	in.set(key, false)
}

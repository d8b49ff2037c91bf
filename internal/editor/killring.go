package editor

// KillRing is a bounded stack of killed character spans. Pushing past
// capacity discards the oldest span. Yanking always reads the most recent
// span and never rotates.
type KillRing struct {
	spans [][]rune
	size  int
}

func NewKillRing(size int) *KillRing {
	if size < 1 {
		size = 1
	}
	return &KillRing{size: size}
}

// Push records a killed span, evicting the oldest when full.
func (k *KillRing) Push(span []rune) {
	k.spans = append(k.spans, span)
	if len(k.spans) > k.size {
		k.spans = k.spans[1:]
	}
}

// Top returns the most recently killed span, or ok=false when empty.
func (k *KillRing) Top() ([]rune, bool) {
	if len(k.spans) == 0 {
		return nil, false
	}
	top := k.spans[len(k.spans)-1]
	span := make([]rune, len(top))
	copy(span, top)
	return span, true
}

// Len reports how many spans are retained.
func (k *KillRing) Len() int {
	return len(k.spans)
}

package core

// Sound names a fire-and-forget sound clip.
type Sound int

const (
	SoundNone Sound = iota
	SoundJetStart
	SoundJetStop
	SoundJetCabin
	SoundExplosion
	SoundShot
)

// String returns the clip name used in logs and asset tables.
func (s Sound) String() string {
	switch s {
	case SoundJetStart:
		return "jet_start"
	case SoundJetStop:
		return "jet_stop"
	case SoundJetCabin:
		return "jet_cabin"
	case SoundExplosion:
		return "explosion"
	case SoundShot:
		return "shot"
	default:
		return "none"
	}
}

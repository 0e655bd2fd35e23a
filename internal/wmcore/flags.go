// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package wmcore

// ClientFlag is a bit in a client's flags union. Lifecycle, mode and type
// bits all share this space: exactly one type bit is set per client,
// while lifecycle and mode bits are independent.
type ClientFlag uint32

const (
	// Lifecycle bits.
	FlagDead ClientFlag = 1 << iota
	FlagUnmapIgnore
	FlagArrangePending
	FlagFocusTakesMsg
	FlagInput
	FlagCloseTakesMsg

	// Mode bits.
	FlagFull
	FlagFloat
	FlagStick
	FlagStickScreen
	FlagUrgent
	FlagResize
	FlagZaphod
	FlagFixed
	FlagCenter
	FlagBorderless

	// Type bits - exactly one is set at any time.
	FlagTypeNormal
	FlagTypeDesktop
	FlagTypeDock
	FlagTypeToolbar
	FlagTypeSplash
	FlagTypeDialog
)

// TypeMask is the union of every type bit, used to clear the previous type
// before setting a new one.
const TypeMask = FlagTypeNormal | FlagTypeDesktop | FlagTypeDock |
	FlagTypeToolbar | FlagTypeSplash | FlagTypeDialog

// ModeMask is the union of every mode bit. toggle_modes only
// ever XORs bits within this mask.
const ModeMask = FlagFull | FlagFloat | FlagStick | FlagStickScreen |
	FlagUrgent | FlagResize | FlagZaphod | FlagFixed | FlagCenter | FlagBorderless

// Has reports whether all bits in mask are set in f.
func (f ClientFlag) Has(mask ClientFlag) bool { return f&mask == mask }

// Any reports whether any bit in mask is set in f.
func (f ClientFlag) Any(mask ClientFlag) bool { return f&mask != 0 }

// Clear returns f with every bit in mask unset.
func (f ClientFlag) Clear(mask ClientFlag) ClientFlag { return f &^ mask }

// Type extracts the type bit from f.
func (f ClientFlag) Type() ClientFlag { return f & TypeMask }

// WithType clears the current type bits and sets t.
func (f ClientFlag) WithType(t ClientFlag) ClientFlag { return (f &^ TypeMask) | (t & TypeMask) }

// RunFlag holds process-wide boolean toggles.
type RunFlag uint32

const (
	FlagRun RunFlag = 1 << iota
	FlagReload
	FlagRestart
	FlagUrgentDialogs
	FlagHonorSizeHints
	FlagTiling
	FlagClickToFocus
	FlagSkipWarp
	FlagXinerama
	FlagXrandr
	FlagTray
)

package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/siftly-datazoom/logging"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is available (ssh sessions, bare ttys).
func Copy(text string) error {
	if sysclip.Unsupported {
		return copyOSC52(text)
	}
	if err := sysclip.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: system copy failed, trying OSC52: %v", err)
		return copyOSC52(text)
	}
	logging.Infof("Clipboard: copied via system clipboard")
	return nil
}

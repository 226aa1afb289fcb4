package core

import (
	"fmt"
	"strings"
)

// Key code definitions. Platforms translate their own key symbols into these.
type KeyCode uint16

const (
	KEY_UNKNOWN   KeyCode = 0x00
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_PAUSE     KeyCode = 0x13
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_END       KeyCode = 0x23
	KEY_HOME      KeyCode = 0x24
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_INSERT    KeyCode = 0x2D
	KEY_DELETE    KeyCode = 0x2E
	KEY_0         KeyCode = 0x30
	KEY_1         KeyCode = 0x31
	KEY_2         KeyCode = 0x32
	KEY_3         KeyCode = 0x33
	KEY_4         KeyCode = 0x34
	KEY_5         KeyCode = 0x35
	KEY_6         KeyCode = 0x36
	KEY_7         KeyCode = 0x37
	KEY_8         KeyCode = 0x38
	KEY_9         KeyCode = 0x39
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73
	KEY_F5        KeyCode = 0x74
	KEY_F6        KeyCode = 0x75
	KEY_F7        KeyCode = 0x76
	KEY_F8        KeyCode = 0x77
	KEY_F9        KeyCode = 0x78
	KEY_F10       KeyCode = 0x79
	KEY_F11       KeyCode = 0x7A
	KEY_F12       KeyCode = 0x7B
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEY_SEMICOLON KeyCode = 0xBA
	KEY_PLUS      KeyCode = 0xBB
	KEY_COMMA     KeyCode = 0xBC
	KEY_MINUS     KeyCode = 0xBD
	KEY_PERIOD    KeyCode = 0xBE
	KEY_SLASH     KeyCode = 0xBF
	KEY_GRAVE     KeyCode = 0xC0
	KEYS_MAX_KEYS
)

var keyNames = map[KeyCode]string{
	KEY_BACKSPACE: "backspace",
	KEY_TAB:       "tab",
	KEY_ENTER:     "enter",
	KEY_SHIFT:     "shift",
	KEY_PAUSE:     "pause",
	KEY_ESCAPE:    "escape",
	KEY_SPACE:     "space",
	KEY_END:       "end",
	KEY_HOME:      "home",
	KEY_LEFT:      "left",
	KEY_UP:        "up",
	KEY_RIGHT:     "right",
	KEY_DOWN:      "down",
	KEY_INSERT:    "insert",
	KEY_DELETE:    "delete",
	KEY_F1:        "f1",
	KEY_F2:        "f2",
	KEY_F3:        "f3",
	KEY_F4:        "f4",
	KEY_F5:        "f5",
	KEY_F6:        "f6",
	KEY_F7:        "f7",
	KEY_F8:        "f8",
	KEY_F9:        "f9",
	KEY_F10:       "f10",
	KEY_F11:       "f11",
	KEY_F12:       "f12",
	KEY_LSHIFT:    "lshift",
	KEY_RSHIFT:    "rshift",
	KEY_LCONTROL:  "lcontrol",
	KEY_RCONTROL:  "rcontrol",
	KEY_SEMICOLON: "semicolon",
	KEY_PLUS:      "plus",
	KEY_COMMA:     "comma",
	KEY_MINUS:     "minus",
	KEY_PERIOD:    "period",
	KEY_SLASH:     "slash",
	KEY_GRAVE:     "grave",
}

var keysByName map[string]KeyCode

func init() {
	keysByName = make(map[string]KeyCode, len(keyNames)+36)
	for k, n := range keyNames {
		keysByName[n] = k
	}
	// Digits and letters are named by their character.
	for k := KEY_0; k <= KEY_9; k++ {
		keysByName[string(rune(k))] = k
	}
	for k := KEY_A; k <= KEY_Z; k++ {
		keysByName[strings.ToLower(string(rune(k)))] = k
	}
	keysByName["esc"] = KEY_ESCAPE
	keysByName["return"] = KEY_ENTER
}

func (k KeyCode) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if (k >= KEY_0 && k <= KEY_9) || (k >= KEY_A && k <= KEY_Z) {
		return strings.ToLower(string(rune(k)))
	}
	return fmt.Sprintf("key(0x%02x)", uint16(k))
}

// ParseKeyCode resolves a key name as used in configuration files.
func ParseKeyCode(name string) (KeyCode, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KEY_UNKNOWN, fmt.Errorf("%w: unknown key %q", ErrConfig, name)
	}
	return k, nil
}

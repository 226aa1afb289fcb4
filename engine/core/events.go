package core

import "fmt"

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down before the next poll.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	/* Context usage:
	 * data := context.Data.(*KeyEvent)
	 */
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	/* Context usage:
	 * data := context.Data.(*KeyEvent)
	 */
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS.
	/* Context usage:
	 * data := context.Data.(*SystemEvent)
	 */
	EVENT_CODE_RESIZED EventCode = 0x08

	// Anything the platform reported that the engine has no code for.
	EVENT_CODE_OTHER EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

func (c EventCode) String() string {
	switch c {
	case EVENT_CODE_APPLICATION_QUIT:
		return "application_quit"
	case EVENT_CODE_KEY_PRESSED:
		return "key_pressed"
	case EVENT_CODE_KEY_RELEASED:
		return "key_released"
	case EVENT_CODE_RESIZED:
		return "resized"
	case EVENT_CODE_OTHER:
		return "other"
	default:
		return fmt.Sprintf("event(0x%02x)", uint16(c))
	}
}

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
	// Set when the platform generated the event from its own key repeat.
	Repeat bool
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

func QuitEvent() EventContext {
	return EventContext{Type: EVENT_CODE_APPLICATION_QUIT}
}

func KeyPressedEvent(key KeyCode) EventContext {
	return EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: key}}
}

func KeyReleasedEvent(key KeyCode) EventContext {
	return EventContext{Type: EVENT_CODE_KEY_RELEASED, Data: &KeyEvent{KeyCode: key}}
}

func ResizedEvent(width, height uint32) EventContext {
	return EventContext{Type: EVENT_CODE_RESIZED, Data: &SystemEvent{WindowWidth: width, WindowHeight: height}}
}

func OtherEvent(raw interface{}) EventContext {
	return EventContext{Type: EVENT_CODE_OTHER, Data: raw}
}

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventCodeEntry struct {
	events []*registeredEvent
}

// EventSystem is the lookup table routing fired events to their listeners.
// It is owned by the frame loop and is not safe for concurrent use.
type EventSystem struct {
	registered map[EventCode]*eventCodeEntry
}

func NewEventSystem() *EventSystem {
	return &EventSystem{
		registered: make(map[EventCode]*eventCodeEntry),
	}
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listener/callback combos will not be registered again and will cause this to return FALSE.
 * Listeners are invoked in registration order.
 */
func (es *EventSystem) Register(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	if code >= MAX_MESSAGE_CODES || onEvent == nil {
		return false
	}
	entry, ok := es.registered[code]
	if !ok {
		entry = &eventCodeEntry{}
		es.registered[code] = entry
	}
	for _, e := range entry.events {
		if e.listener == listener {
			LogWarn("listener already registered for event %s", code)
			return false
		}
	}
	entry.events = append(entry.events, &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns FALSE.
 */
func (es *EventSystem) Unregister(code EventCode, listener interface{}) bool {
	entry, ok := es.registered[code]
	if !ok || len(entry.events) == 0 {
		return false
	}
	for i, e := range entry.events {
		if e.listener == listener {
			entry.events = append(entry.events[:i], entry.events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * TRUE, the event is considered handled and is not passed on to any more listeners.
 * Returns TRUE if handled, otherwise FALSE.
 */
func (es *EventSystem) Fire(context EventContext) bool {
	entry, ok := es.registered[context.Type]
	if !ok {
		return false
	}
	for _, e := range entry.events {
		if e.callback(context) {
			return true
		}
	}
	return false
}

// Shutdown drops every registration.
func (es *EventSystem) Shutdown() {
	es.registered = make(map[EventCode]*eventCodeEntry)
}

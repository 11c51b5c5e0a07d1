package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/kwonoj/tauri-specta/app"
	"github.com/kwonoj/tauri-specta/codec"
	"github.com/kwonoj/tauri-specta/event"
)

// Module implements the _specta_event Lua API for one plugin namespace.
type Module struct {
	manager app.Manager
	plugin  event.PluginID
	cdc     codec.Codec
	L       *lua.LState

	// Track subscriptions for cleanup
	mu         sync.Mutex
	subs       map[string]app.ListenerID
	handlerTbl *lua.LTable // Table storing handler functions to prevent GC
	handlerKey string      // Global key for handler table
	nextID     uint64
}

// NewModule creates an event module bound to a plugin namespace.
// A nil codec falls back to the default JSON codec.
func NewModule(m app.Manager, plugin event.PluginID, cdc codec.Codec) *Module {
	if cdc == nil {
		cdc = codec.JSON
	}
	return &Module{
		manager:    m,
		plugin:     plugin,
		cdc:        cdc,
		subs:       make(map[string]app.ListenerID),
		handlerKey: "_specta_event_handlers_" + string(plugin),
	}
}

// Register installs the module into the Lua state.
func (m *Module) Register(L *lua.LState) error {
	m.L = L

	// Handler table pinned via a global to keep functions alive
	m.handlerTbl = L.NewTable()
	L.SetGlobal(m.handlerKey, m.handlerTbl)

	mod := L.NewTable()
	L.SetField(mod, "emit", L.NewFunction(m.emit))
	L.SetField(mod, "listen", L.NewFunction(m.listen))
	L.SetField(mod, "once", L.NewFunction(m.once))
	L.SetField(mod, "unlisten", L.NewFunction(m.unlisten))

	L.SetGlobal("_specta_event", mod)
	return nil
}

// Cleanup removes every subscription and releases handler references.
// Call when the plugin is unloaded.
func (m *Module) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.subs {
		m.manager.Unlisten(id)
	}
	m.subs = make(map[string]app.ListenerID)

	if m.L != nil {
		m.L.SetGlobal(m.handlerKey, lua.LNil)
	}
	m.L = nil
	m.handlerTbl = nil
}

// emit(name, payload?) raises on transport failure.
func (m *Module) emit(L *lua.LState) int {
	name := L.CheckString(1)

	var payload any
	if L.GetTop() >= 2 {
		payload = luaToGo(L.Get(2))
	}

	data, err := m.cdc.Marshal(payload)
	if err != nil {
		L.RaiseError("encoding %s payload: %v", name, err)
		return 0
	}

	if err := m.manager.EmitAll(event.WireName(m.plugin, name), data); err != nil {
		L.RaiseError("emitting %s: %v", name, err)
		return 0
	}
	return 0
}

// listen(name, fn) -> id
func (m *Module) listen(L *lua.LState) int {
	return m.subscribe(L, false)
}

// once(name, fn) -> id
func (m *Module) once(L *lua.LState) int {
	return m.subscribe(L, true)
}

// unlisten(id) -> bool
func (m *Module) unlisten(L *lua.LState) int {
	id := L.CheckString(1)

	m.mu.Lock()
	listenerID, ok := m.subs[id]
	if ok {
		delete(m.subs, id)
	}
	m.mu.Unlock()

	if ok {
		ok = m.manager.Unlisten(listenerID)
	}
	L.Push(lua.LBool(ok))
	return 1
}

// subscribe wires a Lua handler to the plugin's wire-name for the event.
func (m *Module) subscribe(L *lua.LState, once bool) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	m.mu.Lock()
	m.nextID++
	id := fmt.Sprintf("%s-%d", m.plugin, m.nextID)
	if m.handlerTbl != nil {
		m.handlerTbl.RawSetString(id, fn)
	}
	m.mu.Unlock()

	handler := func(raw []byte) {
		env, err := codec.Decode(raw)
		if err != nil {
			return // malformed delivery, nothing to hand to Lua
		}
		m.invoke(fn, env)
	}

	wire := event.WireName(m.plugin, name)
	var listenerID app.ListenerID
	if once {
		listenerID = m.manager.OnceAny(wire, handler)
	} else {
		listenerID = m.manager.ListenAny(wire, handler)
	}

	m.mu.Lock()
	m.subs[id] = listenerID
	m.mu.Unlock()

	L.Push(lua.LString(id))
	return 1
}

// invoke calls a Lua handler with {id=..., payload=...}.
// Must run on the goroutine owning the LState; see the package comment.
func (m *Module) invoke(fn *lua.LFunction, env codec.Envelope) {
	m.mu.Lock()
	L := m.L
	m.mu.Unlock()
	if L == nil {
		return // cleaned up
	}

	tbl := L.NewTable()
	L.SetField(tbl, "id", lua.LString(env.ID))
	L.SetField(tbl, "payload", rawToLua(L, env.Payload))

	L.Push(fn)
	L.Push(tbl)
	_ = L.PCall(1, 0, nil)
}

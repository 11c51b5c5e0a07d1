// Package lua exposes the event bridge to embedded Lua plugins.
//
// A Module is bound to one plugin namespace and registered into an
// *lua.LState. Lua code then emits and listens by logical name; the module
// derives the namespaced wire-names, so a Lua plugin can never collide with
// another plugin's events:
//
//	local ev = _specta_event
//	ev.emit("progress", { percent = 40 })
//	local id = ev.listen("progress", function(e)
//	    print(e.id, e.payload.percent)
//	end)
//	ev.unlisten(id)
//
// # Thread safety
//
// gopher-lua's LState is not goroutine-safe. The Manager used with a Module
// must invoke listeners on the goroutine that owns the LState. app.Local
// delivers synchronously on the emitting goroutine, so a single-goroutine
// host is safe; hosts with dedicated delivery threads must marshal
// callbacks onto the Lua goroutine themselves.
package lua

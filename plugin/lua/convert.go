package lua

import (
	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// luaToGo converts a Lua value into plain Go data the codec can marshal.
// Tables with consecutive integer keys become slices, others become maps.
func luaToGo(v lua.LValue) any {
	switch lv := v.(type) {
	case lua.LBool:
		return bool(lv)
	case lua.LNumber:
		return float64(lv)
	case lua.LString:
		return string(lv)
	case *lua.LTable:
		maxN := lv.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, luaToGo(lv.RawGetInt(i)))
			}
			return arr
		}
		obj := make(map[string]any)
		lv.ForEach(func(key, value lua.LValue) {
			if ks, ok := key.(lua.LString); ok {
				obj[string(ks)] = luaToGo(value)
			}
		})
		return obj
	default:
		return nil
	}
}

// rawToLua converts a raw structured payload into a Lua value.
func rawToLua(L *lua.LState, raw []byte) lua.LValue {
	return resultToLua(L, gjson.ParseBytes(raw))
}

// resultToLua converts a parsed structural value into a Lua value.
func resultToLua(L *lua.LState, r gjson.Result) lua.LValue {
	switch r.Type {
	case gjson.False:
		return lua.LFalse
	case gjson.True:
		return lua.LTrue
	case gjson.Number:
		return lua.LNumber(r.Num)
	case gjson.String:
		return lua.LString(r.Str)
	case gjson.JSON:
		tbl := L.NewTable()
		if r.IsArray() {
			i := 0
			r.ForEach(func(_, value gjson.Result) bool {
				i++
				tbl.RawSetInt(i, resultToLua(L, value))
				return true
			})
		} else {
			r.ForEach(func(key, value gjson.Result) bool {
				tbl.RawSetString(key.String(), resultToLua(L, value))
				return true
			})
		}
		return tbl
	default:
		return lua.LNil
	}
}

// Package script loads Lua hook scripts for the scroll scheduler.
//
// A hook script is a plain Lua file that may define two global functions:
//
//	function pre_scroll(info)  ... end
//	function post_scroll(info) ... end
//
// info is a table with the run's id, lines, duration (seconds), easing
// name, interrupted flag and the opaque info payload when it is a simple
// value. Script errors are logged and never propagate into the scheduler.
package script

import (
	"fmt"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/glide/internal/hook"
	"github.com/dshills/glide/internal/logging"
)

// Hook priority for script hooks, within the plugin band.
const scriptHookPriority = 200

// Engine owns one Lua state holding a loaded hook script.
type Engine struct {
	// mu serializes all state access; lua.LState is not goroutine-safe
	// and hooks fire from timer goroutines.
	mu     sync.Mutex
	state  *lua.LState
	path   string
	log    *logging.Logger
	errors atomic.Uint64
}

// Load runs the script at path in a fresh Lua state.
func Load(path string, log *logging.Logger) (*Engine, error) {
	if log == nil {
		log = logging.NullLogger
	}

	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: loading %s: %w", path, err)
	}

	return &Engine{
		state: L,
		path:  path,
		log:   log.WithComponent("script"),
	}, nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != nil {
		e.state.Close()
		e.state = nil
	}
}

// ErrorCount returns the number of script errors since Load.
func (e *Engine) ErrorCount() uint64 {
	return e.errors.Load()
}

// HasPreHook reports whether the script defines pre_scroll.
func (e *Engine) HasPreHook() bool {
	return e.hasFunction("pre_scroll")
}

// HasPostHook reports whether the script defines post_scroll.
func (e *Engine) HasPostHook() bool {
	return e.hasFunction("post_scroll")
}

// Install registers the script's hook functions, when defined, on the
// given manager.
func (e *Engine) Install(m *hook.Manager) {
	if e.HasPreHook() {
		m.RegisterPre(hook.NewPreRunFunc("script:pre_scroll", scriptHookPriority,
			func(info hook.RunInfo) { e.call("pre_scroll", info) }))
	}
	if e.HasPostHook() {
		m.RegisterPost(hook.NewPostRunFunc("script:post_scroll", scriptHookPriority,
			func(info hook.RunInfo) { e.call("post_scroll", info) }))
	}
}

// hasFunction reports whether the script defines a global function.
func (e *Engine) hasFunction(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return false
	}
	_, ok := e.state.GetGlobal(name).(*lua.LFunction)
	return ok
}

// call invokes a global script function with the run info table.
func (e *Engine) call(name string, info hook.RunInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return
	}

	fn, ok := e.state.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return
	}

	err := e.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, e.infoTable(info))
	if err != nil {
		e.errors.Add(1)
		e.log.Warn("%s failed in %s: %v", name, e.path, err)
	}
}

// infoTable converts run info into a Lua table.
func (e *Engine) infoTable(info hook.RunInfo) *lua.LTable {
	tbl := e.state.NewTable()
	tbl.RawSetString("id", lua.LString(info.ID))
	tbl.RawSetString("lines", lua.LNumber(info.Lines))
	tbl.RawSetString("duration", lua.LNumber(info.Duration.Seconds()))
	tbl.RawSetString("easing", lua.LString(info.Easing))
	tbl.RawSetString("interrupted", lua.LBool(info.Interrupted))
	tbl.RawSetString("info", toLuaValue(info.Info))
	return tbl
}

// toLuaValue maps simple Go payloads onto Lua values. Unsupported types
// become nil rather than failing the hook.
func toLuaValue(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(val)
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	default:
		return lua.LNil
	}
}

package object

// ---------------------------------------------------------------------------
// Dispatch tracing
// ---------------------------------------------------------------------------

// SetTrace enables or disables per-send trace logging. Tracing logs each
// send at debug level with the receiver class, the selector, and how far up
// the chain resolution had to walk. Off by default.
func (rt *Runtime) SetTrace(on bool) {
	rt.trace = on
	if on {
		rt.log.Info("dispatch tracing enabled")
	}
}

// Tracing reports whether dispatch tracing is enabled.
func (rt *Runtime) Tracing() bool {
	return rt.trace
}

// traceSend logs one dispatch. Resolution depth is recomputed here rather
// than threaded through Resolve so the non-traced path stays allocation
// free.
func (rt *Runtime) traceSend(inst *Instance, name string) {
	if inst.LocalMethod(name) != nil {
		rt.log.Debugf("send %s>>%s (instance-local)", inst.ClassName(), name)
		return
	}

	selectorID := rt.Selectors.Lookup(name)
	if selectorID < 0 {
		return
	}
	if _, owner := inst.VTablePtr().LookupWithOwner(selectorID); owner != nil {
		depth := inst.Class().Depth() - owner.Depth()
		rt.log.Debugf("send %s>>%s (defined on %s, depth %d)", inst.ClassName(), name, owner.FullName(), depth)
	}
}

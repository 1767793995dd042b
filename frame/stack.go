package frame

// This module implements a stack of call frames. The stack tracks the
// currently active call while an interpreter descends into nested calls.

// CallStack is a (call-)stack of call frames.
type CallStack struct {
	callFrameBase *CallFrame
	callFrameTOS  *CallFrame
}

// Current gets the current call frame of a stack (TOS).
func (cst *CallStack) Current() *CallFrame {
	if cst.callFrameTOS == nil {
		panic("attempt to access call frame from empty stack")
	}
	return cst.callFrameTOS
}

// Globals gets the outermost call frame.
func (cst *CallStack) Globals() *CallFrame {
	if cst.callFrameBase == nil {
		panic("attempt to access global call frame from empty stack")
	}
	return cst.callFrameBase
}

// PushNewFrame pushes a new call frame as TOS. A frame is constructed,
// having the recent TOS as its parent.
func (cst *CallStack) PushNewFrame(nm string) *CallFrame {
	parent := cst.callFrameTOS
	newf := NewCallFrame(nm, parent)
	if parent == nil { // the new frame is the outermost frame
		cst.callFrameBase = newf // make new frame anchor
	}
	cst.callFrameTOS = newf // new frame now TOS
	T().P("frame", newf.Name).Debugf("pushing new call frame")
	return newf
}

// PopFrame pops the top-most (recent) call frame. Returns the popped frame.
func (cst *CallStack) PopFrame() *CallFrame {
	if cst.callFrameTOS == nil {
		panic("attempt to pop call frame from empty call stack")
	}
	f := cst.callFrameTOS
	T().Debugf("popping call frame [%s]", f.Name)
	cst.callFrameTOS = cst.callFrameTOS.Parent
	return f
}

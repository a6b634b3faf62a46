package gridview

// SelectionObserver receives the controller's state after every
// public mutation. Dispatch is synchronous, on the mutating call's
// stack. Observers may register or unregister observers during
// dispatch: removals take effect immediately (a removed observer not
// yet dispatched is skipped), additions first hear the next
// notification.
type SelectionObserver func(SelectionState)

// ObserverHandle identifies a registered observer for removal.
type ObserverHandle int

// observerList is an explicitly owned register/unregister observer
// set with synchronous dispatch, in registration order.
type observerList struct {
	next      ObserverHandle
	handles   []ObserverHandle
	observers map[ObserverHandle]SelectionObserver
}

func newObserverList() *observerList {
	return &observerList{observers: make(map[ObserverHandle]SelectionObserver)}
}

func (l *observerList) register(fn SelectionObserver) ObserverHandle {
	l.next++
	h := l.next
	l.handles = append(l.handles, h)
	l.observers[h] = fn
	return h
}

func (l *observerList) unregister(h ObserverHandle) {
	if _, ok := l.observers[h]; !ok {
		return
	}
	delete(l.observers, h)
	for i, have := range l.handles {
		if have == h {
			l.handles = append(l.handles[:i], l.handles[i+1:]...)
			break
		}
	}
}

func (l *observerList) notify(state SelectionState) {
	// Snapshot the order so observers can mutate the list mid-dispatch.
	handles := append([]ObserverHandle(nil), l.handles...)
	for _, h := range handles {
		if fn, ok := l.observers[h]; ok {
			fn(state)
		}
	}
}

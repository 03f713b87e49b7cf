package main

import (
	"fmt"
	"runtime"
	"time"
	"weak"
)

type payload struct {
	value int
	_     [64]byte // keep it off the tiny allocator so GC can free it alone
}

// lockWeak mirrors weak_ptr::lock: it returns the value if the object is
// still reachable.
func lockWeak(w weak.Pointer[payload]) (int, bool) {
	if p := w.Value(); p != nil {
		return p.value, true
	}
	return 0, false
}

func demoWeak() {
	strong := &payload{value: 42}
	w := weak.Make(strong)

	if v, ok := lockWeak(w); ok {
		fmt.Println("  object is alive, value:", v)
	}
	runtime.KeepAlive(strong)

	// Drop the only strong reference and let the GC run.
	strong = nil
	runtime.GC()
	if _, ok := lockWeak(w); !ok {
		fmt.Println("  the weak pointer has expired")
	} else {
		fmt.Println("  object still reachable (GC has not collected it yet)")
	}

	// AddCleanup replaces finalizers: the function runs on a runtime
	// goroutine some time after the object becomes unreachable.
	cleaned := make(chan string, 1)
	obj := &payload{value: 7}
	runtime.AddCleanup(obj, func(name string) { cleaned <- name }, "payload#7")
	obj = nil
	runtime.GC()

	select {
	case name := <-cleaned:
		fmt.Println("  cleanup ran for", name)
	case <-time.After(200 * time.Millisecond):
		fmt.Println("  cleanup not run yet (it is not guaranteed to run promptly)")
	}
}

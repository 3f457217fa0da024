//go:build js && wasm

// Command touchwasm is the WebAssembly entry point for the browser drawing
// surface. It binds the page's <canvas id="canvas"> once the DOM is ready
// and then keeps the Go runtime alive to serve event callbacks.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o touchwasm.wasm ./cmd/touchwasm
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/gogpu/touchstroke"
	"github.com/gogpu/touchstroke/integration/jscanvas"
)

func main() {
	touchstroke.SetLogger(slog.Default())

	doc := js.Global().Get("document")
	start := func() {
		el := doc.Call("getElementById", "canvas")
		if _, err := jscanvas.Bind(el); err != nil {
			slog.Error("touchwasm: bind canvas", "err", err)
		}
	}

	if doc.Get("readyState").String() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(js.Value, []js.Value) any {
			start()
			ready.Release()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		start()
	}

	select {}
}

//go:build js

package main

import (
	"net/url"
	"syscall/js"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

func GetParam(key string) string {
	return params.Get(key)
}

// listen registers a DOM event handler that suppresses the browser's
// default touch handling (scrolling, zooming).
func listen(target js.Value, event string, cb func(event js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		cb(args[0])
		return nil
	}), map[string]any{
		"passive": false,
	})
}

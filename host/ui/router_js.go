//go:build js

package ui

import (
	"net/url"
	"syscall/js"

	"github.com/google/uuid"
)

var (
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
	if params.Get("id") == "" {
		uid, _ := uuid.NewV6()
		SetParam("id", uid.String())
	}
}

// BaseURL returns the address the page was served from. The touch pad is
// served from the pad/ subdirectory.
func BaseURL() string {
	return location.Get("origin").String() + location.Get("pathname").String()
}

func URLOpen(u string) {
	window.Call("open", u)
}

func GetParam(key string) string {
	return params.Get(key)
}

// SetParam stores key in the page address, so that a reload keeps the
// same pairing id.
func SetParam(key, value string) {
	params.Set(key, value)
	location.Set("search", params.Encode())
}

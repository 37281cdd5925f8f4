//go:build js

package main

import (
	"context"
	"encoding/json"
	"log"
	"syscall/js"
	"time"

	"github.com/google/uuid"
	"github.com/nobonobo/rtcconnect/node"

	"github.com/jim-ec/hello-orbit/pad"
	"github.com/jim-ec/hello-orbit/schema"
)

type Application struct {
	uid  string
	name string
	dest string
	node *node.Node

	tracker *pad.Tracker
	keys    pad.Keys
}

func NewApplication() *Application {
	uid, _ := uuid.NewV6()
	name := GetParam("name")
	if name == "" {
		name = "pad-" + uid.String()[:4]
	}
	return &Application{
		uid:     uid.String(),
		name:    name,
		dest:    GetParam("dest"),
		node:    node.New(uid.String()),
		tracker: pad.NewTracker(),
	}
}

func (app *Application) Connect(ctx context.Context) error {
	return app.node.Connect(ctx, app.dest)
}

func (app *Application) Close() error {
	return app.node.Close()
}

func (app *Application) send(input schema.Input) {
	input.ID = app.uid
	input.Name = app.name
	data, err := json.Marshal(input)
	if err != nil {
		log.Println("failed to encode input:", err)
		return
	}
	app.node.Publish(context.Background(), app.dest, "input", data)
}

func (app *Application) Run() {
	surface := document.Call("getElementById", "surface")

	listen(surface, "touchstart", func(event js.Value) {
		changed := event.Get("changedTouches")
		for i := 0; i < changed.Length(); i++ {
			touch := changed.Index(i)
			app.tracker.Start(touch.Get("identifier").Int(), touchPoint(touch))
		}
	})
	listen(surface, "touchmove", func(event js.Value) {
		changed := event.Get("changedTouches")
		positions := make(map[int]schema.Point, changed.Length())
		for i := 0; i < changed.Length(); i++ {
			touch := changed.Index(i)
			positions[touch.Get("identifier").Int()] = touchPoint(touch)
		}
		for _, input := range app.tracker.Move(positions) {
			app.send(input)
		}
	})
	touchEnd := func(event js.Value) {
		changed := event.Get("changedTouches")
		for i := 0; i < changed.Length(); i++ {
			app.tracker.End(changed.Index(i).Get("identifier").Int())
		}
	}
	listen(surface, "touchend", touchEnd)
	listen(surface, "touchcancel", touchEnd)

	for _, key := range []string{schema.KeyForward, schema.KeyBack, schema.KeyLeft, schema.KeyRight} {
		button := document.Call("getElementById", "key-"+key)
		if !button.Truthy() {
			log.Println("missing key button:", key)
			continue
		}
		listen(button, "touchstart", func(js.Value) {
			if app.keys.Press(key) {
				app.send(app.keys.Input())
			}
		})
		listen(button, "touchend", func(js.Value) {
			if app.keys.Release(key) {
				app.send(app.keys.Input())
			}
		})
	}

	app.send(schema.Input{Kind: schema.KindHello})

	// Held keys expire on the host when the pad goes quiet.
	for range time.Tick(time.Second) {
		if app.keys.Held() {
			app.send(app.keys.Input())
		}
	}
}

func touchPoint(touch js.Value) schema.Point {
	return schema.Point{
		X: touch.Get("clientX").Float(),
		Y: touch.Get("clientY").Float(),
	}
}

func main() {
	app := NewApplication()
	for range 3 {
		err := app.Connect(context.Background())
		if err == nil {
			break
		}
		log.Println(err)
		time.Sleep(5 * time.Second)
	}
	defer app.Close()

	document.Call("getElementById", "message").Set("innerText", app.name)
	go app.Run()
	select {}
}

//go:build !js

package ui

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

func BaseURL() string {
	return "https://jim-ec.github.io/hello-orbit/"
}

func URLOpen(u string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	case "darwin":
		cmd = exec.Command("open", u)
	case "linux":
		cmd = exec.Command("xdg-open", u)
	default:
		log.Println(fmt.Errorf("unsupported OS: %s", runtime.GOOS))
		return
	}
	if err := cmd.Start(); err != nil {
		log.Println("failed to open url:", err)
	}
}

func GetParam(key string) string {
	return ""
}

func SetParam(key, value string) {
}

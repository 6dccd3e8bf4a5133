//go:build (linux || darwin || windows) && !test

package shell

import (
	xclipboard "golang.design/x/clipboard"
)

func clipboardInit() error {
	return xclipboard.Init()
}

func clipboardRead() []byte {
	return xclipboard.Read(xclipboard.FmtText)
}

func clipboardWrite(data []byte) {
	xclipboard.Write(xclipboard.FmtText, data)
}

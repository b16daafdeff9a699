// Package iocli is the terminal input and output of the canvasync CLI.
package iocli

// IO is everything a command needs from the terminal.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/iw2rmb/lite/editor"
	"github.com/iw2rmb/lite/script"
)

// runREPL reads expressions line by line and evaluates them in the editor's
// persistent global environment, so let bindings and bind-key registrations
// survive between lines.
func runREPL(ed *editor.Editor) {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	fmt.Println("lite repl, ctrl+d to exit")
	for {
		src, err := rl.Prompt("lite> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		rl.AppendHistory(src)

		v, err := ed.Eval(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(script.Display(v))
		if ed.Quitting() {
			return
		}
	}
}

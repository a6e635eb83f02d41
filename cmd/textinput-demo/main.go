// Command textinput-demo hosts a textinput.TextInput in a terminal so
// its editing, selection, and dispatch behavior can be exercised
// interactively. Press Esc to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textinput"
	"github.com/dshills/textinput/clipboard"
)

func main() {
	os.Exit(run())
}

func run() int {
	singleLine := flag.Bool("single", false, "single-line input")
	content := flag.String("content", "hello\nworld", "initial content")
	maxLength := flag.Int("maxlength", -1, "maximum length in UTF-16 code units (-1 for none)")
	mac := flag.Bool("mac", false, "force Mac keyboard conventions")
	flag.Parse()

	lines := textinput.LinesMultiple
	if *singleLine {
		lines = textinput.LinesSingle
	}
	platform := textinput.DefaultPlatform()
	if *mac {
		platform = textinput.PlatformMac
	}

	input := textinput.New(lines, *content, clipboard.System{},
		textinput.WithMaxLength(*maxLength),
		textinput.WithPlatform(platform),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	lastReaction := textinput.Nothing
	for {
		draw(screen, input, lastReaction)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return 0
			}
			kev, ok := translateKey(ev)
			if !ok {
				continue
			}
			lastReaction = input.HandleKeydown(kev)
		}
	}
}

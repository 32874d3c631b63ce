package liftoff

import (
	"fmt"
	"io"
)

const countdownFrom = 3

// Countdown writes "3!" down to "1!" and then the liftoff line.
func Countdown(w io.Writer) {
	for n := countdownFrom; n >= 1; n-- {
		fmt.Fprintf(w, "%d!\n", n)
	}
	fmt.Fprintln(w, "LIFTOFF!!!")
}

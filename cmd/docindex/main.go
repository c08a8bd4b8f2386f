package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/docindex/pkg/core"
)

func main() {
	Execute()
}

// printError writes err to w. Validation failures list every message on
// its own line.
func printError(w io.Writer, err error) {
	if msgs := core.ValidationMessages(err); len(msgs) > 0 {
		fmt.Fprintf(w, "%v:\n", core.ErrValidation)
		for _, msg := range msgs {
			fmt.Fprintf(w, "  %s\n", msg)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// errSilent marks a failure that was already reported to the user.
var errSilent = errors.New("failed")

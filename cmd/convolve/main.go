// Command convolve sharpens or blurs an image at kernel radius 1 and 2 and
// saves [original | radius 1 | radius 2] side by side.
//
// Usage:
//
//	convolve photo.jpg --sharpen t
//	convolve photo.jpg --sharpen f --out images/blur.png --labels
//	convolve                      # prompts for the path and mode
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

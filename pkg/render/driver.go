package render

import (
	"sync"

	"github.com/kestrelwing/raylang/pkg/scene"
	"github.com/kestrelwing/raylang/pkg/tracer"
)

// Render dispatches T worker goroutines over horizontal bands of the
// image, each computing tracer.TracePixel for its own rows into a
// disjoint region of a single pre-allocated buffer, then blocks until
// every worker has joined. There are no suspension points within a
// worker and no locking on the render path: each goroutine only ever
// touches the rows its band owns, and the prepared Scene is read-only
// for the render's duration. Image assembly needs no separate
// concatenation step because every worker already writes into its
// final position in the shared buffer.
func Render(s *scene.Scene) *Image {
	img := NewImage(s.Width, s.Height)

	threads := s.Threads
	if threads < 1 {
		threads = 1
	}
	bandHeight := s.Height / threads

	var wg sync.WaitGroup
	wg.Add(threads)
	for t := 0; t < threads; t++ {
		yStart := t * bandHeight
		yEnd := yStart + bandHeight
		if t == threads-1 {
			yEnd = s.Height // the last band absorbs H mod T
		}
		go func(yStart, yEnd int) {
			defer wg.Done()
			renderBand(s, img, yStart, yEnd)
		}(yStart, yEnd)
	}
	wg.Wait()

	return img
}

func renderBand(s *scene.Scene, img *Image, yStart, yEnd int) {
	rt := tracer.New(s)
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < s.Width; x++ {
			img.SetPixel(x, y, rt.TracePixel(x, y).ToRGB())
		}
	}
}

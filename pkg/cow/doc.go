// Package cow provides a reference-counted, copy-on-write value handle.
//
// A Box holds one value and the number of handles attached to it. A Handle
// gives value semantics over a possibly shared Box: copies attach to the
// same box, reads never copy, and Write first splits the handle off onto a
// private duplicate when the box is shared.
//
//	h1 := cow.New(types.NewPoint(1, 2))
//	h2 := h1.Copy()                        // shares h1's box
//	h1.Write(func(p *types.Point) { p.SetX(5) })
//	// h1 reads (5, 2) from a new box, h2 still reads (1, 2)
//	h1.Release()
//	h2.Release()                           // frees the original box
//
// Counts are plain integers. A handle, and every handle sharing its box,
// must be confined to one goroutine.
package cow

package cow

// recorder is a Tracker that keeps every event for assertions.
type recorder struct {
	allocated  []string
	duplicated [][2]string
	freed      []string
}

func (r *recorder) Allocated(id string)        { r.allocated = append(r.allocated, id) }
func (r *recorder) Duplicated(src, dst string) { r.duplicated = append(r.duplicated, [2]string{src, dst}) }
func (r *recorder) Freed(id string)            { r.freed = append(r.freed, id) }

// freeCount returns how many times id was freed.
func (r *recorder) freeCount(id string) int {
	n := 0
	for _, f := range r.freed {
		if f == id {
			n++
		}
	}
	return n
}

// live returns the number of allocated boxes not yet freed.
func (r *recorder) live() int {
	return len(r.allocated) - len(r.freed)
}

package errhandling

import (
	"errors"
	"fmt"
	"io"
)

// ── defer and named results ──────────────────────────────────────────────────
//
// `return X` assigns X to the result slot first, then runs deferred calls.
// A deferred func that writes a NAMED result changes what the caller gets;
// one that writes a local variable does not.

func deferOnLocal() int {
	x := 5
	defer func() { x *= 2 }() // the result slot already holds 5
	return x
}

func deferOnNamed() (result int) {
	defer func() { result *= 2 }()
	return 5 // result = 5, then the deferred call doubles it
}

var ErrNoRecord = errors.New("no record")

// lookupRecord annotates every error it returns in one place.
func lookupRecord(id int) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("lookupRecord(%d): %w", id, err)
		}
	}()

	if id <= 0 {
		return fmt.Errorf("invalid id %d", id)
	}
	if id > 100 {
		return ErrNoRecord
	}
	return nil
}

// batch collects writes that are applied on Commit or dropped on Rollback.
type batch struct {
	w       io.Writer
	pending []string
	applied []string
}

func (b *batch) Put(s string) { b.pending = append(b.pending, s) }

func (b *batch) Commit() error {
	b.applied = append(b.applied, b.pending...)
	fmt.Fprintf(b.w, "    commit %d write(s)\n", len(b.pending))
	b.pending = nil
	return nil
}

func (b *batch) Rollback() {
	fmt.Fprintf(b.w, "    rollback %d write(s)\n", len(b.pending))
	b.pending = nil
}

// inBatch commits when fn succeeds and rolls back when it fails. The named
// err lets the deferred call see fn's result and report Commit's.
func inBatch(b *batch, fn func(*batch) error) (err error) {
	defer func() {
		if err != nil {
			b.Rollback()
			return
		}
		err = b.Commit()
	}()
	return fn(b)
}

// closeEach closes every resource as soon as its iteration ends, by moving
// the defer into a helper. A defer directly in the loop would wait for the
// whole function to return.
func closeEach(w io.Writer, names []string) (opened, maxOpen int) {
	open := 0
	for _, name := range names {
		func() {
			open++
			opened++
			maxOpen = max(maxOpen, open)
			defer func() { open-- }()
			fmt.Fprintf(w, "    using %s (open: %d)\n", name, open)
		}()
	}
	return opened, maxOpen
}

func demoDefer(w io.Writer) {
	fmt.Fprintln(w, "  defer on a local:", deferOnLocal())
	fmt.Fprintln(w, "  defer on a named result:", deferOnNamed())

	for _, id := range []int{-1, 200, 42} {
		if err := lookupRecord(id); err != nil {
			fmt.Fprintf(w, "  lookupRecord(%d) → %v\n", id, err)
		} else {
			fmt.Fprintf(w, "  lookupRecord(%d) → ok\n", id)
		}
	}
	fmt.Fprintln(w, "  errors.Is through the wrap:", errors.Is(lookupRecord(200), ErrNoRecord))

	b := &batch{w: w}
	_ = inBatch(b, func(b *batch) error {
		b.Put("a")
		b.Put("b")
		return nil
	})
	err := inBatch(b, func(b *batch) error {
		b.Put("c")
		return errors.New("constraint violation")
	})
	fmt.Fprintf(w, "  batch error: %v, applied: %v\n", err, b.applied)

	opened, maxOpen := closeEach(w, []string{"one", "two", "three"})
	fmt.Fprintf(w, "  opened %d, never more than %d at once\n", opened, maxOpen)
}

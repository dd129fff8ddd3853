package lifetimes

import (
	"fmt"
	"io"
	"iter"
	"runtime"
	"strings"
	"time"
	"weak"
)

// ── Closures ─────────────────────────────────────────────────────────────────

// registry keeps callbacks, and everything they capture, alive until
// they are removed.
type registry struct {
	callbacks map[string]func() string
}

func (r *registry) add(name string, f func() string) {
	if r.callbacks == nil {
		r.callbacks = make(map[string]func() string)
	}
	r.callbacks[name] = f
}

func (r *registry) remove(name string) { delete(r.callbacks, name) }

func demoClosures(w io.Writer) {
	var reg registry
	{
		payload := strings.Repeat("data", 4)
		reg.add("dump", func() string { return payload })
	}
	fmt.Fprintln(w, "  payload outlives its block through the closure:", reg.callbacks["dump"]())
	reg.remove("dump")
	fmt.Fprintln(w, "  after remove, callbacks:", len(reg.callbacks))
}

// ── Weak pointers ────────────────────────────────────────────────────────────

type blob struct {
	name string
	data []byte
}

// cleanupWait bounds how long the demo waits for the runtime to run a cleanup.
const cleanupWait = 200 * time.Millisecond

func demoWeak(w io.Writer) {
	b := &blob{name: "cache entry", data: make([]byte, 1<<10)}
	wp := weak.Make(b)
	fmt.Fprintln(w, "  weak pointer resolves while b is reachable:", wp.Value() == b)

	done := make(chan string, 1)
	runtime.AddCleanup(b, func(name string) { done <- name }, b.name)
	runtime.KeepAlive(b)
	b = nil

	// Collection timing is up to the runtime.
	runtime.GC()
	select {
	case name := <-done:
		fmt.Fprintf(w, "  cleanup ran for %q, weak value nil: %v\n", name, wp.Value() == nil)
	case <-time.After(cleanupWait):
		fmt.Fprintln(w, "  cleanup not run yet; the GC decides when")
	}
	fmt.Fprintln(w, "  weak.Pointer never keeps its target alive")
}

// ── Practical patterns ───────────────────────────────────────────────────────

// Cache computes the upper-cased form of data once.
type Cache struct {
	data      string
	processed *string
	computed  int
}

func NewCache(data string) *Cache { return &Cache{data: data} }

func (c *Cache) Original() string { return c.data }

func (c *Cache) Processed() string {
	if c.processed == nil {
		p := strings.ToUpper(c.data)
		c.processed = &p
		c.computed++
	}
	return *c.processed
}

// Words yields views into text without copying.
type Words struct {
	text string
}

func (ws Words) All() iter.Seq[string] { return strings.FieldsSeq(ws.text) }

func demoPractical(w io.Writer) {
	c := NewCache("hello world")
	fmt.Fprintln(w, "  original:", c.Original())
	fmt.Fprintln(w, "  processed:", c.Processed())
	fmt.Fprintln(w, "  again (cached):", c.Processed(), "computed", c.computed, "time(s)")

	fmt.Fprintln(w, "  words:")
	for word := range (Words{text: "Go is a systems programming language"}).All() {
		fmt.Fprintln(w, "    -", word)
	}
}

// ── Best practices ───────────────────────────────────────────────────────────

func demoBestPractices(w io.Writer) {
	fmt.Fprint(w, `
  1. Let the compiler place values; check with -gcflags=-m before tuning.
  2. Copy small pieces out of large strings or slices you keep long-term.
  3. Drop references you no longer need: delete map keys, nil out fields.
  4. Prefer owning values in long-lived structs over views into buffers.
  5. Use weak pointers for caches that must not pin their entries.
  6. Never rely on cleanups or finalizers for correctness.
`)
}

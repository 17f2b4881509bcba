package ladder

// walker encapsulates mutable BFS state for one Generate call.
type walker struct {
	dict    *Dictionary
	end     string
	queue   [][]string // complete partial ladders, shortest first
	visited map[string]bool
}

// Generate returns a shortest word ladder from begin to end through dict.
//
// begin need not be in dict. When begin == end the result is []string{begin}
// without looking at dict. Checking that end is a dictionary word is the
// caller's job; if it is not, no ladder can be found.
//
// Returns nil when no ladder exists, including for a nil or empty dictionary.
func Generate(begin, end string, dict *Dictionary) []string {
	if begin == end {
		return []string{begin}
	}
	if dict.Len() == 0 {
		return nil
	}

	w := &walker{
		dict:    dict,
		end:     end,
		visited: make(map[string]bool, dict.Len()+1),
	}
	w.enqueue([]string{begin})

	return w.loop()
}

// enqueue marks the ladder's last word visited and adds the ladder to the queue.
func (w *walker) enqueue(l []string) {
	w.visited[l[len(l)-1]] = true
	w.queue = append(w.queue, l)
}

// dequeue pops the oldest ladder.
func (w *walker) dequeue() []string {
	l := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]

	return l
}

// loop processes the queue until a ladder reaches end or the queue is empty.
func (w *walker) loop() []string {
	for len(w.queue) > 0 {
		if found := w.expand(w.dequeue()); found != nil {
			return found
		}
	}

	return nil
}

// expand extends l by every unvisited dictionary word adjacent to its last
// word, in dictionary order. Returns the first extension ending at w.end.
func (w *walker) expand(l []string) []string {
	last := l[len(l)-1]
	for _, word := range w.dict.Words() {
		if w.visited[word] || !IsAdjacent(last, word) {
			continue
		}

		next := make([]string, len(l)+1)
		copy(next, l)
		next[len(l)] = word
		if word == w.end {
			return next
		}
		w.enqueue(next)
	}

	return nil
}

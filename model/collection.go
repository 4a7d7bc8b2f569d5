package model

// Collection is an insertion-ordered mapping from label to its single best
// fitted model. Order matters: recognition iterates labels in this order and
// resolves score ties in favor of the earliest one.
//
// The zero value is not usable; construct with NewCollection.
type Collection struct {
	labels  []string
	byLabel map[string]Model
}

// NewCollection returns an empty, ready-to-use Collection.
func NewCollection() *Collection {
	return &Collection{byLabel: make(map[string]Model)}
}

// Put registers a label's model, appending the label on first insertion.
// Re-inserting an existing label replaces its model but keeps its position.
// Nil models are ignored: an unmodeled label has no place in the collection.
func (c *Collection) Put(label string, m Model) {
	if m == nil {
		return
	}
	if _, ok := c.byLabel[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.byLabel[label] = m
}

// Get returns the model for label, or (nil, false) when absent.
func (c *Collection) Get(label string) (Model, bool) {
	m, ok := c.byLabel[label]

	return m, ok
}

// Labels returns the labels in insertion order. The slice is a copy.
func (c *Collection) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

// Len reports the number of modeled labels.
func (c *Collection) Len() int { return len(c.labels) }

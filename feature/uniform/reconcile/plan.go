package reconcile

import (
	"fmt"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/models"
)

// line is a validated request item.
type line struct {
	index    int
	desc     catalog.Descriptor
	quantity int
	status   models.ItemStatus
}

// normalize validates every item and reports all problems at once.
func normalize(items []Item) ([]line, error) {
	batch := &errs.BatchError{}
	lines := make([]line, 0, len(items))

	for i, it := range items {
		d, err := catalog.NormalizeDescriptor(it.Category, it.Type, it.Size)
		if err != nil {
			batch.Add(i, err)
			continue
		}

		ok := true
		status, valid := models.ParseItemStatus(it.Status)
		if !valid {
			batch.Add(i, errs.NewValidationError("status", it.Status,
				fmt.Sprintf("unknown status %q; allowed: Available, Not Available, Missing", it.Status)))
			ok = false
		}
		if it.Quantity < 0 {
			batch.Add(i, errs.NewValidationError("quantity", it.Quantity, "quantity must not be negative"))
			ok = false
		}
		if d.Size == "" && catalog.RequiresSize(d.Category, d.Type) {
			batch.Add(i, errs.NewValidationError("size", it.Size, fmt.Sprintf("size is required for %s", d.Type)))
			ok = false
		}
		if !ok {
			continue
		}

		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, line{index: i, desc: d, quantity: qty, status: status})
	}

	if err := batch.ErrOrNil(); err != nil {
		return nil, err
	}
	return lines, nil
}

// entry is the summed quantity of one descriptor key.
type entry struct {
	desc     catalog.Descriptor
	quantity int
	status   models.ItemStatus
	index    int
	stored   *models.IssuedItem
}

// ledger keeps entries in first-seen order.
type ledger struct {
	keys  []string
	byKey map[string]*entry
}

func newLedger() *ledger {
	return &ledger{byKey: make(map[string]*entry)}
}

func (l *ledger) get(key string) *entry {
	return l.byKey[key]
}

func (l *ledger) quantity(key string) int {
	if e := l.byKey[key]; e != nil {
		return e.quantity
	}
	return 0
}

func (l *ledger) add(e entry) *entry {
	key := e.desc.Key()
	if cur, ok := l.byKey[key]; ok {
		cur.quantity += e.quantity
		if e.status != "" && cur.stored == nil {
			cur.status = e.status
		}
		return cur
	}
	l.keys = append(l.keys, key)
	l.byKey[key] = &e
	return &e
}

// sizeChangeOf returns the old entry a new descriptor replaces: same category
// and type, different size, and no longer requested itself.
func (l *ledger) sizeChangeOf(d catalog.Descriptor, requested *ledger) *entry {
	for _, key := range l.keys {
		e := l.byKey[key]
		if e.desc.LogicalKey() != d.LogicalKey() || key == d.Key() {
			continue
		}
		if requested.get(key) == nil {
			return e
		}
	}
	return nil
}

func sumRequested(lines []line) *ledger {
	l := newLedger()
	for _, ln := range lines {
		l.add(entry{desc: ln.desc, quantity: ln.quantity, status: ln.status, index: ln.index})
	}
	return l
}

func sumStored(rec *models.UniformRecord) *ledger {
	l := newLedger()
	if rec == nil {
		return l
	}
	for i := range rec.Items {
		it := &rec.Items[i]
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		status, ok := models.ParseItemStatus(string(it.Status))
		if !ok || status == "" {
			status = models.ItemAvailable
		}
		l.add(entry{
			desc:     catalog.Tolerant(it.Category, it.Type, it.Size),
			quantity: qty,
			status:   status,
			index:    -1,
			stored:   it,
		})
	}
	return l
}

// previous returns the stored entry a requested entry continues, if any.
func previous(n *entry, old, requested *ledger) *entry {
	if o := old.get(n.desc.Key()); o != nil {
		return o
	}
	return old.sizeChangeOf(n.desc, requested)
}

// effectiveStatus is the explicit status, else the continued one, else Available.
func effectiveStatus(n *entry, prev *entry) models.ItemStatus {
	if n.status != "" {
		return n.status
	}
	if prev != nil {
		return prev.status
	}
	return models.ItemAvailable
}

// adjustment is a stock movement before it is matched to a record.
type adjustment struct {
	index  int
	desc   catalog.Descriptor
	amount int
}

// diff derives restores and deductions from the summed old and new sets.
// Untracked items never move stock. New units are not deducted only when the
// incoming item itself is marked Missing or Not Available; a status carried
// over from the stored entry does not exempt them, since the stored units are
// restored regardless of their status.
func diff(old, requested *ledger) (restores, deductions []adjustment) {
	for _, key := range old.keys {
		o := old.get(key)
		if !catalog.TracksStock(o.desc.Type) {
			continue
		}
		if n := requested.quantity(key); o.quantity > n {
			restores = append(restores, adjustment{index: -1, desc: o.desc, amount: o.quantity - n})
		}
	}

	for _, key := range requested.keys {
		n := requested.get(key)
		if !catalog.TracksStock(n.desc.Type) {
			continue
		}
		o := old.quantity(key)
		if n.quantity <= o {
			continue
		}
		if n.status != "" && n.status != models.ItemAvailable {
			continue
		}
		deductions = append(deductions, adjustment{index: n.index, desc: n.desc, amount: n.quantity - o})
	}
	return restores, deductions
}

package fingertree

// concat appends t2 to t1.
func concat[V any](t1, t2 fingerTree[V]) fingerTree[V] {
	switch a := t1.force().(type) {
	case *empty[V]:
		return t2
	case *single[V]:
		return t2.addFirst(a.value)
	case *deep[V]:
		switch b := t2.force().(type) {
		case *empty[V]:
			return a
		case *single[V]:
			return a.addLast(b.value)
		case *deep[V]:
			return app3(a, nil, b)
		}
	}
	panic(ErrInvariant)
}

// app3 concatenates t1, the items ts and t2. ts are payloads of the level
// of t1 and t2.
func app3[V any](t1 fingerTree[V], ts []any, t2 fingerTree[V]) fingerTree[V] {
	t1, t2 = t1.force(), t2.force()
	if t1.isEmpty() {
		return prependAll(t2, ts)
	}
	if t2.isEmpty() {
		return appendAll(t1, ts)
	}
	if s, ok := t1.(*single[V]); ok {
		return prependAll(t2, ts).addFirst(s.value)
	}
	if s, ok := t2.(*single[V]); ok {
		return appendAll(t1, ts).addLast(s.value)
	}
	a, b := t1.(*deep[V]), t2.(*deep[V])
	m := a.m
	ns := nodes(m, joined(a.right.items, ts, b.left.items))
	tracer().Debugf("concat: regrouped %d+%d+%d items into %d nodes",
		a.right.len(), len(ts), b.left.len(), len(ns))
	mid := suspend(m.inner, func() fingerTree[V] {
		return app3(a.mid, ns, b.mid)
	})
	return newDeep(m, a.left, mid, b.right)
}

// prependAll adds xs to the front of t, keeping the order of xs.
func prependAll[V any](t fingerTree[V], xs []any) fingerTree[V] {
	for i := len(xs) - 1; i >= 0; i-- {
		t = t.addFirst(xs[i])
	}
	return t
}

// appendAll adds xs to the end of t, keeping the order of xs.
func appendAll[V any](t fingerTree[V], xs []any) fingerTree[V] {
	for _, x := range xs {
		t = t.addLast(x)
	}
	return t
}

// fromItems builds a tree of the level of m from items.
func fromItems[V any](m *monoid[V], items []any) fingerTree[V] {
	return prependAll[V](newEmpty(m), items)
}

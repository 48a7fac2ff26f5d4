package fingertree

// splitTree decomposes a non-empty tree t into (l, x, r) such that x is the
// payload at which p first holds for acc plus the running measure.
// The split point must lie within t, i.e. p must hold for acc + t.measure().
func splitTree[V any](t fingerTree[V], p func(V) bool, acc V) (fingerTree[V], any, fingerTree[V]) {
	switch t := t.force().(type) {
	case *single[V]:
		return newEmpty(t.m), t.value, newEmpty(t.m)
	case *deep[V]:
		m := t.m
		accL := m.add(acc, t.left.measure)
		if p(accL) {
			l, x, r := t.left.split(m, p, acc)
			return fromItems(m, l), x, collapseLeft(m, r, t.mid, t.right)
		}
		accM := m.add(accL, t.mid.measure())
		if p(accM) {
			ml, y, mr := splitTree(t.mid, p, accL)
			n, ok := y.(*node[V])
			assertThat(ok, ErrInvariant, "split point in middle tree is not a node: %T", y)
			l, x, r := n.toDigit().split(m, p, m.add(accL, ml.measure()))
			return collapseRight(m, t.left, ml, l), x, collapseLeft(m, r, mr, t.right)
		}
		l, x, r := t.right.split(m, p, accM)
		return collapseRight(m, t.left, t.mid, l), x, fromItems(m, r)
	}
	panic(ErrEmptyTree)
}

// collapseLeft creates a tree from a possibly empty left remainder pr, a
// middle tree and a right digit.
func collapseLeft[V any](m *monoid[V], pr []any, mid fingerTree[V], right digit[V]) fingerTree[V] {
	if len(pr) > 0 {
		return newDeep(m, newDigit(m, pr...), mid, right)
	}
	if mid.isEmpty() {
		return fromItems(m, right.items)
	}
	return pullLeft(m, mid, right)
}

// collapseRight creates a tree from a left digit, a middle tree and a
// possibly empty right remainder sf.
func collapseRight[V any](m *monoid[V], left digit[V], mid fingerTree[V], sf []any) fingerTree[V] {
	if len(sf) > 0 {
		return newDeep(m, left, mid, newDigit(m, sf...))
	}
	if mid.isEmpty() {
		return fromItems(m, left.items)
	}
	return pullRight(m, left, mid)
}

// lookupTree finds the payload at which p first holds, like splitTree, but
// without building the two halves. It returns the payload and the
// accumulated measure of everything before it.
func lookupTree[V any](t fingerTree[V], p func(V) bool, acc V) (any, V) {
	switch t := t.force().(type) {
	case *single[V]:
		return t.value, acc
	case *deep[V]:
		m := t.m
		accL := m.add(acc, t.left.measure)
		if p(accL) {
			return lookupDigit(m, t.left, p, acc)
		}
		accM := m.add(accL, t.mid.measure())
		if p(accM) {
			y, acc := lookupTree(t.mid, p, accL)
			n, ok := y.(*node[V])
			assertThat(ok, ErrInvariant, "lookup in middle tree hit a non-node: %T", y)
			return lookupDigit(m, n.toDigit(), p, acc)
		}
		return lookupDigit(m, t.right, p, accM)
	}
	panic(ErrEmptyTree)
}

func lookupDigit[V any](m *monoid[V], d digit[V], p func(V) bool, acc V) (any, V) {
	for _, x := range d.items[:len(d.items)-1] {
		next := m.add(acc, m.of(x))
		if p(next) {
			return x, acc
		}
		acc = next
	}
	return d.last(), acc
}

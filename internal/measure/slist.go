package measure

import "unsafe"

type node[T any] struct {
	val  T
	next *node[T]
}

// slist is a singly linked list that appends at the tail.
type slist[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

func (l *slist[T]) pushBack(v T) {
	nd := &node[T]{val: v}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
}

func (l *slist[T]) clear() {
	l.head, l.tail, l.n = nil, nil, 0
}

func (l *slist[T]) len() int { return l.n }

func (l *slist[T]) nodeSize() int {
	var nd node[T]
	return int(unsafe.Sizeof(nd))
}

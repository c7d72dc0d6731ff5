// Package stack provides a singly-linked, last-in-first-out container.
// A Stack is not safe for concurrent use.
package stack

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a LIFO sequence of values. The zero value is an empty stack.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.head == nil
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
	s.size++
}

// Pop removes and returns the top element. The boolean is false if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	top := s.head
	s.head = top.next
	top.next = nil
	s.size--
	return top.value, true
}

// Peek returns the top element without removing it. The boolean is false if
// the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// Reversed drains s into a new stack, so the old top ends up at the bottom.
// s is empty afterwards.
func (s *Stack[T]) Reversed() *Stack[T] {
	result := New[T]()
	for {
		value, ok := s.Pop()
		if !ok {
			break
		}
		result.Push(value)
	}
	return result
}

// All iterates from top to bottom without modifying the stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clear releases every element, unlinking nodes one at a time.
func (s *Stack[T]) Clear() {
	cursor := s.head
	s.head = nil
	s.size = 0
	for cursor != nil {
		next := cursor.next
		cursor.next = nil
		cursor = next
	}
}

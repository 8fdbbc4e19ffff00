package list

import "golang.org/x/exp/constraints"

// Equal 判断两个链表是否相等：长度相同且对应位置的元素都相等
// 长度不同直接返回false，不再比较元素
func Equal[T comparable](lhs, rhs *List[T]) bool {
	if lhs == nil || rhs == nil {
		panic("list is nil")
	}
	if lhs.size != rhs.size {
		return false
	}
	b := rhs.head.next
	for a := lhs.head.next; a != nil; a = a.next {
		if a.value != b.value {
			return false
		}
		b = b.next
	}
	return true
}

// EqualFunc 与Equal相同，使用自定义的相等函数比较元素
func EqualFunc[T any](lhs, rhs *List[T], eq func(a, b T) bool) bool {
	if lhs == nil || rhs == nil {
		panic("list is nil")
	}
	if lhs.size != rhs.size {
		return false
	}
	b := rhs.head.next
	for a := lhs.head.next; a != nil; a = a.next {
		if !eq(a.value, b.value) {
			return false
		}
		b = b.next
	}
	return true
}

// Compare 按字典序比较两个链表
// lhs在第一个不同的位置上更小时返回-1，更大时返回1，两条链完全相同返回0
// 公共前缀相同时，较短的链表更小
// 小于、大于等关系都可以由返回值的符号得到
func Compare[T constraints.Ordered](lhs, rhs *List[T]) int {
	if lhs == nil || rhs == nil {
		panic("list is nil")
	}
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		if a.value < b.value {
			return -1
		}
		if b.value < a.value {
			return 1
		}
		a, b = a.next, b.next
	}
	switch {
	case a != nil:
		return 1
	case b != nil:
		return -1
	}
	return 0
}

// CompareFunc 与Compare相同，使用自定义的三路比较函数
// 返回cmp给出的第一个非零结果，所有位置都为零时按长度比较
func CompareFunc[T any](lhs, rhs *List[T], cmp func(a, b T) int) int {
	if lhs == nil || rhs == nil {
		panic("list is nil")
	}
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		if c := cmp(a.value, b.value); c != 0 {
			return c
		}
		a, b = a.next, b.next
	}
	switch {
	case a != nil:
		return 1
	case b != nil:
		return -1
	}
	return 0
}

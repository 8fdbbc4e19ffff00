package list

import (
	"fmt"
	"strings"
)

// Expected 用于值匹配的自定义函数，可以被传到Contains等方法中
type Expected[T any] func(v T) bool

// Consumer 用于遍历的函数，返回true表示继续遍历，可以在Consumer中调用Expected
type Consumer[T any] func(i int, v T) bool

// node 链表的一个节点
// next指向下一个节点，nil表示已经到达链尾
type node[T any] struct {
	value T
	next  *node[T]
}

// List 带哨兵头节点的单向链表
// 哨兵节点不储存元素，head.next指向第一个真实节点
// List的零值是一个可以直接使用的空链表，size始终等于真实节点的个数
type List[T any] struct {
	head node[T]
	size int
}

// Make 构造器，按传入顺序构造链表
func Make[T any](vals ...T) *List[T] {
	l := &List[T]{}
	l.create(vals)
	return l
}

// create 将vals按顺序追加到链表中，只能对刚构造出来的空链表调用
func (l *List[T]) create(vals []T) {
	prev := &l.head
	for _, v := range vals {
		prev.next = &node[T]{value: v}
		prev = prev.next
		l.size++
	}
}

// Len 返回链表的元素个数，时间复杂度O(1)
func (l *List[T]) Len() int {
	if l == nil {
		panic("list is nil")
	}
	return l.size
}

// IsEmpty 判断链表是否为空，时间复杂度O(1)
func (l *List[T]) IsEmpty() bool {
	if l == nil {
		panic("list is nil")
	}
	return l.head.next == nil
}

// PushFront 在链表头部插入元素，时间复杂度O(1)
func (l *List[T]) PushFront(val T) {
	if l == nil {
		panic("list is nil")
	}
	l.head.next = &node[T]{value: val, next: l.head.next}
	l.size++
}

// PopFront 删除链表头部的元素并返回其值
// 对空链表调用会panic
func (l *List[T]) PopFront() T {
	if l == nil {
		panic("list is nil")
	}
	if l.head.next == nil {
		panic("list is empty")
	}
	val := l.head.next.value
	l.EraseAfter(l.BeforeBegin())
	return val
}

// InsertAfter 在pos指向的位置之后插入元素，返回指向新元素的迭代器，时间复杂度O(1)
// pos必须指向本链表的节点或哨兵，指向链尾之后的迭代器会panic
// 先构造新节点，构造完成后才重新链接
func (l *List[T]) InsertAfter(pos Iterator[T], val T) Iterator[T] {
	if l == nil {
		panic("list is nil")
	}
	if pos.node == nil {
		panic("iterator out of range")
	}
	inserted := &node[T]{value: val, next: pos.node.next}
	pos.node.next = inserted
	l.size++
	return Iterator[T]{node: inserted}
}

// EraseAfter 删除pos指向位置之后的那个元素，返回指向被删元素下一个位置的迭代器，时间复杂度O(1)
// pos之后必须存在元素，否则panic
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if l == nil {
		panic("list is nil")
	}
	if pos.node == nil {
		panic("iterator out of range")
	}
	removed := pos.node.next
	if removed == nil {
		panic("no node follows iterator")
	}
	pos.node.next = removed.next
	// 断开被删节点，避免内存泄漏
	removed.next = nil
	l.size--
	return Iterator[T]{node: pos.node.next}
}

// Clear 清空链表，时间复杂度O(N)
func (l *List[T]) Clear() {
	if l == nil {
		panic("list is nil")
	}
	for l.head.next != nil {
		next := l.head.next.next
		l.head.next.next = nil
		l.head.next = next
	}
	l.size = 0
}

// Swap 交换两个链表的内容，时间复杂度O(1)
// 只交换哨兵的后继和size，指向真实节点的迭代器仍然有效，交换后逻辑上属于对方链表
func (l *List[T]) Swap(other *List[T]) {
	if l == nil || other == nil {
		panic("list is nil")
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Assign 将other的内容复制给本链表
// 先复制再交换，复制过程不影响本链表，自我赋值也是安全的
func (l *List[T]) Assign(other *List[T]) {
	if l == nil {
		panic("list is nil")
	}
	cp := other.Copy()
	l.Swap(cp)
}

// Copy 返回链表的一份独立拷贝，两条链不共享任何节点
func (l *List[T]) Copy() *List[T] {
	if l == nil {
		panic("list is nil")
	}
	cp := &List[T]{}
	prev := &cp.head
	for n := l.head.next; n != nil; n = n.next {
		prev.next = &node[T]{value: n.value}
		prev = prev.next
		cp.size++
	}
	return cp
}

// ForEach 从头至尾遍历链表
// 如果consumer返回false，结束遍历
func (l *List[T]) ForEach(consumer Consumer[T]) {
	if l == nil {
		panic("list is nil")
	}
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		goNext := consumer(i, n.value)
		if !goNext {
			break
		}
		i++
	}
}

// Contains 查看链表中是否有匹配的值
func (l *List[T]) Contains(expected Expected[T]) bool {
	contains := false
	l.ForEach(func(i int, v T) bool {
		if expected(v) {
			contains = true
			return false
		}
		return true
	})
	return contains
}

// RemoveByVal 从头至尾删除最多count个匹配的元素，返回删除的个数
// count不为正数时不限制删除个数
func (l *List[T]) RemoveByVal(expected Expected[T], count int) int {
	if l == nil {
		panic("list is nil")
	}
	removed := 0
	prev := &l.head
	for prev.next != nil {
		if expected(prev.next.value) {
			doomed := prev.next
			prev.next = doomed.next
			doomed.next = nil
			l.size--
			removed++
			if removed == count {
				break
			}
		} else {
			prev = prev.next
		}
	}
	return removed
}

// RemoveAllByVal 删除所有匹配的元素，返回删除的个数
func (l *List[T]) RemoveAllByVal(expected Expected[T]) int {
	return l.RemoveByVal(expected, 0)
}

// ToSlice 以切片形式返回链表的所有元素，顺序与链表一致
func (l *List[T]) ToSlice() []T {
	if l == nil {
		panic("list is nil")
	}
	slice := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		slice = append(slice, n.value)
	}
	return slice
}

// String 返回形如[v1 v2 v3]的字符串表示
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

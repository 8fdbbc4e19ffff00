package list

// Iterator 指向链表中某个位置的迭代器，可以读取和修改指向的元素
// 迭代器是小的值对象，可以直接用==比较，相等当且仅当指向同一个节点
// 零值迭代器与End()相等
type Iterator[T any] struct {
	node *node[T]
}

// Next 返回指向下一个位置的迭代器
// 对End()调用Next会panic
func (iter Iterator[T]) Next() Iterator[T] {
	if iter.node == nil {
		panic("iterator out of range")
	}
	return Iterator[T]{node: iter.node.next}
}

// Value 返回迭代器指向的元素
func (iter Iterator[T]) Value() T {
	if iter.node == nil {
		panic("iterator out of range")
	}
	return iter.node.value
}

// Set 覆盖迭代器指向的元素
func (iter Iterator[T]) Set(val T) {
	if iter.node == nil {
		panic("iterator out of range")
	}
	iter.node.value = val
}

// Ptr 返回指向元素的指针，可以原地修改结构体类型的元素
func (iter Iterator[T]) Ptr() *T {
	if iter.node == nil {
		panic("iterator out of range")
	}
	return &iter.node.value
}

// Const 转换为只读迭代器，指向同一个位置
// 转换是单向的，只读迭代器不能再转换回Iterator
func (iter Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{node: iter.node}
}

// ConstIterator 只读迭代器，只能读取指向的元素
// 由CBegin等方法或Iterator.Const得到，比较规则与Iterator相同
type ConstIterator[T any] struct {
	node *node[T]
}

// Next 返回指向下一个位置的只读迭代器
// 对CEnd()调用Next会panic
func (iter ConstIterator[T]) Next() ConstIterator[T] {
	if iter.node == nil {
		panic("iterator out of range")
	}
	return ConstIterator[T]{node: iter.node.next}
}

// Value 返回迭代器指向的元素
func (iter ConstIterator[T]) Value() T {
	if iter.node == nil {
		panic("iterator out of range")
	}
	return iter.node.value
}

// Begin 返回指向第一个元素的迭代器，链表为空时与End()相等
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head.next}
}

// End 返回指向链尾之后位置的迭代器，不指向任何元素
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin 返回指向第一个元素之前位置的迭代器
// 它指向哨兵节点，只能作为InsertAfter和EraseAfter的锚点，不能读取元素
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{node: &l.head}
}

// CBegin 返回指向第一个元素的只读迭代器，链表为空时与CEnd()相等
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{node: l.head.next}
}

// CEnd 返回指向链尾之后位置的只读迭代器
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin 返回指向第一个元素之前位置的只读迭代器
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{node: &l.head}
}

package main

import (
	"fmt"

	"GoList/datastruct/list"
	"GoList/lib/logger"
)

// 链表的使用示例
// 1. 初始化日志
// 2. 演示构造、迭代、插入删除、拷贝和比较
func main() {
	// 初始化日志
	logger.Setup(&logger.Settings{
		Path:       "logs",
		Name:       "GoList",
		Ext:        "log",
		TimeFormat: "2006-01-02",
	})

	l := list.Make(3, 2, 1)
	l.PushFront(4)
	fmt.Println("初始链表:", l)

	// 迭代器遍历
	sum := 0
	for it := l.Begin(); it != l.End(); it = it.Next() {
		sum += it.Value()
	}
	fmt.Println("元素之和:", sum)

	// 在头部插入一个元素，再删除它后面的元素
	pos := l.InsertAfter(l.BeforeBegin(), 9)
	fmt.Println("插入9之后:", l)
	l.EraseAfter(pos)
	fmt.Println("删除9的后继之后:", l)

	// 拷贝是独立的，修改拷贝不影响原链表
	cp := l.Copy()
	cp.PopFront()
	fmt.Println("原链表:", l, "拷贝:", cp)

	// 字典序比较
	switch c := list.Compare(l, cp); {
	case c < 0:
		fmt.Println(l, "<", cp)
	case c > 0:
		fmt.Println(l, ">", cp)
	default:
		fmt.Println(l, "=", cp)
	}

	removed := l.RemoveAllByVal(func(v int) bool { return v%2 == 1 })
	logger.Info("删除了", removed, "个奇数，剩余", l)

	l.Clear()
	if l.IsEmpty() {
		logger.Info("链表已清空")
	}

	// 违反使用契约会触发panic
	defer func() {
		if r := recover(); r != nil {
			logger.Error("弹出空链表:", r)
		}
	}()
	l.PopFront()
}

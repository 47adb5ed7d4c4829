package toolutil

import (
	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// Stream 对切片做链式处理，Map/Take 这类需要新类型参数的操作写成函数
type Stream[T any] struct {
	data []T
}

func StreamOf[T any](data []T) Stream[T] {
	return Stream[T]{data}
}

func (s Stream[T]) ToSlice() []T {
	return s.data
}

func (s Stream[T]) Count() int {
	return len(s.data)
}

// Map 逐个转换，结果是新切片
func Map[T any, R any](s Stream[T], f func(T) R) Stream[R] {
	out := make([]R, 0, len(s.data))
	for _, v := range s.data {
		out = append(out, f(v))
	}
	return Stream[R]{out}
}

// Take 前 n 项，和原切片共用底层数组
func Take[T any](s Stream[T], n int) Stream[T] {
	return Stream[T]{s.data[:min(n, len(s.data))]}
}

// TakeSafe 同 Take，但返回深拷贝，元素里的切片也不共享
func TakeSafe[T any](s Stream[T], n int) Stream[T] {
	head := s.data[:min(n, len(s.data))]
	return Stream[T]{deepcopy.Copy(head).([]T)}
}

// Product 连乘，空流返回 1
func Product[T constraints.Integer](s Stream[T]) T {
	var product T = 1
	for _, v := range s.data {
		product *= v
	}
	return product
}

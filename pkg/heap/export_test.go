package heap

// Slots 暴露底层数组（含 0 号占位），只给测试检查堆性质用
func (h *BoundedHeap[T]) Slots() []T {
	return h.values
}

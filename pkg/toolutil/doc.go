// Package toolutil 提供文件读取和泛型流式处理的小工具
//
//  1. 按行读取
//     lines, err := ReadFileToLines("points.txt")
//
//  2. Map + Product
//     sizes := Map(StreamOf(components), func(c Component) int64 { return int64(len(c.Members)) })
//     total := Product(sizes)
//
//  3. TakeSafe 深拷贝前 n 项，调用方修改结果不会影响原始数据
//     top := TakeSafe(StreamOf(groups), 3).ToSlice()
package toolutil

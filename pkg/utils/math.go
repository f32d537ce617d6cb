// Package utils 提供通用数学工具函数
package utils

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 每帧向目标靠近固定比例
// 帧率相关的平滑：factor 越大靠近越快
func Approach(current, target, factor float64) float64 {
	return Lerp(current, target, factor)
}

// ClampInt 将整数 v 限制在 [lo, hi] 范围内
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap 将 v 循环映射到 [0, n)
// n <= 0 时返回 0
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

package live

import (
	"math/rand"
	"time"
)

// Rand 模拟器用到的随机源，所有随机行为都走这里，
// 测试注入固定种子即可得到确定序列
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand 固定种子随机源
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRand 按当前时间播种
func NewTimeRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

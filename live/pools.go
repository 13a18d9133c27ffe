package live

import "time"

// Pools 评论生成用的固定素材池，注入生成器而不是散落的全局常量，
// 便于测试时替换成小池子配合固定随机源断言输出
type Pools struct {
	Names   []string // 观众昵称池
	Texts   []string // 普通评论文案池
	Avatars []string // 头像池
}

// DefaultPools 内置素材池
func DefaultPools() *Pools {
	return &Pools{
		Names: []string{
			"Sarah J.", "Mike C.", "Jessica W.", "Emily D.", "Amanda W.",
			"Lisa M.", "Tom R.", "Chris M.", "David B.", "Rachel K.",
			"Katie S.", "Jen P.", "Maria L.", "Olivia H.", "Sophia T.",
		},
		Texts: []string{
			"Love this!", "How much is this?", "What sizes are available?", "This is gorgeous!",
			"Can I get this in black?", "Need this in my life!", "Is this true to size?", "Shipping to Canada?",
			"Beautiful!", "How long does shipping take?", "Do you have more colors?", "This is amazing quality!",
			"Will this restock?", "I love your lives!", "Best prices ever!", "First time here, hi!",
		},
		Avatars: []string{
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Mike",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Jessica",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=David",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Chris",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Amanda",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=James",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Lisa",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Tom",
		},
	}
}

// 评论速度档位，间隔必须是这四档之一
const (
	SpeedVeryFast = 800 * time.Millisecond
	SpeedFast     = 1500 * time.Millisecond
	SpeedNormal   = 3000 * time.Millisecond
	SpeedSlow     = 5000 * time.Millisecond
)

// SpeedLabels 档位与展示名的映射
var SpeedLabels = map[time.Duration]string{
	SpeedVeryFast: "Very Fast",
	SpeedFast:     "Fast",
	SpeedNormal:   "Normal",
	SpeedSlow:     "Slow",
}

// ValidInterval 校验评论间隔是否为合法档位
func ValidInterval(d time.Duration) bool {
	_, ok := SpeedLabels[d]
	return ok
}

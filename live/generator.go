package live

import (
	"fmt"
	"strings"
	"time"

	"LiveSell/models"
	"LiveSell/pkg/snowflake"
)

// Generator 合成观众评论
// 有主推商品口令时，本条评论有 40% 概率是下单评论（random > 0.6），
// 没有口令时一定是普通闲聊评论
type Generator struct {
	Pools *Pools
	Rand  Rand
	Now   func() time.Time
}

func NewGenerator(pools *Pools, rnd Rand, now func() time.Time) *Generator {
	return &Generator{Pools: pools, Rand: rnd, Now: now}
}

// Comment 生成一条评论；keyword 为空表示当前没有主推商品
// 下单评论的文案先置为口令本身，库存扣减成功后由引擎改写成 "口令 - 规格"
func (g *Generator) Comment(keyword string) *models.LiveComment {
	isOrder := false
	if keyword != "" {
		isOrder = g.Rand.Float64() > 0.6
	}

	name := g.Pools.Names[g.Rand.Intn(len(g.Pools.Names))]
	text := keyword
	if !isOrder {
		text = g.Pools.Texts[g.Rand.Intn(len(g.Pools.Texts))]
	}
	avatar := g.Pools.Avatars[g.Rand.Intn(len(g.Pools.Avatars))]

	return &models.LiveComment{
		ID:         fmt.Sprintf("cmt-%d", snowflake.GenID()),
		UserName:   name,
		UserAvatar: avatar,
		Text:       text,
		Timestamp:  g.Now(),
		IsOrder:    isOrder,
	}
}

// SyntheticEmail 由昵称派生邮箱：小写后去掉所有非字母字符
// "Sarah J." -> "sarahj@email.com"
func SyntheticEmail(name string) string {
	clean := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(name))
	return clean + "@email.com"
}

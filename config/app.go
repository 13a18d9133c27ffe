package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	Name  string `json:"name" yaml:"name"`
}

// Simulator 直播模拟器配置
type Simulator struct {
	CommentIntervalMs int `json:"comment_interval_ms" yaml:"comment_interval_ms"` // 评论生成间隔（毫秒），仅限 800/1500/3000/5000
	ViewerIntervalMs  int `json:"viewer_interval_ms" yaml:"viewer_interval_ms"`   // 在线人数漂移间隔（毫秒）
	FeedCapacity      int `json:"feed_capacity" yaml:"feed_capacity"`             // 评论流最大保留条数
}

func (s *Simulator) CommentInterval() time.Duration {
	return time.Duration(s.CommentIntervalMs) * time.Millisecond
}

func (s *Simulator) ViewerInterval() time.Duration {
	return time.Duration(s.ViewerIntervalMs) * time.Millisecond
}

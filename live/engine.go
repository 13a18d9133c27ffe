package live

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"LiveSell/models"
	"LiveSell/pkg/snowflake"
)

const defaultFeedCapacity = 100

var (
	ErrNotLive           = errors.New("当前不在直播中")
	ErrUnknownProduct    = errors.New("商品不存在")
	ErrBadInterval       = errors.New("评论间隔必须是 800/1500/3000/5000 毫秒之一")
	ErrEmptyAnnouncement = errors.New("公告内容不能为空")
)

// Catalog 商品目录：模拟器读当前快照，扣库存后整体写回
type Catalog interface {
	Products() []*models.Product
	ReplaceProducts([]*models.Product)
}

// OrderSink 订单出口，模拟器只负责产出完整订单，不关心存储方式
type OrderSink interface {
	AppendOrder(*models.Order)
}

// SessionSource 场次读写，整体替换式更新
type SessionSource interface {
	Session() *models.LiveSession
	UpdateSession(*models.LiveSession)
}

// Broadcaster 实时推送出口（websocket），可以为 nil
type Broadcaster interface {
	BroadcastComment(*models.LiveComment)
	BroadcastOrder(*models.Order)
	BroadcastStats(Stats)
	BroadcastSession(*models.LiveSession)
}

// Stats 本场运行指标
type Stats struct {
	ViewerCount  int     `json:"viewer_count"`  // 当前在线人数
	OrderCount   int     `json:"order_count"`   // 本场订单数
	SalesTotal   float64 `json:"sales_total"`   // 本场销售额
	CommentCount int     `json:"comment_count"` // 评论流当前条数
}

// Deps 引擎依赖，零值字段取默认实现
type Deps struct {
	Catalog     Catalog
	Orders      OrderSink
	Sessions    SessionSource
	Broadcaster Broadcaster // 可为 nil

	Pools           *Pools
	Rand            Rand
	Now             func() time.Time
	Scheduler       Scheduler
	CommentInterval time.Duration
	ViewerInterval  time.Duration
	FeedCapacity    int
}

// Engine 直播场次模拟引擎
//
// 状态机 scheduled -> live -> ended：Start 不设前置条件（ended 后允许再次开播），
// End 仅允许从 live 进入。live 期间两个周期任务各自独立：
// 评论生成（档位可调）与在线人数漂移（固定 5s）。
// 引擎是评论流和本场计数器的唯一写方；对外的副作用只有两个：
// 订单进入 OrderSink、扣减库存后的商品集合写回 Catalog。
type Engine struct {
	gen   *Generator
	rnd   Rand
	now   func() time.Time
	sched Scheduler

	catalog  Catalog
	orders   OrderSink
	sessions SessionSource
	bc       Broadcaster

	feedCap        int
	viewerInterval time.Duration

	// taskMu 串行化 Start/End/SetInterval 的任务启停，
	// 不能在持有 mu 时等待任务退出（tick 回调也要拿 mu）
	taskMu      sync.Mutex
	commentTask Task
	driftTask   Task

	mu              sync.Mutex
	live            bool
	commentInterval time.Duration
	feed            []*models.LiveComment
	orderCount      int
	salesTotal      float64
	viewerCount     int
	activeProductID string
}

func NewEngine(deps Deps) *Engine {
	pools := deps.Pools
	if pools == nil {
		pools = DefaultPools()
	}
	rnd := deps.Rand
	if rnd == nil {
		rnd = NewTimeRand()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = NewScheduler()
	}
	commentInterval := deps.CommentInterval
	if !ValidInterval(commentInterval) {
		commentInterval = SpeedNormal
	}
	viewerInterval := deps.ViewerInterval
	if viewerInterval <= 0 {
		viewerInterval = 5 * time.Second
	}
	feedCap := deps.FeedCapacity
	if feedCap <= 0 {
		feedCap = defaultFeedCapacity
	}

	return &Engine{
		gen:             NewGenerator(pools, rnd, now),
		rnd:             rnd,
		now:             now,
		sched:           sched,
		catalog:         deps.Catalog,
		orders:          deps.Orders,
		sessions:        deps.Sessions,
		bc:              deps.Broadcaster,
		feedCap:         feedCap,
		viewerInterval:  viewerInterval,
		commentInterval: commentInterval,
	}
}

// Start 开播：打时间戳、清空评论流、本场计数器归零、装载两个周期任务
// 不校验当前状态，ended 之后允许再次开播
func (e *Engine) Start() *models.LiveSession {
	e.taskMu.Lock()
	defer e.taskMu.Unlock()

	e.stopTasks()

	e.mu.Lock()
	now := e.now()
	e.live = true
	e.feed = nil
	e.orderCount = 0
	e.salesTotal = 0
	// 首次激活时在 [300, 500) 内播种在线人数
	e.viewerCount = 300 + e.rnd.Intn(200)

	sess := e.sessions.Session()
	sess.Status = models.SessionStatusLive
	sess.StartedAt = &now
	sess.EndedAt = nil
	e.sessions.UpdateSession(sess)

	interval := e.commentInterval
	e.mu.Unlock()

	e.commentTask = e.sched.Every(interval, e.onCommentTick)
	e.driftTask = e.sched.Every(e.viewerInterval, e.onDriftTick)

	if e.bc != nil {
		e.bc.BroadcastSession(sess)
	}
	return sess
}

// End 收播：打结束时间戳，把最终在线人数/销售额/订单数定格到场次上，
// 同步取消两个周期任务；End 返回后任何已经在途的 tick 都不会再改状态
func (e *Engine) End() (*models.LiveSession, error) {
	e.taskMu.Lock()
	defer e.taskMu.Unlock()

	e.mu.Lock()
	if !e.live {
		e.mu.Unlock()
		return nil, ErrNotLive
	}
	e.live = false
	now := e.now()

	sess := e.sessions.Session()
	sess.Status = models.SessionStatusEnded
	sess.EndedAt = &now
	sess.ViewerCount = e.viewerCount
	sess.TotalSales = e.salesTotal
	sess.TotalOrders = e.orderCount
	e.sessions.UpdateSession(sess)
	e.mu.Unlock()

	e.stopTasks()

	if e.bc != nil {
		e.bc.BroadcastSession(sess)
	}
	return sess, nil
}

func (e *Engine) stopTasks() {
	if e.commentTask != nil {
		e.commentTask.Stop()
		e.commentTask = nil
	}
	if e.driftTask != nil {
		e.driftTask.Stop()
		e.driftTask = nil
	}
}

// SetInterval 调整评论生成档位；直播中会重新装载评论任务
func (e *Engine) SetInterval(d time.Duration) error {
	if !ValidInterval(d) {
		return ErrBadInterval
	}

	e.taskMu.Lock()
	defer e.taskMu.Unlock()

	e.mu.Lock()
	e.commentInterval = d
	restart := e.live
	e.mu.Unlock()

	if restart && e.commentTask != nil {
		e.commentTask.Stop()
		e.commentTask = e.sched.Every(d, e.onCommentTick)
	}
	return nil
}

// Interval 当前评论生成间隔
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commentInterval
}

// onCommentTick 评论任务回调，模拟器的核心路径
func (e *Engine) onCommentTick() {
	e.mu.Lock()
	if !e.live {
		e.mu.Unlock()
		return
	}

	products := e.catalog.Products()
	active := findProduct(products, e.activeProductID)
	keyword := ""
	if active != nil {
		keyword = active.Keyword
	}

	comment := e.gen.Comment(keyword)

	var newOrder *models.Order
	if comment.IsOrder && active != nil {
		// 售罄时仍然记录一条下单评论，但不建单也不动库存
		inStock := active.InStockVariants()
		if len(inStock) > 0 {
			variant := inStock[e.rnd.Intn(len(inStock))]
			now := e.now()

			order := &models.Order{
				ID:            fmt.Sprintf("ORD-%03d", 100+e.orderCount),
				CustomerID:    fmt.Sprintf("c-%d", now.UnixMilli()),
				CustomerName:  comment.UserName,
				CustomerEmail: SyntheticEmail(comment.UserName),
				Items: []models.OrderItem{{
					ProductID:   active.ID,
					ProductName: active.Name,
					VariantName: variant.Name,
					Price:       active.Price,
					Quantity:    1,
				}},
				Total:     active.Price,
				Status:    models.OrderStatusInvoiced,
				Source:    models.OrderSourceLive,
				CreatedAt: now,
			}
			e.orders.AppendOrder(order)
			e.orderCount++
			e.salesTotal += active.Price

			decrementStock(products, active.ID, variant.ID)
			e.catalog.ReplaceProducts(products)

			comment.Text = keyword + " - " + variant.Name
			comment.ProductID = active.ID
			newOrder = order
		}
	}

	e.appendFeedLocked(comment)
	stats := e.statsLocked()
	e.mu.Unlock()

	if e.bc != nil {
		e.bc.BroadcastComment(comment)
		if newOrder != nil {
			e.bc.BroadcastOrder(newOrder)
		}
		e.bc.BroadcastStats(stats)
	}
}

// onDriftTick 在线人数漂移：有界随机游走，增量 [-10, 20)，下限 100，无上限
func (e *Engine) onDriftTick() {
	e.mu.Lock()
	if !e.live {
		e.mu.Unlock()
		return
	}

	delta := e.rnd.Intn(30) - 10
	e.viewerCount += delta
	if e.viewerCount < 100 {
		e.viewerCount = 100
	}
	stats := e.statsLocked()
	e.mu.Unlock()

	if e.bc != nil {
		e.bc.BroadcastStats(stats)
	}
}

// Feature 把队列里的商品设为主推，并向评论流注入一条系统公告
func (e *Engine) Feature(productID string) error {
	e.mu.Lock()

	product := findProduct(e.catalog.Products(), productID)
	if product == nil {
		e.mu.Unlock()
		return ErrUnknownProduct
	}
	e.activeProductID = productID

	sess := e.sessions.Session()
	sess.ActiveProductID = productID
	e.sessions.UpdateSession(sess)

	comment := &models.LiveComment{
		ID:        fmt.Sprintf("sys-%d", snowflake.GenID()),
		UserName:  "SYSTEM",
		Text:      fmt.Sprintf("Now featuring: %s - Comment %q to purchase! $%.2f", product.Name, product.Keyword, product.Price),
		Timestamp: e.now(),
	}
	e.appendFeedLocked(comment)
	e.mu.Unlock()

	if e.bc != nil {
		e.bc.BroadcastComment(comment)
		e.bc.BroadcastSession(sess)
	}
	return nil
}

// Announce 主播公告，与生成的评论走同一个有界评论流
func (e *Engine) Announce(text string) (*models.LiveComment, error) {
	if text == "" {
		return nil, ErrEmptyAnnouncement
	}

	comment := &models.LiveComment{
		ID:        fmt.Sprintf("ann-%d", snowflake.GenID()),
		UserName:  "ANNOUNCEMENT",
		Text:      text,
		Timestamp: e.now(),
	}

	e.mu.Lock()
	e.appendFeedLocked(comment)
	e.mu.Unlock()

	if e.bc != nil {
		e.bc.BroadcastComment(comment)
	}
	return comment, nil
}

// MoveInQueue 队列内相邻交换，到边界时不动作；未知商品同样不动作
func (e *Engine) MoveInQueue(productID, direction string) *models.LiveSession {
	e.mu.Lock()

	sess := e.sessions.Session()
	queue := sess.ProductQueue
	idx := -1
	for i, id := range queue {
		if id == productID {
			idx = i
			break
		}
	}
	switch {
	case direction == "up" && idx > 0:
		queue[idx], queue[idx-1] = queue[idx-1], queue[idx]
	case direction == "down" && idx >= 0 && idx < len(queue)-1:
		queue[idx], queue[idx+1] = queue[idx+1], queue[idx]
	}
	e.sessions.UpdateSession(sess)
	e.mu.Unlock()

	if e.bc != nil {
		e.bc.BroadcastSession(sess)
	}
	return sess
}

// Feed 评论流快照
func (e *Engine) Feed() []*models.LiveComment {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*models.LiveComment, len(e.feed))
	for i, c := range e.feed {
		cp := *c
		out[i] = &cp
	}
	return out
}

// Stats 当前运行指标快照
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statsLocked()
}

// ActiveProductID 当前主推商品ID，没有则为空串
func (e *Engine) ActiveProductID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeProductID
}

// appendFeedLocked 有界追加：先把存量裁到最近 feedCap 条，再追加新评论
func (e *Engine) appendFeedLocked(c *models.LiveComment) {
	if len(e.feed) > e.feedCap {
		e.feed = e.feed[len(e.feed)-e.feedCap:]
	}
	e.feed = append(e.feed, c)
}

func (e *Engine) statsLocked() Stats {
	return Stats{
		ViewerCount:  e.viewerCount,
		OrderCount:   e.orderCount,
		SalesTotal:   e.salesTotal,
		CommentCount: len(e.feed),
	}
}

func findProduct(products []*models.Product, id string) *models.Product {
	if id == "" {
		return nil
	}
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// decrementStock 对指定商品规格扣一件库存，下限为 0
func decrementStock(products []*models.Product, productID, variantID string) {
	for _, p := range products {
		if p.ID != productID {
			continue
		}
		for i := range p.Variants {
			if p.Variants[i].ID == variantID && p.Variants[i].Stock > 0 {
				p.Variants[i].Stock--
			}
		}
	}
}

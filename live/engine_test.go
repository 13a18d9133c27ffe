package live

import (
	"errors"
	"strings"
	"testing"
	"time"

	"LiveSell/models"
)

// 脚本化随机源，按给定序列循环出值
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *fakeRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// 手动调度器，记录装载的任务，由测试自己触发回调
type manualTask struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() { t.stopped = true }

type manualScheduler struct {
	tasks []*manualTask
}

func (s *manualScheduler) Every(d time.Duration, fn func()) Task {
	t := &manualTask{d: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// 按装载顺序取任务：0 评论任务 1 人数漂移任务
func (s *manualScheduler) commentTask() *manualTask { return s.tasks[len(s.tasks)-2] }
func (s *manualScheduler) driftTask() *manualTask   { return s.tasks[len(s.tasks)-1] }

type memCatalog struct {
	products []*models.Product
}

func (m *memCatalog) Products() []*models.Product         { return m.products }
func (m *memCatalog) ReplaceProducts(p []*models.Product) { m.products = p }

type memOrders struct {
	orders []*models.Order
}

func (m *memOrders) AppendOrder(o *models.Order) { m.orders = append(m.orders, o) }

type memSession struct {
	sess *models.LiveSession
}

func (m *memSession) Session() *models.LiveSession        { return m.sess }
func (m *memSession) UpdateSession(s *models.LiveSession) { m.sess = s }

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func testProduct() *models.Product {
	return &models.Product{
		ID:      "p1",
		Name:    "Silk Scarf",
		Price:   10,
		Keyword: "BUY",
		Status:  models.ProductStatusActive,
		Variants: []models.Variant{
			{ID: "v1", Name: "Red", Stock: 2},
			{ID: "v2", Name: "Blue", Stock: 0},
		},
	}
}

type fixture struct {
	engine  *Engine
	catalog *memCatalog
	orders  *memOrders
	session *memSession
	sched   *manualScheduler
	rnd     *fakeRand
}

func newFixture(rnd *fakeRand, products ...*models.Product) *fixture {
	catalog := &memCatalog{products: products}
	orders := &memOrders{}
	session := &memSession{sess: &models.LiveSession{
		ID:           "ls1",
		Title:        "Spring Collection Launch",
		Status:       models.SessionStatusScheduled,
		ProductQueue: []string{"p1", "p2"},
	}}
	sched := &manualScheduler{}

	engine := NewEngine(Deps{
		Catalog:   catalog,
		Orders:    orders,
		Sessions:  session,
		Pools:     DefaultPools(),
		Rand:      rnd,
		Now:       fixedNow,
		Scheduler: sched,
	})
	return &fixture{engine: engine, catalog: catalog, orders: orders, session: session, sched: sched, rnd: rnd}
}

func TestStartSeedsViewersAndArmsTasks(t *testing.T) {
	f := newFixture(&fakeRand{ints: []int{50}})

	sess := f.engine.Start()
	if sess.Status != models.SessionStatusLive {
		t.Fatalf("开播后状态应为 live，实际 %s", sess.Status)
	}
	if sess.StartedAt == nil || !sess.StartedAt.Equal(fixedNow()) {
		t.Errorf("开播时间戳不正确: %v", sess.StartedAt)
	}
	if sess.EndedAt != nil {
		t.Errorf("开播后 EndedAt 应清空")
	}

	stats := f.engine.Stats()
	if stats.ViewerCount != 350 {
		t.Errorf("在线人数播种应为 300+50=350，实际 %d", stats.ViewerCount)
	}
	if stats.OrderCount != 0 || stats.SalesTotal != 0 || stats.CommentCount != 0 {
		t.Errorf("开播后本场计数器应归零: %+v", stats)
	}

	if len(f.sched.tasks) != 2 {
		t.Fatalf("开播应装载 2 个周期任务，实际 %d", len(f.sched.tasks))
	}
	if f.sched.commentTask().d != SpeedNormal {
		t.Errorf("评论任务默认间隔应为 3s，实际 %v", f.sched.commentTask().d)
	}
	if f.sched.driftTask().d != 5*time.Second {
		t.Errorf("人数漂移任务间隔应为 5s，实际 %v", f.sched.driftTask().d)
	}
}

func TestRestartResetsState(t *testing.T) {
	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, testProduct())

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	f.sched.commentTask().fn()
	if len(f.orders.orders) != 1 {
		t.Fatalf("预置条件失败：应产生 1 笔订单")
	}

	if _, err := f.engine.End(); err != nil {
		t.Fatal(err)
	}

	// ended 之后允许再次开播，评论流与计数器重新归零
	sess := f.engine.Start()
	if sess.Status != models.SessionStatusLive {
		t.Fatalf("收播后应允许再次开播")
	}
	stats := f.engine.Stats()
	if stats.OrderCount != 0 || stats.SalesTotal != 0 || stats.CommentCount != 0 {
		t.Errorf("再次开播后本场计数器应归零: %+v", stats)
	}
}

func TestCommentTickCreatesOrder(t *testing.T) {
	// Float64=0.9 > 0.6 走下单分支；Intn 全取 0：昵称 Sarah J.、头像第一个、规格取第一个有库存的
	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, testProduct())

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	f.sched.commentTask().fn()

	if len(f.orders.orders) != 1 {
		t.Fatalf("应产生 1 笔订单，实际 %d", len(f.orders.orders))
	}
	order := f.orders.orders[0]
	if order.ID != "ORD-100" {
		t.Errorf("首笔订单号应为 ORD-100，实际 %s", order.ID)
	}
	if order.CustomerName != "Sarah J." {
		t.Errorf("下单人应取自昵称池首位，实际 %s", order.CustomerName)
	}
	if order.CustomerEmail != "sarahj@email.com" {
		t.Errorf("合成邮箱不正确: %s", order.CustomerEmail)
	}
	if order.Status != models.OrderStatusInvoiced || order.Source != models.OrderSourceLive {
		t.Errorf("直播订单应为 invoiced/live，实际 %s/%s", order.Status, order.Source)
	}
	if order.Total != 10 || len(order.Items) != 1 || order.Items[0].Quantity != 1 {
		t.Errorf("订单金额或条目不正确: %+v", order)
	}

	// 库存写回：Red 从 2 扣到 1
	if got := f.catalog.products[0].Variants[0].Stock; got != 1 {
		t.Errorf("下单后库存应扣减到 1，实际 %d", got)
	}

	feed := f.engine.Feed()
	last := feed[len(feed)-1]
	if !last.IsOrder || last.Text != "BUY - Red" {
		t.Errorf("下单评论文案应改写为 口令 - 规格，实际 %q", last.Text)
	}
	if last.ProductID != "p1" {
		t.Errorf("下单评论应关联商品ID")
	}

	stats := f.engine.Stats()
	if stats.OrderCount != 1 || stats.SalesTotal != 10 {
		t.Errorf("本场销售计数不正确: %+v", stats)
	}
}

func TestOrderNumberingIsSequential(t *testing.T) {
	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, testProduct())

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	f.sched.commentTask().fn()
	f.sched.commentTask().fn()

	if len(f.orders.orders) != 2 {
		t.Fatalf("应产生 2 笔订单，实际 %d", len(f.orders.orders))
	}
	if f.orders.orders[0].ID != "ORD-100" || f.orders.orders[1].ID != "ORD-101" {
		t.Errorf("订单号应从 ORD-100 递增: %s %s", f.orders.orders[0].ID, f.orders.orders[1].ID)
	}
}

func TestSoldOutKeepsOrderCommentWithoutOrder(t *testing.T) {
	product := testProduct()
	product.Variants[0].Stock = 0

	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, product)

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	f.sched.commentTask().fn()

	if len(f.orders.orders) != 0 {
		t.Fatalf("售罄时不应建单，实际 %d 笔", len(f.orders.orders))
	}
	for _, v := range f.catalog.products[0].Variants {
		if v.Stock != 0 {
			t.Errorf("售罄时库存不应变化")
		}
	}

	feed := f.engine.Feed()
	last := feed[len(feed)-1]
	if !last.IsOrder {
		t.Errorf("售罄时仍应记录一条下单评论")
	}
	if last.Text != "BUY" {
		t.Errorf("售罄时评论文案应保持口令原文，实际 %q", last.Text)
	}
	if f.engine.Stats().OrderCount != 0 {
		t.Errorf("售罄时本场订单数不应增加")
	}
}

func TestNoFeaturedProductMeansChatOnly(t *testing.T) {
	// 没有主推商品时 Float64 不应被消费，评论永远是闲聊
	f := newFixture(&fakeRand{floats: []float64{0.99}, ints: []int{0}}, testProduct())

	f.engine.Start()
	f.sched.commentTask().fn()
	f.sched.commentTask().fn()

	if len(f.orders.orders) != 0 {
		t.Fatalf("没有主推商品时不应建单")
	}
	for _, c := range f.engine.Feed() {
		if c.IsOrder {
			t.Errorf("没有主推商品时不应出现下单评论")
		}
	}
}

func TestStockNeverGoesNegative(t *testing.T) {
	product := testProduct()
	product.Variants = []models.Variant{{ID: "v1", Name: "Red", Stock: 2}}

	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, product)

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		f.sched.commentTask().fn()
	}

	if got := f.catalog.products[0].Variants[0].Stock; got != 0 {
		t.Errorf("库存下限应为 0，实际 %d", got)
	}
	// 只有前两次扣减成功建单
	if len(f.orders.orders) != 2 {
		t.Errorf("库存 2 件只应建 2 笔订单，实际 %d", len(f.orders.orders))
	}
}

func TestViewerDriftHasFloor(t *testing.T) {
	// Intn(200)=0 播种 300 人；之后 Intn(30)=0 每次漂移 -10
	f := newFixture(&fakeRand{ints: []int{0}})

	f.engine.Start()
	for i := 0; i < 50; i++ {
		f.sched.driftTask().fn()
	}

	if got := f.engine.Stats().ViewerCount; got != 100 {
		t.Errorf("在线人数下限应为 100，实际 %d", got)
	}
}

func TestEndSnapshotsSessionAndStopsTicks(t *testing.T) {
	f := newFixture(&fakeRand{floats: []float64{0.9}, ints: []int{0}}, testProduct())

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	commentFn := f.sched.commentTask().fn
	driftFn := f.sched.driftTask().fn
	commentFn()

	sess, err := f.engine.End()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != models.SessionStatusEnded {
		t.Fatalf("收播后状态应为 ended，实际 %s", sess.Status)
	}
	if sess.EndedAt == nil {
		t.Errorf("收播应打结束时间戳")
	}
	if sess.TotalOrders != 1 || sess.TotalSales != 10 {
		t.Errorf("收播应定格销售数据: orders=%d sales=%v", sess.TotalOrders, sess.TotalSales)
	}
	if !f.sched.tasks[0].stopped || !f.sched.tasks[1].stopped {
		t.Errorf("收播应取消两个周期任务")
	}

	// 在途 tick 不再改任何状态
	feedBefore := len(f.engine.Feed())
	viewerBefore := f.engine.Stats().ViewerCount
	commentFn()
	driftFn()
	if len(f.engine.Feed()) != feedBefore {
		t.Errorf("收播后评论流不应再增长")
	}
	if f.engine.Stats().ViewerCount != viewerBefore {
		t.Errorf("收播后在线人数不应再漂移")
	}
	if len(f.orders.orders) != 1 {
		t.Errorf("收播后不应再建单")
	}
}

func TestEndWhenNotLive(t *testing.T) {
	f := newFixture(&fakeRand{})

	if _, err := f.engine.End(); !errors.Is(err, ErrNotLive) {
		t.Errorf("未开播时收播应返回 ErrNotLive，实际 %v", err)
	}
}

func TestSetIntervalValidation(t *testing.T) {
	f := newFixture(&fakeRand{})

	if err := f.engine.SetInterval(2 * time.Second); !errors.Is(err, ErrBadInterval) {
		t.Errorf("非法档位应被拒绝，实际 %v", err)
	}
	if err := f.engine.SetInterval(SpeedFast); err != nil {
		t.Fatal(err)
	}
	if f.engine.Interval() != SpeedFast {
		t.Errorf("档位应更新为 1.5s，实际 %v", f.engine.Interval())
	}
}

func TestSetIntervalRearmsWhileLive(t *testing.T) {
	f := newFixture(&fakeRand{ints: []int{0}})

	f.engine.Start()
	old := f.sched.commentTask()
	if err := f.engine.SetInterval(SpeedVeryFast); err != nil {
		t.Fatal(err)
	}

	if !old.stopped {
		t.Errorf("调档应取消旧的评论任务")
	}
	rearmed := f.sched.tasks[len(f.sched.tasks)-1]
	if rearmed.d != SpeedVeryFast {
		t.Errorf("重新装载的评论任务间隔应为 800ms，实际 %v", rearmed.d)
	}
}

func TestFeatureInjectsSystemComment(t *testing.T) {
	f := newFixture(&fakeRand{ints: []int{0}}, testProduct())

	f.engine.Start()
	if err := f.engine.Feature("p1"); err != nil {
		t.Fatal(err)
	}
	if f.engine.ActiveProductID() != "p1" {
		t.Errorf("主推商品应更新为 p1")
	}
	if f.session.sess.ActiveProductID != "p1" {
		t.Errorf("场次上的主推商品应同步更新")
	}

	feed := f.engine.Feed()
	last := feed[len(feed)-1]
	if last.UserName != "SYSTEM" {
		t.Errorf("主推应注入系统评论，实际来自 %s", last.UserName)
	}
	if !strings.Contains(last.Text, "Silk Scarf") || !strings.Contains(last.Text, `"BUY"`) || !strings.Contains(last.Text, "$10.00") {
		t.Errorf("系统评论文案不完整: %q", last.Text)
	}
}

func TestFeatureUnknownProduct(t *testing.T) {
	f := newFixture(&fakeRand{}, testProduct())

	if err := f.engine.Feature("nope"); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("未知商品应返回 ErrUnknownProduct，实际 %v", err)
	}
}

func TestAnnounceRejectsEmpty(t *testing.T) {
	f := newFixture(&fakeRand{})

	if _, err := f.engine.Announce(""); !errors.Is(err, ErrEmptyAnnouncement) {
		t.Errorf("空公告应被拒绝，实际 %v", err)
	}

	comment, err := f.engine.Announce("Free shipping today!")
	if err != nil {
		t.Fatal(err)
	}
	if comment.UserName != "ANNOUNCEMENT" || comment.Text != "Free shipping today!" {
		t.Errorf("公告评论不正确: %+v", comment)
	}
}

func TestFeedIsBounded(t *testing.T) {
	catalog := &memCatalog{}
	session := &memSession{sess: &models.LiveSession{ID: "ls1"}}
	engine := NewEngine(Deps{
		Catalog:      catalog,
		Orders:       &memOrders{},
		Sessions:     session,
		Rand:         &fakeRand{},
		Now:          fixedNow,
		Scheduler:    &manualScheduler{},
		FeedCapacity: 5,
	})

	for i := 0; i < 30; i++ {
		if _, err := engine.Announce("hello"); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(engine.Feed()); got > 6 {
		t.Errorf("评论流应收敛在容量附近，实际 %d 条", got)
	}
}

func TestMoveInQueue(t *testing.T) {
	f := newFixture(&fakeRand{})

	sess := f.engine.MoveInQueue("p2", "up")
	if sess.ProductQueue[0] != "p2" || sess.ProductQueue[1] != "p1" {
		t.Errorf("上移应交换相邻位置: %v", sess.ProductQueue)
	}

	// 到顶后再上移不动作
	sess = f.engine.MoveInQueue("p2", "up")
	if sess.ProductQueue[0] != "p2" {
		t.Errorf("队首上移应保持不变: %v", sess.ProductQueue)
	}

	sess = f.engine.MoveInQueue("p2", "down")
	if sess.ProductQueue[0] != "p1" || sess.ProductQueue[1] != "p2" {
		t.Errorf("下移应交换相邻位置: %v", sess.ProductQueue)
	}

	// 队尾下移、未知商品都不动作
	sess = f.engine.MoveInQueue("p2", "down")
	if sess.ProductQueue[1] != "p2" {
		t.Errorf("队尾下移应保持不变: %v", sess.ProductQueue)
	}
	sess = f.engine.MoveInQueue("ghost", "up")
	if sess.ProductQueue[0] != "p1" {
		t.Errorf("未知商品不应影响队列: %v", sess.ProductQueue)
	}
}

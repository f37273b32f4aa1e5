package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []entity.CashierSession
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.CashierSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sessions = append([]entity.CashierSession{*s}, r.sessions...)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CashierSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entity.CashierSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].ID == s.ID {
			r.sessions[i] = *s
		}
	}
	return nil
}

func (r *fakeSessionRepo) ListByStatus(_ context.Context, status enum.SessionStatus) ([]entity.CashierSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.CashierSession
	for _, s := range r.sessions {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) List(_ context.Context, p *pagination.Params) ([]entity.CashierSession, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.sessions))
	start := p.Offset()
	if start > len(r.sessions) {
		start = len(r.sessions)
	}
	end := start + p.PerPage
	if end > len(r.sessions) {
		end = len(r.sessions)
	}
	return append([]entity.CashierSession(nil), r.sessions[start:end]...), total, nil
}

var errConnReset = errors.New("db: connection reset")

type fakeSaleRepo struct {
	mu      sync.Mutex
	records []entity.DailyRecord
	tables  *fakeTableRepo
}

func (r *fakeSaleRepo) Create(_ context.Context, rec *entity.DailyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.records = append(r.records, *rec)
	return nil
}

// CreateWithTableReset writes the table first so a failed save leaves no
// record behind.
func (r *fakeSaleRepo) CreateWithTableReset(ctx context.Context, rec *entity.DailyRecord, t *entity.Table) error {
	if err := r.tables.Save(ctx, t); err != nil {
		return err
	}
	return r.Create(ctx, rec)
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSaleRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]entity.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.DailyRecord
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListAll(_ context.Context) ([]entity.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.DailyRecord(nil), r.records...), nil
}

func (r *fakeSaleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type fakeExpenseRepo struct {
	mu       sync.Mutex
	expenses []entity.Expense
	payables *fakePayableRepo
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *fakeExpenseRepo) CreateForPayable(ctx context.Context, e *entity.Expense, p *entity.Payable) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	p.ExpenseID = &e.ID
	if err := r.payables.Update(ctx, p); err != nil {
		return err
	}
	return r.Create(ctx, e)
}

func (r *fakeExpenseRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.expenses)
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.expenses {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeExpenseRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Expense
	for _, e := range r.expenses {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) ListAll(_ context.Context) ([]entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Expense(nil), r.expenses...), nil
}

type fakeMenuRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.MenuItem
	order []uuid.UUID
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
}

func (r *fakeMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ID] = &cp
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeMenuRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeMenuRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeMenuRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeMenuRepo) List(_ context.Context, f repository.MenuFilter) ([]entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.MenuItem
	for _, id := range r.order {
		item := r.items[id]
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.AvailableOnly && !item.IsAvailable {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeMenuRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakeMenuRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return false, nil
	}
	next := item.Stock + delta
	if next < 0 {
		item.Stock = 0
		return true, nil
	}
	item.Stock = next
	return false, nil
}

func (r *fakeMenuRepo) stock(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id].Stock
}

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := append([]entity.Category(nil), r.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeCategoryRepo) NextPosition(_ context.Context) (int, error) {
	max := 0
	for _, c := range r.categories {
		if c.Position > max {
			max = c.Position
		}
	}
	return max + 1, nil
}

type fakeTableRepo struct {
	mu        sync.Mutex
	tables    map[int]entity.Table
	failSaves int
}

func newFakeTableRepo(n int) *fakeTableRepo {
	r := &fakeTableRepo{tables: make(map[int]entity.Table)}
	for i := 1; i <= n; i++ {
		r.tables[i] = entity.Table{ID: i, Items: entity.OrderLines{}}
	}
	return r
}

func (r *fakeTableRepo) GetByID(_ context.Context, id int) (*entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	if !ok {
		return nil, nil
	}
	t.Items = t.Items.Clone()
	return &t, nil
}

func (r *fakeTableRepo) List(_ context.Context) ([]entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Table, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTableRepo) Save(_ context.Context, t *entity.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaves > 0 {
		r.failSaves--
		return errConnReset
	}
	cp := *t
	cp.Items = t.Items.Clone()
	r.tables[t.ID] = cp
	return nil
}

type fakePayableRepo struct {
	mu          sync.Mutex
	payables    []entity.Payable
	failUpdates int
}

func (r *fakePayableRepo) Create(_ context.Context, p *entity.Payable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payables = append(r.payables, *p)
	return nil
}

func (r *fakePayableRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Payable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payables {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePayableRepo) Update(_ context.Context, p *entity.Payable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdates > 0 {
		r.failUpdates--
		return errConnReset
	}
	for i := range r.payables {
		if r.payables[i].ID == p.ID {
			r.payables[i] = *p
		}
	}
	return nil
}

func (r *fakePayableRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.payables {
		if r.payables[i].ID == id {
			r.payables = append(r.payables[:i], r.payables[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePayableRepo) List(_ context.Context, status *enum.PayableStatus) ([]entity.Payable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Payable
	for _, p := range r.payables {
		if status == nil || p.Status == *status {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

type fakeSettingsRepo struct {
	values map[string]string
}

func (r *fakeSettingsRepo) Get(_ context.Context, key string) (*entity.StoreSetting, error) {
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return &entity.StoreSetting{Key: key, Value: v}, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *entity.StoreSetting) error {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[s.Key] = s.Value
	return nil
}

type fakeOperatorRepo struct {
	operators []entity.Operator
}

func (r *fakeOperatorRepo) Create(_ context.Context, o *entity.Operator) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.operators = append(r.operators, *o)
	return nil
}

func (r *fakeOperatorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Operator, error) {
	for _, o := range r.operators {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeOperatorRepo) GetByUsername(_ context.Context, username string) (*entity.Operator, error) {
	for _, o := range r.operators {
		if o.Username == username {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeOperatorRepo) Update(_ context.Context, o *entity.Operator) error {
	for i := range r.operators {
		if r.operators[i].ID == o.ID {
			r.operators[i] = *o
		}
	}
	return nil
}

func (r *fakeOperatorRepo) List(_ context.Context) ([]entity.Operator, error) {
	return append([]entity.Operator(nil), r.operators...), nil
}

func (r *fakeOperatorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.operators)), nil
}

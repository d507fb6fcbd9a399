package http

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, con el mismo contrato que
// los adaptadores reales: ID secuencial y version=0 al crear, version+1 al
// actualizar, (nil, nil) para IDs inexistentes. Los handlers se prueban con
// los casos de uso reales sobre estos stores.

type memBeerRepo struct {
	seq   int
	beers map[int]entity.Beer
}

func newMemBeerRepo() *memBeerRepo { return &memBeerRepo{beers: make(map[int]entity.Beer)} }

func (r *memBeerRepo) Create(b *entity.Beer) error {
	r.seq++
	b.ID, b.Version = r.seq, 0
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.beers[b.ID] = *b
	return nil
}

func (r *memBeerRepo) GetByID(id int) (*entity.Beer, error) {
	b, ok := r.beers[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBeerRepo) List() ([]*entity.Beer, error) {
	list, _, err := r.ListFiltered(repository.BeerFilter{Size: len(r.beers) + 1})
	return list, err
}

func (r *memBeerRepo) ListFiltered(filter repository.BeerFilter) ([]*entity.Beer, int, error) {
	name := strings.TrimSpace(filter.BeerName)
	style := strings.TrimSpace(filter.BeerStyle)
	var matches []*entity.Beer
	for id := 1; id <= r.seq; id++ {
		b, ok := r.beers[id]
		if !ok {
			continue
		}
		if !containsFold(b.BeerName, name) || !containsFold(b.BeerStyle, style) {
			continue
		}
		copia := b
		matches = append(matches, &copia)
	}
	total := len(matches)
	start := filter.Page * filter.Size
	if start > total {
		start = total
	}
	end := start + filter.Size
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func (r *memBeerRepo) Update(b *entity.Beer) error {
	stored, ok := r.beers[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	b.Version = stored.Version + 1
	b.CreatedAt = stored.CreatedAt
	b.UpdatedAt = time.Now()
	r.beers[b.ID] = *b
	return nil
}

func (r *memBeerRepo) Delete(id int) (bool, error) {
	if _, ok := r.beers[id]; !ok {
		return false, nil
	}
	delete(r.beers, id)
	return true, nil
}

type memCustomerRepo struct {
	seq       int
	customers map[int]entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[int]entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	r.seq++
	c.ID, c.Version = r.seq, 0
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) GetByID(id int) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	var out []*entity.Customer
	for id := 1; id <= r.seq; id++ {
		if c, ok := r.customers[id]; ok {
			copia := c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	stored, ok := r.customers[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Version = stored.Version + 1
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = time.Now()
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) Delete(id int) (bool, error) {
	if _, ok := r.customers[id]; !ok {
		return false, nil
	}
	delete(r.customers, id)
	return true, nil
}

type memLineRepo struct {
	seq   int
	lines map[int]entity.BeerOrderLine
	beers *memBeerRepo
}

func (r *memLineRepo) Create(l *entity.BeerOrderLine) error {
	r.seq++
	l.ID, l.Version = r.seq, 0
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	stored := *l
	stored.Beer = nil
	r.lines[l.ID] = stored
	return nil
}

func (r *memLineRepo) ListByOrder(orderID int) ([]entity.BeerOrderLine, error) {
	var out []entity.BeerOrderLine
	for _, l := range r.lines {
		if l.BeerOrderID != orderID {
			continue
		}
		if beer, _ := r.beers.GetByID(l.BeerID); beer != nil {
			l.Beer = beer
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memOrderRepo struct {
	seq    int
	orders map[int]entity.BeerOrder
	lines  *memLineRepo
}

func (r *memOrderRepo) Create(o *entity.BeerOrder) error {
	r.seq++
	o.ID, o.Version = r.seq, 0
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	stored := *o
	stored.Lines = nil
	r.orders[o.ID] = stored
	return nil
}

func (r *memOrderRepo) GetByID(id int) (*entity.BeerOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Lines, _ = r.lines.ListByOrder(id)
	return &o, nil
}

func (r *memOrderRepo) List() ([]*entity.BeerOrder, error) {
	var out []*entity.BeerOrder
	for id := 1; id <= r.seq; id++ {
		if _, ok := r.orders[id]; !ok {
			continue
		}
		o, _ := r.GetByID(id)
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) ListByCustomer(customerID int) ([]*entity.BeerOrder, error) {
	all, _ := r.List()
	var out []*entity.BeerOrder
	for _, o := range all {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(o *entity.BeerOrder) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Version = stored.Version + 1
	o.CreatedAt = stored.CreatedAt
	o.UpdatedAt = time.Now()
	next := *o
	next.Lines = nil
	r.orders[o.ID] = next
	return nil
}

func (r *memOrderRepo) Delete(id int) (bool, error) {
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	for lineID, l := range r.lines.lines {
		if l.BeerOrderID == id {
			delete(r.lines.lines, lineID)
		}
	}
	return true, nil
}

type memShipmentRepo struct {
	seq       int
	shipments map[int]entity.BeerOrderShipment
}

func (r *memShipmentRepo) Create(s *entity.BeerOrderShipment) error {
	r.seq++
	s.ID, s.Version = r.seq, 0
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.shipments[s.ID] = *s
	return nil
}

func (r *memShipmentRepo) GetByID(id int) (*entity.BeerOrderShipment, error) {
	s, ok := r.shipments[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memShipmentRepo) List() ([]*entity.BeerOrderShipment, error) {
	var out []*entity.BeerOrderShipment
	for id := 1; id <= r.seq; id++ {
		if s, ok := r.shipments[id]; ok {
			copia := s
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memShipmentRepo) ListByBeerOrder(beerOrderID int) ([]*entity.BeerOrderShipment, error) {
	all, _ := r.List()
	var out []*entity.BeerOrderShipment
	for _, s := range all {
		if s.BeerOrderID == beerOrderID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShipmentRepo) Update(s *entity.BeerOrderShipment) error {
	stored, ok := r.shipments[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Version = stored.Version + 1
	s.CreatedAt = stored.CreatedAt
	s.UpdatedAt = time.Now()
	r.shipments[s.ID] = *s
	return nil
}

func (r *memShipmentRepo) Delete(id int) (bool, error) {
	if _, ok := r.shipments[id]; !ok {
		return false, nil
	}
	delete(r.shipments, id)
	return true, nil
}

// memTx reproduce la semántica transaccional: si el callback falla, restaura
// el estado previo de pedidos y líneas.
type memTx struct {
	orders *memOrderRepo
	lines  *memLineRepo
	beers  *memBeerRepo
}

func (tx *memTx) Run(fn func(
	orderRepo repository.BeerOrderRepository,
	lineRepo repository.BeerOrderLineRepository,
	beerRepo repository.BeerRepository,
) error) error {
	ordersBackup := make(map[int]entity.BeerOrder, len(tx.orders.orders))
	for k, v := range tx.orders.orders {
		ordersBackup[k] = v
	}
	linesBackup := make(map[int]entity.BeerOrderLine, len(tx.lines.lines))
	for k, v := range tx.lines.lines {
		linesBackup[k] = v
	}
	orderSeq, lineSeq := tx.orders.seq, tx.lines.seq
	if err := fn(tx.orders, tx.lines, tx.beers); err != nil {
		tx.orders.orders = ordersBackup
		tx.lines.lines = linesBackup
		tx.orders.seq, tx.lines.seq = orderSeq, lineSeq
		return err
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// newTestApp levanta una app fiber con las rutas reales sobre stores en
// memoria, lista para app.Test.
func newTestApp() (*fiber.App, *memBeerRepo, *memOrderRepo) {
	beers := newMemBeerRepo()
	customers := newMemCustomerRepo()
	lines := &memLineRepo{lines: make(map[int]entity.BeerOrderLine), beers: beers}
	orders := &memOrderRepo{orders: make(map[int]entity.BeerOrder), lines: lines}
	shipments := &memShipmentRepo{shipments: make(map[int]entity.BeerOrderShipment)}
	tx := &memTx{orders: orders, lines: lines, beers: beers}

	app := fiber.New()
	Router(app, RouterDeps{
		BeerUC:     usecase.NewBeerUseCase(beers),
		CustomerUC: usecase.NewCustomerUseCase(customers, orders),
		OrderUC:    usecase.NewBeerOrderUseCase(tx, orders),
		ShipmentUC: usecase.NewBeerOrderShipmentUseCase(shipments, orders),
	})
	return app, beers, orders
}

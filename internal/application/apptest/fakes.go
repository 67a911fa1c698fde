// Package apptest provee dobles en memoria de los puertos de persistencia
// para probar los casos de uso sin base de datos. El FakeTxRunner no simula
// rollback de datos; los tests verifican efectos, no aislamiento.
package apptest

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jdvaldes/acopio-api/internal/application/ports"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// Store agrupa todos los repositorios falsos sobre mapas en memoria.
type Store struct {
	Productos      *FakeProductoRepo
	Presentaciones *FakePresentacionRepo
	Almacenes      *FakeAlmacenRepo
	Clientes       *FakeClienteRepo
	Lotes          *FakeLoteRepo
	Inventarios    *FakeInventarioRepo
	Movimientos    *FakeMovimientoRepo
	Ventas         *FakeVentaRepo
	Pagos          *FakePagoRepo
	Pedidos        *FakePedidoRepo
	Mermas         *FakeMermaRepo
	Gastos         *FakeGastoRepo
	Users          *FakeUserRepo
	Proveedores    *FakeProveedorRepo
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Productos:      &FakeProductoRepo{items: map[string]*entity.Producto{}},
		Presentaciones: &FakePresentacionRepo{items: map[string]*entity.Presentacion{}},
		Almacenes:      &FakeAlmacenRepo{items: map[string]*entity.Almacen{}},
		Clientes:       &FakeClienteRepo{items: map[string]*entity.Cliente{}},
		Lotes:          &FakeLoteRepo{items: map[string]*entity.Lote{}},
		Inventarios:    &FakeInventarioRepo{items: map[string]*entity.Inventario{}},
		Movimientos:    &FakeMovimientoRepo{items: map[string]*entity.Movimiento{}},
		Ventas:         &FakeVentaRepo{items: map[string]*entity.Venta{}},
		Pagos:          &FakePagoRepo{items: map[string]*entity.Pago{}},
		Pedidos:        &FakePedidoRepo{items: map[string]*entity.Pedido{}},
		Mermas:         &FakeMermaRepo{items: map[string]*entity.Merma{}},
		Gastos:         &FakeGastoRepo{items: map[string]*entity.Gasto{}},
		Users:          &FakeUserRepo{items: map[string]*entity.User{}},
		Proveedores:    &FakeProveedorRepo{items: map[string]*entity.Proveedor{}},
	}
}

// Repos devuelve el bundle que un TxRunner real construiría sobre una tx.
func (s *Store) Repos() *ports.Repos {
	return &ports.Repos{
		Inventarios:    s.Inventarios,
		Movimientos:    s.Movimientos,
		Lotes:          s.Lotes,
		Ventas:         s.Ventas,
		Pagos:          s.Pagos,
		Clientes:       s.Clientes,
		Pedidos:        s.Pedidos,
		Presentaciones: s.Presentaciones,
		Mermas:         s.Mermas,
	}
}

// FakeTxRunner ejecuta el callback contra los repositorios del Store.
type FakeTxRunner struct {
	Store *Store
	// Calls cuenta las transacciones ejecutadas.
	Calls int
}

func (f *FakeTxRunner) Run(_ context.Context, fn func(r *ports.Repos) error) error {
	f.Calls++
	return fn(f.Store.Repos())
}

// ─── Producto ───

type FakeProductoRepo struct{ items map[string]*entity.Producto }

func (f *FakeProductoRepo) Create(p *entity.Producto) error { f.items[p.ID] = p; return nil }
func (f *FakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.items[id], nil
}
func (f *FakeProductoRepo) Update(p *entity.Producto) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}
func (f *FakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeProductoRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Presentacion ───

type FakePresentacionRepo struct{ items map[string]*entity.Presentacion }

func (f *FakePresentacionRepo) Create(p *entity.Presentacion) error { f.items[p.ID] = p; return nil }
func (f *FakePresentacionRepo) GetByID(id string) (*entity.Presentacion, error) {
	return f.items[id], nil
}
func (f *FakePresentacionRepo) GetByProductoYTipo(productoID, tipo string) (*entity.Presentacion, error) {
	for _, p := range f.items {
		if p.ProductoID == productoID && p.Tipo == tipo && p.Activo {
			return p, nil
		}
	}
	return nil, nil
}
func (f *FakePresentacionRepo) Update(p *entity.Presentacion) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}
func (f *FakePresentacionRepo) List(productoID string, soloActivas bool, limit, offset int) ([]*entity.Presentacion, error) {
	out := make([]*entity.Presentacion, 0, len(f.items))
	for _, p := range f.items {
		if productoID != "" && p.ProductoID != productoID {
			continue
		}
		if soloActivas && !p.Activo {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakePresentacionRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Almacen ───

type FakeAlmacenRepo struct{ items map[string]*entity.Almacen }

func (f *FakeAlmacenRepo) Create(a *entity.Almacen) error { f.items[a.ID] = a; return nil }
func (f *FakeAlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	return f.items[id], nil
}
func (f *FakeAlmacenRepo) Update(a *entity.Almacen) error {
	if _, ok := f.items[a.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[a.ID] = a
	return nil
}
func (f *FakeAlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	out := make([]*entity.Almacen, 0, len(f.items))
	for _, a := range f.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeAlmacenRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Proveedor ───

type FakeProveedorRepo struct{ items map[string]*entity.Proveedor }

func (f *FakeProveedorRepo) Create(p *entity.Proveedor) error {
	for _, existente := range f.items {
		if strings.EqualFold(existente.Nombre, p.Nombre) {
			return domain.ErrDuplicate
		}
	}
	f.items[p.ID] = p
	return nil
}
func (f *FakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return f.items[id], nil
}
func (f *FakeProveedorRepo) Update(p *entity.Proveedor) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existente := range f.items {
		if id != p.ID && strings.EqualFold(existente.Nombre, p.Nombre) {
			return domain.ErrDuplicate
		}
	}
	f.items[p.ID] = p
	return nil
}
func (f *FakeProveedorRepo) List(nombre string, limit, offset int) ([]*entity.Proveedor, error) {
	out := make([]*entity.Proveedor, 0, len(f.items))
	for _, p := range f.items {
		if nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(nombre)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return paginate(out, limit, offset), nil
}
func (f *FakeProveedorRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Cliente ───

type FakeClienteRepo struct{ items map[string]*entity.Cliente }

func (f *FakeClienteRepo) Create(c *entity.Cliente) error { f.items[c.ID] = c; return nil }
func (f *FakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.items[id], nil
}
func (f *FakeClienteRepo) Update(c *entity.Cliente) error {
	if _, ok := f.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[c.ID] = c
	return nil
}
func (f *FakeClienteRepo) ActualizarProyeccion(id string, ultimaCompra time.Time, frecuenciaDias int) error {
	c, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.UltimaFechaCompra = &ultimaCompra
	c.FrecuenciaCompraDias = &frecuenciaDias
	return nil
}
func (f *FakeClienteRepo) Search(nombre string, limit, offset int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0)
	for _, c := range f.items {
		if strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(nombre)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeClienteRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Lote ───

type FakeLoteRepo struct{ items map[string]*entity.Lote }

func (f *FakeLoteRepo) Create(l *entity.Lote) error { f.items[l.ID] = l; return nil }
func (f *FakeLoteRepo) GetByID(id string) (*entity.Lote, error) {
	return copiaLote(f.items[id]), nil
}

// GetForUpdate devuelve una copia: los casos de uso mutan la entidad antes de
// Update, igual que con una fila leída de la BD.
func (f *FakeLoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	return copiaLote(f.items[id]), nil
}
func (f *FakeLoteRepo) Update(l *entity.Lote) error {
	if _, ok := f.items[l.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[l.ID] = copiaLote(l)
	return nil
}

func copiaLote(l *entity.Lote) *entity.Lote {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
func (f *FakeLoteRepo) List(productoID string, limit, offset int) ([]*entity.Lote, error) {
	out := make([]*entity.Lote, 0, len(f.items))
	for _, l := range f.items {
		if productoID != "" && l.ProductoID != productoID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeLoteRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Inventario ───

type FakeInventarioRepo struct{ items map[string]*entity.Inventario }

func (f *FakeInventarioRepo) Create(inv *entity.Inventario) error {
	for _, existing := range f.items {
		if existing.PresentacionID == inv.PresentacionID && existing.AlmacenID == inv.AlmacenID {
			return domain.ErrDuplicate
		}
	}
	f.items[inv.ID] = inv
	return nil
}
func (f *FakeInventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	return copiaInv(f.items[id]), nil
}
func (f *FakeInventarioRepo) GetByIDForUpdate(id string) (*entity.Inventario, error) {
	return copiaInv(f.items[id]), nil
}

// Get devuelve una copia: los casos de uso mutan la entidad antes de Update,
// igual que con una fila leída de la BD.
func (f *FakeInventarioRepo) Get(presentacionID, almacenID string) (*entity.Inventario, error) {
	for _, inv := range f.items {
		if inv.PresentacionID == presentacionID && inv.AlmacenID == almacenID {
			return copiaInv(inv), nil
		}
	}
	return nil, nil
}
func (f *FakeInventarioRepo) GetForUpdate(presentacionID, almacenID string) (*entity.Inventario, error) {
	return f.Get(presentacionID, almacenID)
}
func (f *FakeInventarioRepo) Update(inv *entity.Inventario) error {
	if _, ok := f.items[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[inv.ID] = copiaInv(inv)
	return nil
}

func copiaInv(inv *entity.Inventario) *entity.Inventario {
	if inv == nil {
		return nil
	}
	c := *inv
	return &c
}
func (f *FakeInventarioRepo) List(filter repository.InventarioFilter, limit, offset int) ([]*entity.Inventario, error) {
	out := make([]*entity.Inventario, 0, len(f.items))
	for _, inv := range f.items {
		if filter.PresentacionID != "" && inv.PresentacionID != filter.PresentacionID {
			continue
		}
		if filter.AlmacenID != "" && inv.AlmacenID != filter.AlmacenID {
			continue
		}
		if filter.LoteID != "" && (inv.LoteID == nil || *inv.LoteID != filter.LoteID) {
			continue
		}
		if filter.BajoMinimo && inv.Cantidad >= inv.StockMinimo {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeInventarioRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Movimiento ───

type FakeMovimientoRepo struct {
	items map[string]*entity.Movimiento
	seq   int
	orden map[string]int // preserva orden de inserción para listados
}

func (f *FakeMovimientoRepo) Create(m *entity.Movimiento) error {
	if f.orden == nil {
		f.orden = map[string]int{}
	}
	f.seq++
	f.orden[m.ID] = f.seq
	f.items[m.ID] = m
	return nil
}
func (f *FakeMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	return f.items[id], nil
}
func (f *FakeMovimientoRepo) ListSalidasPorVenta(ventaID string) ([]*entity.Movimiento, error) {
	out := make([]*entity.Movimiento, 0)
	for _, m := range f.items {
		if m.Tipo == entity.MovimientoTipoSalida && m.VentaID != nil && *m.VentaID == ventaID {
			out = append(out, m)
		}
	}
	f.ordenar(out)
	return out, nil
}
func (f *FakeMovimientoRepo) ExistePara(presentacionID, almacenID string) (bool, error) {
	for _, m := range f.items {
		if m.PresentacionID == presentacionID && m.AlmacenID == almacenID {
			return true, nil
		}
	}
	return false, nil
}
func (f *FakeMovimientoRepo) List(filter repository.MovimientoFilter, limit, offset int) ([]*entity.Movimiento, error) {
	out := make([]*entity.Movimiento, 0, len(f.items))
	for _, m := range f.items {
		if filter.PresentacionID != "" && m.PresentacionID != filter.PresentacionID {
			continue
		}
		if filter.AlmacenID != "" && m.AlmacenID != filter.AlmacenID {
			continue
		}
		if filter.LoteID != "" && (m.LoteID == nil || *m.LoteID != filter.LoteID) {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.Desde != nil && m.Fecha.Before(*filter.Desde) {
			continue
		}
		if filter.Hasta != nil && m.Fecha.After(*filter.Hasta) {
			continue
		}
		out = append(out, m)
	}
	f.ordenar(out)
	return paginate(out, limit, offset), nil
}
func (f *FakeMovimientoRepo) Delete(id string) error { delete(f.items, id); return nil }

func (f *FakeMovimientoRepo) ordenar(movs []*entity.Movimiento) {
	sort.Slice(movs, func(i, j int) bool { return f.orden[movs[i].ID] < f.orden[movs[j].ID] })
}

// Todos devuelve todos los movimientos en orden de inserción (solo tests).
func (f *FakeMovimientoRepo) Todos() []*entity.Movimiento {
	out := make([]*entity.Movimiento, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, m)
	}
	f.ordenar(out)
	return out
}

// ─── Venta ───

type FakeVentaRepo struct{ items map[string]*entity.Venta }

func (f *FakeVentaRepo) Create(v *entity.Venta) error { f.items[v.ID] = v; return nil }
func (f *FakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	return f.items[id], nil
}
func (f *FakeVentaRepo) GetForUpdate(id string) (*entity.Venta, error) {
	return f.items[id], nil
}
func (f *FakeVentaRepo) UpdateEstadoPago(id, estado string) error {
	v, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.EstadoPago = estado
	return nil
}
func (f *FakeVentaRepo) List(filter repository.VentaFilter, limit, offset int) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(f.items))
	for _, v := range f.items {
		if filter.ClienteID != "" && v.ClienteID != filter.ClienteID {
			continue
		}
		if filter.AlmacenID != "" && v.AlmacenID != filter.AlmacenID {
			continue
		}
		if filter.VendedorID != "" && v.VendedorID != filter.VendedorID {
			continue
		}
		if filter.EstadoPago != "" && v.EstadoPago != filter.EstadoPago {
			continue
		}
		if filter.Desde != nil && v.Fecha.Before(*filter.Desde) {
			continue
		}
		if filter.Hasta != nil && v.Fecha.After(*filter.Hasta) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeVentaRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Pago ───

type FakePagoRepo struct{ items map[string]*entity.Pago }

func (f *FakePagoRepo) Create(p *entity.Pago) error { f.items[p.ID] = p; return nil }
func (f *FakePagoRepo) GetByID(id string) (*entity.Pago, error) {
	return f.items[id], nil
}
func (f *FakePagoRepo) ListByVenta(ventaID string) ([]*entity.Pago, error) {
	out := make([]*entity.Pago, 0)
	for _, p := range f.items {
		if p.VentaID == ventaID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *FakePagoRepo) List(ventaID, metodoPago string, limit, offset int) ([]*entity.Pago, error) {
	out := make([]*entity.Pago, 0, len(f.items))
	for _, p := range f.items {
		if ventaID != "" && p.VentaID != ventaID {
			continue
		}
		if metodoPago != "" && p.MetodoPago != metodoPago {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakePagoRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Pedido ───

type FakePedidoRepo struct{ items map[string]*entity.Pedido }

func (f *FakePedidoRepo) Create(p *entity.Pedido) error { f.items[p.ID] = p; return nil }
func (f *FakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return f.items[id], nil
}
func (f *FakePedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) { return f.items[id], nil }
func (f *FakePedidoRepo) Update(p *entity.Pedido) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}
func (f *FakePedidoRepo) UpdateEstado(id, estado string) error {
	p, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estado = estado
	return nil
}
func (f *FakePedidoRepo) List(filter repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.items))
	for _, p := range f.items {
		if filter.ClienteID != "" && p.ClienteID != filter.ClienteID {
			continue
		}
		if filter.AlmacenID != "" && p.AlmacenID != filter.AlmacenID {
			continue
		}
		if filter.VendedorID != "" && p.VendedorID != filter.VendedorID {
			continue
		}
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakePedidoRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Merma ───

type FakeMermaRepo struct{ items map[string]*entity.Merma }

func (f *FakeMermaRepo) Create(m *entity.Merma) error { f.items[m.ID] = m; return nil }
func (f *FakeMermaRepo) GetByID(id string) (*entity.Merma, error) {
	return f.items[id], nil
}
func (f *FakeMermaRepo) List(loteID string, convertido *bool, limit, offset int) ([]*entity.Merma, error) {
	out := make([]*entity.Merma, 0, len(f.items))
	for _, m := range f.items {
		if loteID != "" && m.LoteID != loteID {
			continue
		}
		if convertido != nil && m.ConvertidoABriquetas != *convertido {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeMermaRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── Gasto ───

type FakeGastoRepo struct{ items map[string]*entity.Gasto }

func (f *FakeGastoRepo) Create(g *entity.Gasto) error { f.items[g.ID] = g; return nil }
func (f *FakeGastoRepo) GetByID(id string) (*entity.Gasto, error) {
	return f.items[id], nil
}
func (f *FakeGastoRepo) Update(g *entity.Gasto) error {
	if _, ok := f.items[g.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[g.ID] = g
	return nil
}
func (f *FakeGastoRepo) List(categoria string, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error) {
	out := make([]*entity.Gasto, 0, len(f.items))
	for _, g := range f.items {
		if categoria != "" && g.Categoria != categoria {
			continue
		}
		if desde != nil && g.Fecha.Before(*desde) {
			continue
		}
		if hasta != nil && g.Fecha.After(*hasta) {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeGastoRepo) Delete(id string) error { delete(f.items, id); return nil }

// ─── User ───

type FakeUserRepo struct{ items map[string]*entity.User }

func (f *FakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.items {
		if existing.Username == u.Username {
			return domain.ErrUsernameExists
		}
	}
	f.items[u.ID] = u
	return nil
}
func (f *FakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.items[id], nil
}
func (f *FakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *FakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.items))
	for _, u := range f.items {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}
func (f *FakeUserRepo) Delete(id string) error { delete(f.items, id); return nil }

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

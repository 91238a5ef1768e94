package billing

import (
	"context"
	"testing"
)

func TestBuildSnapshotsTierPrice(t *testing.T) {
	cat := newMemCatalog()
	acme := cat.addClient("Acme", "Revendedor")
	widget := cat.addProduct("Widget", 10, 20, 15)

	remito, err := Build(context.Background(), cat, acme.ID.Hex(), TierRevendedor, []Item{
		{Producto: widget.ID.Hex(), Cantidad: 3},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(remito.Productos) != 1 {
		t.Fatalf("expected 1 line, got %d", len(remito.Productos))
	}
	line := remito.Productos[0]
	if line.Cantidad != 3 || line.PrecioUnitario != 15 || line.Subtotal != 45 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if remito.Total != 45 {
		t.Fatalf("expected total 45, got %v", remito.Total)
	}
	if remito.Cliente != acme.ID {
		t.Fatalf("expected cliente %s, got %s", acme.ID.Hex(), remito.Cliente.Hex())
	}
}

func TestBuildTotalIsSumOfSubtotals(t *testing.T) {
	cat := newMemCatalog()
	client := cat.addClient("Juan", "Consumidor Final")
	p1 := cat.addProduct("A", 1, 2.5, 2)
	p2 := cat.addProduct("B", 3, 7.25, 6)

	remito, err := Build(context.Background(), cat, client.ID.Hex(), TierConsumidorFinal, []Item{
		{Producto: p1.ID.Hex(), Cantidad: 4},
		{Producto: p2.ID.Hex(), Cantidad: 2},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var sum float64
	for _, line := range remito.Productos {
		if line.Subtotal != line.Cantidad*line.PrecioUnitario {
			t.Errorf("subtotal %v != %v * %v", line.Subtotal, line.Cantidad, line.PrecioUnitario)
		}
		sum += line.Subtotal
	}
	if remito.Total != sum {
		t.Fatalf("total %v != sum of subtotals %v", remito.Total, sum)
	}
}

func TestBuildCostTier(t *testing.T) {
	cat := newMemCatalog()
	client := cat.addClient("Acme", "Revendedor")
	widget := cat.addProduct("Widget", 10, 20, 15)

	remito, err := Build(context.Background(), cat, client.ID.Hex(), TierCosto, []Item{
		{Producto: widget.ID.Hex(), Cantidad: 2},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if remito.Total != 20 {
		t.Fatalf("expected cost-tier total 20, got %v", remito.Total)
	}
}

func TestBuildUnknownTierDefaultsToZero(t *testing.T) {
	cat := newMemCatalog()
	client := cat.addClient("Acme", "Revendedor")
	widget := cat.addProduct("Widget", 10, 20, 15)

	remito, err := Build(context.Background(), cat, client.ID.Hex(), PriceTier("mayorista"), []Item{
		{Producto: widget.ID.Hex(), Cantidad: 3},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if remito.Total != 0 || remito.Productos[0].PrecioUnitario != 0 {
		t.Fatalf("unknown tier must price lines at 0, got %+v", remito.Productos[0])
	}
}

func TestBuildValidation(t *testing.T) {
	cat := newMemCatalog()
	client := cat.addClient("Acme", "Revendedor")
	widget := cat.addProduct("Widget", 10, 20, 15)

	cases := []struct {
		name    string
		cliente string
		items   []Item
	}{
		{"empty items", client.ID.Hex(), nil},
		{"zero quantity", client.ID.Hex(), []Item{{Producto: widget.ID.Hex(), Cantidad: 0}}},
		{"negative quantity", client.ID.Hex(), []Item{{Producto: widget.ID.Hex(), Cantidad: -1}}},
		{"missing client", "64b000000000000000000000", []Item{{Producto: widget.ID.Hex(), Cantidad: 1}}},
		{"missing product", client.ID.Hex(), []Item{{Producto: "64b000000000000000000000", Cantidad: 1}}},
	}

	for _, tc := range cases {
		_, err := Build(context.Background(), cat, tc.cliente, TierRevendedor, tc.items)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestBuildSnapshotSurvivesPriceChange(t *testing.T) {
	cat := newMemCatalog()
	client := cat.addClient("Acme", "Revendedor")
	widget := cat.addProduct("Widget", 10, 20, 15)

	remito, err := Build(context.Background(), cat, client.ID.Hex(), TierRevendedor, []Item{
		{Producto: widget.ID.Hex(), Cantidad: 3},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Change the product price after the fact; the stored snapshot must not
	// move.
	widget.PrecioRevendedor = 99
	cat.products[widget.ID.Hex()] = widget

	if remito.Productos[0].PrecioUnitario != 15 || remito.Total != 45 {
		t.Fatalf("snapshot changed after product edit: %+v", remito.Productos[0])
	}
}

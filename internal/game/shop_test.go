package game

import "testing"

func testShop(t *testing.T, seedText string) (*Shop, *Content) {
	t.Helper()
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	seed, err := NewRunSeed(seedText)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewShop("deepmarket", c, seed), c
}

func TestRestockDeterministicPerDay(t *testing.T) {
	a, _ := testShop(t, "market")
	b, _ := testShop(t, "market")
	a.Restock(3)
	b.Restock(3)
	if len(a.Stock()) == 0 {
		t.Fatalf("expected stock after restock")
	}
	if len(a.Stock()) != len(b.Stock()) {
		t.Fatalf("stock size differs: %d vs %d", len(a.Stock()), len(b.Stock()))
	}
	for i := range a.Stock() {
		if a.Stock()[i] != b.Stock()[i] {
			t.Fatalf("stock entry %d differs: %+v vs %+v", i, a.Stock()[i], b.Stock()[i])
		}
	}
}

func TestRestockSameDayKeepsStock(t *testing.T) {
	s, _ := testShop(t, "market")
	s.Restock(1)
	p := NewPlayer("Buyer", RaceHuman, BackgroundMiner, nil)
	p.Gold = 100000
	first := s.Stock()[0]
	res := s.Buy(&p, first.ItemID)
	if !res.OK {
		t.Fatalf("expected purchase to succeed: %s", res.Message)
	}
	after := s.stockCount(first.ItemID)
	s.Restock(1)
	if s.stockCount(first.ItemID) != after {
		t.Fatalf("expected same-day restock not to refill")
	}
	s.Restock(2)
	if len(s.Stock()) == 0 {
		t.Fatalf("expected next-day restock to refill")
	}
}

func (s *Shop) stockCount(id string) int {
	for _, st := range s.stock {
		if st.ItemID == id {
			return st.Count
		}
	}
	return 0
}

func TestBuyFailures(t *testing.T) {
	s, _ := testShop(t, "market")
	s.Restock(0)
	p := NewPlayer("Pauper", RaceHuman, BackgroundMiner, nil)
	p.Gold = 0
	first := s.Stock()[0]
	before := p.Pack.Count(first.ItemID)
	res := s.Buy(&p, first.ItemID)
	if res.OK {
		t.Fatalf("expected refusal with no gold")
	}
	if p.Pack.Count(first.ItemID) != before {
		t.Fatalf("expected failed buy to add nothing")
	}
	res = s.Buy(&p, "crown_of_the_deep_king")
	if res.OK {
		t.Fatalf("expected relic never stocked")
	}
}

func TestSellPaysFraction(t *testing.T) {
	s, c := testShop(t, "market")
	p := NewPlayer("Vendor", RaceHuman, BackgroundMiner, nil)
	p.Pack.Add("iron_sword", 1)
	gold := p.Gold
	res := s.Sell(&p, "iron_sword")
	if !res.OK {
		t.Fatalf("expected sale to succeed: %s", res.Message)
	}
	def, _ := c.Item("iron_sword")
	if p.Gold != gold+s.SellPrice(def) {
		t.Fatalf("expected %d marks paid, got %d", s.SellPrice(def), p.Gold-gold)
	}
	if p.Pack.Count("iron_sword") != 0 {
		t.Fatalf("expected sword gone from pack")
	}
	p.Pack.Add("crown_of_the_deep_king", 1)
	if res := s.Sell(&p, "crown_of_the_deep_king"); res.OK {
		t.Fatalf("expected relic refused")
	}
}

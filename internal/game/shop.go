package game

import "fmt"

// Shops pay two fifths of catalog price for player goods.
const sellNumerator, sellDenominator = 2, 5

// StockEntry is one shop offer: what, how many, and at what asking price.
type StockEntry struct {
	ItemID string
	Count  int
	Price  int
}

// Shop sells from a stock rolled fresh each day from the run seed. The same
// run sees the same stock on the same day, before purchases.
type Shop struct {
	Name    string
	content *Content
	seed    RunSeed
	day     int
	stocked bool
	stock   []StockEntry
}

// NewShop creates a shop with no stock; the first Restock fills it.
func NewShop(name string, content *Content, seed RunSeed) *Shop {
	return &Shop{Name: name, content: content, seed: seed}
}

// Restock rolls the day's stock. Calling it again for the same day keeps the
// current stock, including what purchases already consumed.
func (s *Shop) Restock(day int) {
	if s.stocked && day == s.day {
		return
	}
	s.day = day
	s.stocked = true
	s.stock = s.stock[:0]

	st := s.seed.Stream(fmt.Sprintf("shop:%s:day:%d", s.Name, day))
	candidates := make([]ItemDef, 0, len(s.content.Items))
	weights := make([]int, 0, len(s.content.Items))
	for _, it := range s.content.Items {
		if it.Kind == ItemRelic {
			continue
		}
		candidates = append(candidates, it)
		weights = append(weights, rarityWeight(it.Rarity))
	}
	if len(candidates) == 0 {
		return
	}

	rolls := st.Range(8, 12)
	for i := 0; i < rolls; i++ {
		def := candidates[st.WeightedIndex(weights)]
		count := 1
		if def.Rarity == RarityCommon {
			count = st.Range(1, 3)
		}
		s.addStock(def, count, st)
	}
}

func (s *Shop) addStock(def ItemDef, count int, st *Stream) {
	for i := range s.stock {
		if s.stock[i].ItemID == def.ID {
			s.stock[i].Count += count
			return
		}
	}
	// market swing of up to ten percent either way, fixed per item per day
	swing := st.Child("price:" + def.ID).Range(90, 110)
	price := def.Price * swing / 100
	if price < 1 {
		price = 1
	}
	s.stock = append(s.stock, StockEntry{ItemID: def.ID, Count: count, Price: price})
}

func rarityWeight(r Rarity) int {
	switch r {
	case RarityCommon:
		return 12
	case RarityUncommon:
		return 5
	case RarityRare:
		return 2
	}
	return 0
}

// Stock returns the current offers in roll order.
func (s *Shop) Stock() []StockEntry { return s.stock }

// SellPrice is what the shop pays for one of the item.
func (s *Shop) SellPrice(def ItemDef) int {
	p := def.Price * sellNumerator / sellDenominator
	if p < 1 {
		p = 1
	}
	return p
}

// Buy moves one item from stock into the player's pack for gold. Failures
// leave both sides untouched.
func (s *Shop) Buy(p *Player, itemID string) ActionResult {
	for i := range s.stock {
		if s.stock[i].ItemID != itemID {
			continue
		}
		if s.stock[i].Count <= 0 {
			break
		}
		def, ok := s.content.Item(itemID)
		if !ok {
			break
		}
		price := s.stock[i].Price
		if !p.Pay(price) {
			return Failure("You can't afford the %s (%d marks).", def.Name, price)
		}
		s.stock[i].Count--
		if s.stock[i].Count == 0 {
			s.stock = append(s.stock[:i], s.stock[i+1:]...)
		}
		p.Pack.Add(itemID, 1)
		return Success("Bought %s for %d marks.", def.Name, price)
	}
	return Failure("That is out of stock.")
}

// Sell moves one item from the pack to the shop for gold. Relics are
// refused; shopkeeps know better.
func (s *Shop) Sell(p *Player, itemID string) ActionResult {
	def, ok := s.content.Item(itemID)
	if !ok {
		return Failure("The shopkeep squints at it and shrugs.")
	}
	if def.Kind == ItemRelic {
		return Failure("The shopkeep won't touch the %s.", def.Name)
	}
	if !p.Pack.Remove(itemID, 1) {
		return Failure("You don't have a %s to sell.", def.Name)
	}
	price := s.SellPrice(def)
	p.Gold += price
	return Success("Sold %s for %d marks.", def.Name, price)
}

package game

import "fmt"

// Crafting resolves recipes against a player's materials and background.
type Crafting struct {
	content *Content
}

// NewCrafting builds the crafting system over the recipe catalog.
func NewCrafting(content *Content) *Crafting {
	return &Crafting{content: content}
}

// Known lists the recipes this player can attempt, catalog order.
func (c *Crafting) Known(p *Player) []RecipeDef {
	out := make([]RecipeDef, 0, len(c.content.Recipes))
	for _, rc := range c.content.Recipes {
		if rc.Background == "" || rc.Background == p.Background {
			out = append(out, rc)
		}
	}
	return out
}

// MissingMaterial names the first shortfall for a recipe, or ok=true.
func (c *Crafting) MissingMaterial(p *Player, rc RecipeDef) (string, bool) {
	for _, mat := range materialOrder(c.content, rc) {
		need := rc.Materials[mat]
		if p.Pack.Count(mat) < need {
			def, _ := c.content.Item(mat)
			return fmt.Sprintf("%s (%d of %d)", def.Name, p.Pack.Count(mat), need), false
		}
	}
	return "", true
}

// Craft consumes materials and adds the output, rolling a quality for
// flavor. Failures consume nothing.
func (c *Crafting) Craft(p *Player, recipeID string, st *Stream) ActionResult {
	rc, ok := c.content.Recipe(recipeID)
	if !ok {
		return Failure("You don't know how to make that.")
	}
	if rc.Background != "" && rc.Background != p.Background {
		return Failure("Your hands were never taught this work.")
	}
	if missing, ok := c.MissingMaterial(p, rc); !ok {
		return Failure("Short on %s.", missing)
	}
	for mat, need := range rc.Materials {
		p.Pack.Remove(mat, need)
	}
	out, _ := c.content.Item(rc.Output)
	p.Pack.Add(rc.Output, rc.Count)
	q := rollQuality(st, p.Attributes[AttrWits])
	if rc.Count > 1 {
		return Success("You make %d %s. The work is %s.", rc.Count, out.Name, q)
	}
	return Success("You make a %s. The work is %s.", out.Name, q)
}

// rollQuality skews toward fine work with higher wits.
func rollQuality(st *Stream, wits int) Quality {
	fine := 10 + 2*wits
	poor := 25 - wits
	if poor < 5 {
		poor = 5
	}
	roll := st.Intn(100)
	switch {
	case roll < fine:
		return QualityFine
	case roll < fine+poor:
		return QualityPoor
	}
	return QualitySound
}

// materialOrder lists a recipe's materials in catalog order so shortfall
// messages are stable.
func materialOrder(c *Content, rc RecipeDef) []string {
	out := make([]string, 0, len(rc.Materials))
	for _, it := range c.Items {
		if _, ok := rc.Materials[it.ID]; ok {
			out = append(out, it.ID)
		}
	}
	return out
}

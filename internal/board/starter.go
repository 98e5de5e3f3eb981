package board

// Starter returns a small board used when no board file exists yet.
func Starter() *Board {
	b := New()
	defaults := []struct {
		key, name string
		items     [][2]string
	}{
		{"img/food/plate.png", "food", [][2]string{
			{"img/food/icons8-french-fries-96.png", "french fries"},
			{"img/food/icons8-watermelon-96.png", "watermelon"},
			{"img/food/icons8-water-96.png", "water please"},
		}},
		{"img/clothing/hanger.png", "clothing", [][2]string{
			{"img/clothing/collaredshirt.png", "collared shirt"},
			{"img/clothing/jacket.png", "I am cold"},
		}},
		{"img/feelings/heart.png", "feelings", [][2]string{
			{"img/feelings/happy.png", "I feel happy"},
			{"img/feelings/tired.png", "I am tired"},
			{"img/feelings/help.png", "I need help"},
		}},
	}
	for _, d := range defaults {
		b.AddItem(d.key, d.name)
		for _, it := range d.items {
			b.AddItem(it[0], it[1])
		}
		b.Reset()
	}
	return b
}

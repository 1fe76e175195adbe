// internal/domain/catalog/seed.go
package catalog

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// seedProducts returns the built-in product reference list.
func seedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Organic Turmeric Powder",
			Description: "Premium quality organic turmeric powder with high curcumin content.",
			Category:    "Spices",
			Image:       "/images/products/turmeric.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100g", Price: price(50)},
				{Size: "200g", Price: price(100)},
			},
		},
		{
			ID:          "2",
			Name:        "Pure Desi Ghee",
			Description: "Traditional clarified butter made from pure cow milk.",
			Category:    "Dairy",
			Image:       "/images/products/ghee.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "200ml", Price: price(300)},
				{Size: "500ml", Price: price(600)},
				{Size: "1L", Price: price(1100)},
			},
		},
		{
			ID:          "3",
			Name:        "Organic Red Chilli Powder",
			Description: "Premium quality organic red chilli powder.",
			Category:    "Spices",
			Image:       "/images/products/red-chilli.webp",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100g", Price: price(50)},
				{Size: "200g", Price: price(100)},
			},
		},
		{
			ID:          "4",
			Name:        "Premium Basmati Rice",
			Description: "Long grain aromatic basmati rice.",
			Category:    "Rice",
			Image:       "/images/products/basmati.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "500g", Price: price(115)},
				{Size: "1kg", Price: price(230)},
			},
		},
		{
			ID:          "5",
			Name:        "Garam Masala",
			Description: "Traditional blend of ground spices.",
			Category:    "Spices",
			Image:       "/images/products/garam-masala.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "50g", Price: price(50)},
				{Size: "100g", Price: price(100)},
			},
		},
		{
			ID:          "6",
			Name:        "Organic Pressed Coconut Oil",
			Description: "Cold pressed coconut oil.",
			Category:    "Oils",
			Image:       "/images/products/coconut-oil.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100ml", Price: price(100)},
				{Size: "200ml", Price: price(200)},
			},
		},
		{
			ID:          "7",
			Name:        "Organic Black Mustard Oil",
			Description: "Cold pressed black mustard oil.",
			Category:    "Oils",
			Image:       "/images/products/mustard-oil.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "500ml", Price: price(70)},
				{Size: "1L", Price: price(150)},
			},
		},
		{
			ID:          "8",
			Name:        "Organic Butter",
			Description: "Fresh organic butter.",
			Category:    "Dairy",
			Image:       "/images/products/butter.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100g", Price: price(100)},
				{Size: "200g", Price: price(200)},
				{Size: "500g", Price: price(450)},
				{Size: "1kg", Price: price(900)},
			},
		},
		{
			ID:          "9",
			Name:        "Organic Lassi (Butter Milk)",
			Description: "Fresh churned buttermilk.",
			Category:    "Dairy",
			Image:       "/images/products/lassi.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "500ml", Price: price(20)},
				{Size: "1L", Price: price(35)},
			},
		},
		{
			ID:          "10",
			Name:        "Organic Yellow Mustard Oil",
			Description: "Cold pressed yellow mustard oil.",
			Category:    "Oils",
			Image:       "/images/products/yellow-mustard-oil.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "500ml", Price: price(80)},
				{Size: "1L", Price: price(150)},
			},
		},
		{
			ID:          "11",
			Name:        "Organic Til Oil",
			Description: "Cold pressed sesame oil.",
			Category:    "Oils",
			Image:       "/images/products/til-oil.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100ml", Price: price(250)},
				{Size: "200ml", Price: price(450)},
				{Size: "500ml", Price: price(750)},
				{Size: "1L", Price: price(1550)},
			},
		},
		{
			ID:          "13",
			Name:        "Organic Pink Salt / Sindha Salt",
			Description: "Natural rock salt.",
			Category:    "Salts",
			Image:       "/images/products/pink-salt.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100g", Price: price(40)},
				{Size: "200g", Price: price(80)},
			},
		},
		{
			ID:          "15",
			Name:        "A2 Gir Cow Bilona Ghee",
			Description: "Organic, pure and natural A2 Gir cow bilona ghee.",
			Category:    "Dairy",
			Image:       "/images/products/a2-cow-ghee.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100ml", Price: price(250)},
				{Size: "200ml", Price: price(450)},
				{Size: "500ml", Price: price(750)},
				{Size: "1L", Price: price(1550)},
			},
		},
		{
			ID:          "17",
			Name:        "Organic Khand",
			Description: "Unrefined natural sweetener.",
			Category:    "Natural Sweetness",
			Image:       "/images/products/khand.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "200g", Price: price(40)},
				{Size: "500g", Price: price(80)},
				{Size: "1kg", Price: price(160)},
			},
		},
		{
			ID:          "19",
			Name:        "Organic Jaggery (GUD)",
			Description: "Traditional cane jaggery.",
			Category:    "Natural Sweetness",
			Image:       "/images/products/jaggery.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "200g", Price: price(40)},
				{Size: "500g", Price: price(80)},
				{Size: "1kg", Price: price(160)},
			},
		},
		{
			ID:          "21",
			Name:        "Lichi Honey",
			Description: "Raw honey from lichi orchards.",
			Category:    "Honey",
			Image:       "/images/products/lichi-honey.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "100ml", Price: price(80)},
				{Size: "200ml", Price: price(150)},
				{Size: "500ml", Price: price(400)},
				{Size: "1L", Price: price(750)},
			},
		},
		{
			ID:          "27",
			Name:        "Moong Whole",
			Description: "Whole green gram.",
			Category:    "Pulses",
			Image:       "/images/products/moong.jpg",
			InStock:     true,
			Sizes: []ProductSize{
				{Size: "200g", Price: price(40)},
				{Size: "500g", Price: price(80)},
				{Size: "1kg", Price: price(160)},
			},
		},
	}
}

package catalog

import "github.com/m04kA/Aristocrat-ReservationService/internal/domain"

// defaultCocktails коктейльная карта бара
var defaultCocktails = []domain.Cocktail{
	{
		ID:          "1",
		Name:        "Sunset Margarita",
		Description: "A vibrant twist on the classic margarita with layers of tropical flavors",
		Image:       "/images/optimized/1.webp",
		Ingredients: []string{
			"2 oz Tequila",
			"1 oz Cointreau",
			"1 oz Fresh lime juice",
			"1/2 oz Mango puree",
			"1/2 oz Grenadine",
			"Salt for rim",
		},
		Instructions: []string{
			"Rim glass with salt",
			"Add tequila, Cointreau, and lime juice to shaker",
			"Fill with ice and shake vigorously",
			"Strain into glass over fresh ice",
			"Slowly pour grenadine to create sunset effect",
		},
		Category: "Tropical",
		Alcohol:  20,
		Color:    "gradient-to-br from-cocktail-yellow via-cocktail-orange to-cocktail-red",
		Price:    "€18",
	},
	{
		ID:          "2",
		Name:        "Blue Ocean",
		Description: "A refreshing blue cocktail that captures the essence of tropical waters",
		Image:       "/images/optimized/2.webp",
		Ingredients: []string{
			"2 oz Vodka",
			"1 oz Blue Curacao",
			"1 oz Coconut cream",
			"1/2 oz Lime juice",
			"Pineapple wedge for garnish",
		},
		Instructions: []string{
			"Add all ingredients to shaker",
			"Fill with ice and shake well",
			"Strain into chilled martini glass",
			"Garnish with pineapple wedge",
		},
		Category: "Tropical",
		Alcohol:  18,
		Color:    "gradient-to-br from-cocktail-blue to-blue-600",
		Price:    "€20",
	},
	{
		ID:          "3",
		Name:        "Emerald Garden",
		Description: "A fresh and herbal cocktail with notes of mint and cucumber",
		Image:       "/images/optimized/3.webp",
		Ingredients: []string{
			"2 oz Gin",
			"1 oz Elderflower liqueur",
			"3/4 oz Lime juice",
			"6 Mint leaves",
			"3 Cucumber slices",
			"Tonic water",
		},
		Instructions: []string{
			"Muddle mint and cucumber in shaker",
			"Add gin, elderflower liqueur, and lime juice",
			"Fill with ice and shake",
			"Strain into glass with fresh ice",
			"Top with tonic water",
		},
		Category: "Herbal",
		Alcohol:  15,
		Color:    "gradient-to-br from-cocktail-green to-green-600",
		Price:    "€19",
	},
	{
		ID:          "4",
		Name:        "Purple Haze",
		Description: "A mysterious and elegant cocktail with floral notes",
		Image:       "/images/optimized/4.webp",
		Ingredients: []string{
			"2 oz Vodka",
			"1 oz Crème de Violette",
			"1/2 oz Lemon juice",
			"1/4 oz Simple syrup",
			"Egg white",
			"Edible flower for garnish",
		},
		Instructions: []string{
			"Dry shake all ingredients without ice",
			"Add ice and shake again",
			"Double strain into coupe glass",
			"Garnish with edible flower",
		},
		Category: "Elegant",
		Alcohol:  22,
		Color:    "gradient-to-br from-cocktail-purple to-purple-600",
		Price:    "€22",
	},
	{
		ID:          "5",
		Name:        "Golden Hour",
		Description: "A warm and inviting cocktail perfect for sunset moments",
		Image:       "/images/optimized/5.webp",
		Ingredients: []string{
			"2 oz Bourbon",
			"3/4 oz Honey liqueur",
			"1/2 oz Lemon juice",
			"2 dashes Angostura bitters",
			"Orange peel",
		},
		Instructions: []string{
			"Add all ingredients to shaker",
			"Fill with ice and shake",
			"Strain over large ice cube",
			"Express orange peel over drink",
			"Garnish with orange peel",
		},
		Category: "Classic",
		Alcohol:  25,
		Color:    "gradient-to-br from-cocktail-yellow to-yellow-600",
		Price:    "€21",
	},
	{
		ID:          "6",
		Name:        "Ruby Romance",
		Description: "A passionate blend of berries and champagne",
		Image:       "/images/optimized/6.webp",
		Ingredients: []string{
			"1 oz Vodka",
			"1/2 oz Chambord",
			"1/2 oz Lemon juice",
			"1/4 oz Simple syrup",
			"Champagne",
			"Fresh raspberries",
		},
		Instructions: []string{
			"Muddle 3 raspberries in shaker",
			"Add vodka, Chambord, lemon juice, and syrup",
			"Shake with ice",
			"Strain into flute",
			"Top with champagne",
			"Garnish with raspberry",
		},
		Category: "Sparkling",
		Alcohol:  12,
		Color:    "gradient-to-br from-cocktail-red to-red-600",
		Price:    "€24",
	},
	{
		ID:          "7",
		Name:        "Midnight Storm",
		Description: "A dark and mysterious cocktail with activated charcoal and citrus",
		Image:       "/images/optimized/7.webp",
		Ingredients: []string{
			"2 oz Dark rum",
			"1/2 oz Activated charcoal syrup",
			"1 oz Fresh lime juice",
			"1/2 oz Simple syrup",
			"2 dashes Orange bitters",
			"Lime wheel for garnish",
		},
		Instructions: []string{
			"Add all ingredients to shaker",
			"Fill with ice and shake vigorously",
			"Double strain into rocks glass over ice",
			"Garnish with lime wheel",
		},
		Category: "Dark",
		Alcohol:  20,
		Color:    "gradient-to-br from-gray-800 to-gray-600",
		Price:    "€20",
	},
}

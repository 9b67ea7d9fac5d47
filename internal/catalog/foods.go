package catalog

import "github.com/dukerupert/hearth/internal/model"

// foods is the built-in catalog. Order matters: it breaks ties within every
// match rule, so more specific names that share a prefix sit where they
// should rank.
var foods = []FoodItem{
	// Produce
	{Name: "Pineapple", Icon: "🍍", Category: model.CategoryProduce, Aliases: []string{"ananas"}, Keywords: []string{"tropical", "fruit"}},
	{Name: "Apple", Icon: "🍎", Category: model.CategoryProduce, Aliases: []string{"apples", "gala", "granny smith"}, Keywords: []string{"fruit", "snack"}},
	{Name: "Banana", Icon: "🍌", Category: model.CategoryProduce, Aliases: []string{"bananas"}, Keywords: []string{"fruit", "potassium"}},
	{Name: "Orange", Icon: "🍊", Category: model.CategoryProduce, Aliases: []string{"oranges", "clementine"}, Keywords: []string{"citrus", "fruit", "vitamin c"}},
	{Name: "Lemon", Icon: "🍋", Category: model.CategoryProduce, Aliases: []string{"lemons"}, Keywords: []string{"citrus"}},
	{Name: "Strawberries", Icon: "🍓", Category: model.CategoryProduce, Aliases: []string{"strawberry"}, Keywords: []string{"fruit", "berry"}},
	{Name: "Blueberries", Icon: "🫐", Category: model.CategoryProduce, Aliases: []string{"blueberry"}, Keywords: []string{"fruit", "berry", "antioxidant"}},
	{Name: "Grapes", Icon: "🍇", Category: model.CategoryProduce, Aliases: []string{"grape"}, Keywords: []string{"fruit"}},
	{Name: "Avocado", Icon: "🥑", Category: model.CategoryProduce, Aliases: []string{"avocados", "avo"}, Keywords: []string{"healthy fat", "guacamole"}},
	{Name: "Cherry Tomatoes", Icon: "🍅", Category: model.CategoryProduce, Aliases: []string{"grape tomatoes"}, Keywords: []string{"salad", "vegetable"}},
	{Name: "Tomato", Icon: "🍅", Category: model.CategoryProduce, Aliases: []string{"tomatoes", "tom"}, Keywords: []string{"vegetable", "salad"}},
	{Name: "Potato", Icon: "🥔", Category: model.CategoryProduce, Aliases: []string{"potatoes", "spud"}, Keywords: []string{"vegetable", "starch"}},
	{Name: "Onion", Icon: "🧅", Category: model.CategoryProduce, Aliases: []string{"onions", "shallot"}, Keywords: []string{"vegetable", "aromatic"}},
	{Name: "Garlic", Icon: "🧄", Category: model.CategoryProduce, Aliases: []string{"garlic bulb"}, Keywords: []string{"aromatic", "seasoning"}},
	{Name: "Carrot", Icon: "🥕", Category: model.CategoryProduce, Aliases: []string{"carrots"}, Keywords: []string{"vegetable", "root"}},
	{Name: "Broccoli", Icon: "🥦", Category: model.CategoryProduce, Aliases: []string{"broccolini"}, Keywords: []string{"vegetable", "green"}},
	{Name: "Spinach", Icon: "🥬", Category: model.CategoryProduce, Aliases: []string{"baby spinach"}, Keywords: []string{"leafy green", "salad"}},
	{Name: "Lettuce", Icon: "🥬", Category: model.CategoryProduce, Aliases: []string{"romaine", "iceberg"}, Keywords: []string{"leafy green", "salad"}},
	{Name: "Cucumber", Icon: "🥒", Category: model.CategoryProduce, Aliases: []string{"cucumbers"}, Keywords: []string{"vegetable", "salad"}},
	{Name: "Bell Pepper", Icon: "🫑", Category: model.CategoryProduce, Aliases: []string{"peppers", "capsicum"}, Keywords: []string{"vegetable"}},
	{Name: "Jalapeño", Icon: "🌶️", Category: model.CategoryProduce, Aliases: []string{"chili pepper"}, Keywords: []string{"spicy", "pepper"}},
	{Name: "Corn", Icon: "🌽", Category: model.CategoryProduce, Aliases: []string{"sweet corn", "maize"}, Keywords: []string{"vegetable"}},
	{Name: "Mushrooms", Icon: "🍄", Category: model.CategoryProduce, Aliases: []string{"mushroom", "champignon"}, Keywords: []string{"fungi"}},

	// Dairy & eggs
	{Name: "Milk", Icon: "🥛", Category: model.CategoryDairy, Aliases: []string{"whole milk", "skim milk"}, Keywords: []string{"dairy", "calcium", "breakfast"}},
	{Name: "Eggs", Icon: "🥚", Category: model.CategoryDairy, Aliases: []string{"egg", "dozen eggs"}, Keywords: []string{"protein", "breakfast"}},
	{Name: "Butter", Icon: "🧈", Category: model.CategoryDairy, Aliases: []string{"unsalted butter"}, Keywords: []string{"dairy", "baking"}},
	{Name: "Cheese", Icon: "🧀", Category: model.CategoryDairy, Aliases: []string{"cheddar", "mozzarella"}, Keywords: []string{"dairy"}},
	{Name: "Yogurt", Icon: "🥣", Category: model.CategoryDairy, Aliases: []string{"yoghurt", "greek yogurt"}, Keywords: []string{"dairy", "probiotic", "breakfast"}},
	{Name: "Cream", Icon: "🥛", Category: model.CategoryDairy, Aliases: []string{"heavy cream", "whipping cream"}, Keywords: []string{"dairy", "baking"}},

	// Meat & seafood
	{Name: "Chicken", Icon: "🍗", Category: model.CategoryMeat, Aliases: []string{"chicken breast", "chicken thighs"}, Keywords: []string{"poultry", "protein"}},
	{Name: "Ground Beef", Icon: "🥩", Category: model.CategoryMeat, Aliases: []string{"beef", "hamburger meat"}, Keywords: []string{"red meat", "protein"}},
	{Name: "Bacon", Icon: "🥓", Category: model.CategoryMeat, Aliases: []string{"turkey bacon"}, Keywords: []string{"pork", "breakfast"}},
	{Name: "Salmon", Icon: "🐟", Category: model.CategoryMeat, Aliases: []string{"salmon fillet"}, Keywords: []string{"fish", "seafood", "omega-3"}},
	{Name: "Shrimp", Icon: "🦐", Category: model.CategoryMeat, Aliases: []string{"prawns"}, Keywords: []string{"seafood", "shellfish"}},
	{Name: "Turkey", Icon: "🦃", Category: model.CategoryMeat, Aliases: []string{"sliced turkey", "deli turkey"}, Keywords: []string{"poultry", "protein"}},

	// Bakery
	{Name: "Bread", Icon: "🍞", Category: model.CategoryBakery, Aliases: []string{"sourdough", "whole wheat bread", "loaf"}, Keywords: []string{"toast", "sandwich"}},
	{Name: "Bagels", Icon: "🥯", Category: model.CategoryBakery, Aliases: []string{"bagel"}, Keywords: []string{"breakfast"}},
	{Name: "Tortillas", Icon: "🫓", Category: model.CategoryBakery, Aliases: []string{"tortilla", "wraps"}, Keywords: []string{"mexican"}},
	{Name: "Croissant", Icon: "🥐", Category: model.CategoryBakery, Aliases: []string{"croissants"}, Keywords: []string{"pastry", "breakfast"}},

	// Pantry
	{Name: "Rice", Icon: "🍚", Category: model.CategoryGrains, Aliases: []string{"white rice", "brown rice", "basmati"}, Keywords: []string{"grain", "staple"}},
	{Name: "Pasta", Icon: "🍝", Category: model.CategoryGrains, Aliases: []string{"spaghetti", "penne", "noodles"}, Keywords: []string{"grain", "italian"}},
	{Name: "Flour", Icon: "🌾", Category: model.CategoryPantry, Aliases: []string{"all-purpose flour"}, Keywords: []string{"baking"}},
	{Name: "Peanut Butter", Icon: "🥜", Category: model.CategoryPantry, Aliases: []string{"pb"}, Keywords: []string{"spread", "protein"}},
	{Name: "Honey", Icon: "🍯", Category: model.CategoryPantry, Keywords: []string{"sweetener", "spread"}},
	{Name: "Cereal", Icon: "🥣", Category: model.CategoryPantry, Aliases: []string{"granola"}, Keywords: []string{"breakfast"}},
	{Name: "Canned Tomatoes", Icon: "🥫", Category: model.CategoryCanned, Aliases: []string{"crushed tomatoes", "diced tomatoes"}, Keywords: []string{"sauce", "italian"}},
	{Name: "Black Beans", Icon: "🫘", Category: model.CategoryCanned, Aliases: []string{"beans", "canned beans"}, Keywords: []string{"legume", "protein"}},
	{Name: "Olive Oil", Icon: "🫒", Category: model.CategoryCondiments, Aliases: []string{"oil", "evoo"}, Keywords: []string{"cooking"}},
	{Name: "Ketchup", Icon: "🍅", Category: model.CategoryCondiments, Aliases: []string{"catsup"}, Keywords: []string{"condiment"}},
	{Name: "Salt", Icon: "🧂", Category: model.CategoryCondiments, Aliases: []string{"sea salt"}, Keywords: []string{"seasoning"}},

	// Snacks
	{Name: "Chips", Icon: "🍟", Category: model.CategorySnacks, Aliases: []string{"potato chips", "crisps"}, Keywords: []string{"salty"}},
	{Name: "Cookies", Icon: "🍪", Category: model.CategorySnacks, Aliases: []string{"cookie", "biscuits"}, Keywords: []string{"sweet", "dessert"}},
	{Name: "Crackers", Icon: "🍘", Category: model.CategorySnacks, Aliases: []string{"saltines"}, Keywords: []string{"salty"}},
	{Name: "Popcorn", Icon: "🍿", Category: model.CategorySnacks, Keywords: []string{"movie night"}},
	{Name: "Candy", Icon: "🍬", Category: model.CategorySnacks, Aliases: []string{"sweets", "chocolate"}, Keywords: []string{"treat"}},

	// Beverages
	{Name: "Coffee", Icon: "☕", Category: model.CategoryBeverages, Aliases: []string{"espresso", "coffee beans"}, Keywords: []string{"caffeine", "breakfast"}},
	{Name: "Tea", Icon: "🍵", Category: model.CategoryBeverages, Aliases: []string{"green tea", "black tea"}, Keywords: []string{"caffeine"}},
	{Name: "Orange Juice", Icon: "🧃", Category: model.CategoryBeverages, Aliases: []string{"oj"}, Keywords: []string{"breakfast", "citrus"}},
	{Name: "Apple Juice", Icon: "🧃", Category: model.CategoryBeverages, Keywords: []string{"kids"}},
	{Name: "Soda", Icon: "🥤", Category: model.CategoryBeverages, Aliases: []string{"pop", "cola"}, Keywords: []string{"fizzy"}},
	{Name: "Sparkling Water", Icon: "💧", Category: model.CategoryBeverages, Aliases: []string{"seltzer", "club soda"}, Keywords: []string{"fizzy"}},

	// Frozen
	{Name: "Ice Cream", Icon: "🍨", Category: model.CategoryFrozen, Aliases: []string{"gelato"}, Keywords: []string{"dessert", "sweet"}},
	{Name: "Frozen Pizza", Icon: "🍕", Category: model.CategoryFrozen, Aliases: []string{"pizza"}, Keywords: []string{"dinner"}},

	// Household & personal care
	{Name: "Paper Towels", Icon: "🧻", Category: model.CategoryHousehold, Aliases: []string{"kitchen roll"}, Keywords: []string{"cleaning"}},
	{Name: "Dish Soap", Icon: "🧼", Category: model.CategoryHousehold, Aliases: []string{"dishwashing liquid"}, Keywords: []string{"cleaning"}},
	{Name: "Toothpaste", Icon: "🪥", Category: model.CategoryPersonalCare, Keywords: []string{"dental", "hygiene"}},
	{Name: "Shampoo", Icon: "🧴", Category: model.CategoryPersonalCare, Keywords: []string{"hair", "hygiene"}},
}

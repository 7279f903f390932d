package catalog

import (
	"github.com/google/uuid"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// seedCatalog returns the built-in recipe set used when no catalog file is
// configured.
func seedCatalog() []recipe.Recipe {
	return []recipe.Recipe{
		{
			ID:         uuid.New(),
			Title:      "Spaghetti Aglio e Olio",
			Cuisine:    recipe.CuisineItalian,
			Difficulty: recipe.DifficultyEasy,
			PrepTime:   5,
			CookTime:   15,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: "spaghetti", Amount: 200, Unit: recipe.UnitGram},
				{Name: "garlic", Amount: 4, Unit: recipe.UnitPiece},
				{Name: "olive oil", Amount: 4, Unit: recipe.UnitTablespoon},
				{Name: "chili flakes", Amount: 1, Unit: recipe.UnitPinch},
			},
			Steps: []string{
				"Cook spaghetti in salted water until al dente.",
				"Gently fry sliced garlic and chili flakes in olive oil.",
				"Toss the pasta with the oil and a splash of cooking water.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagVegetarian, recipe.TagVegan, recipe.TagDairyFree},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Margherita Pizza",
			Cuisine:    recipe.CuisineItalian,
			Difficulty: recipe.DifficultyMedium,
			PrepTime:   90,
			CookTime:   12,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: "pizza dough", Amount: 400, Unit: recipe.UnitGram},
				{Name: "tomato passata", Amount: 150, Unit: recipe.UnitMilliliter},
				{Name: "mozzarella", Amount: 150, Unit: recipe.UnitGram},
				{Name: "basil", Amount: 1, Unit: recipe.UnitPinch},
			},
			Steps: []string{
				"Stretch the dough into a thin round.",
				"Spread passata, tear over the mozzarella.",
				"Bake at maximum heat until blistered, finish with basil.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagVegetarian},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Chicken Tikka Masala",
			Cuisine:    recipe.CuisineIndian,
			Difficulty: recipe.DifficultyMedium,
			PrepTime:   30,
			CookTime:   40,
			Servings:   4,
			Ingredients: []recipe.Ingredient{
				{Name: "chicken thigh", Amount: 600, Unit: recipe.UnitGram},
				{Name: "yogurt", Amount: 150, Unit: recipe.UnitMilliliter},
				{Name: "garam masala", Amount: 2, Unit: recipe.UnitTeaspoon},
				{Name: "tomato puree", Amount: 200, Unit: recipe.UnitMilliliter},
				{Name: "cream", Amount: 100, Unit: recipe.UnitMilliliter},
			},
			Steps: []string{
				"Marinate the chicken in yogurt and spices.",
				"Char the chicken under a hot grill.",
				"Simmer in the spiced tomato sauce, finish with cream.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagNonVegetarian, recipe.TagNutFree, recipe.TagHalal},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Vegetable Pad Thai",
			Cuisine:    recipe.CuisineThai,
			Difficulty: recipe.DifficultyEasy,
			PrepTime:   15,
			CookTime:   10,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: "rice noodles", Amount: 200, Unit: recipe.UnitGram},
				{Name: "tofu", Amount: 200, Unit: recipe.UnitGram},
				{Name: "tamarind paste", Amount: 2, Unit: recipe.UnitTablespoon},
				{Name: "peanuts", Amount: 50, Unit: recipe.UnitGram, Notes: "crushed"},
				{Name: "bean sprouts", Amount: 100, Unit: recipe.UnitGram},
			},
			Steps: []string{
				"Soak the noodles until pliable.",
				"Stir-fry tofu, add noodles and tamarind sauce.",
				"Top with sprouts and crushed peanuts.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagVegetarian, recipe.TagVegan, recipe.TagGlutenFree, recipe.TagDairyFree},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Beef Tacos",
			Cuisine:    recipe.CuisineMexican,
			Difficulty: recipe.DifficultyEasy,
			PrepTime:   10,
			CookTime:   15,
			Servings:   4,
			Ingredients: []recipe.Ingredient{
				{Name: "ground beef", Amount: 500, Unit: recipe.UnitGram},
				{Name: "corn tortillas", Amount: 8, Unit: recipe.UnitPiece},
				{Name: "onion", Amount: 1, Unit: recipe.UnitPiece},
				{Name: "cilantro", Amount: 1, Unit: recipe.UnitPinch},
				{Name: "lime", Amount: 1, Unit: recipe.UnitPiece},
			},
			Steps: []string{
				"Brown the beef with diced onion and spices.",
				"Warm the tortillas.",
				"Fill, then finish with cilantro and lime.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagNonVegetarian, recipe.TagDairyFree, recipe.TagNutFree, recipe.TagGlutenFree},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Miso Soup",
			Cuisine:    recipe.CuisineJapanese,
			Difficulty: recipe.DifficultyEasy,
			PrepTime:   5,
			CookTime:   10,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: "miso paste", Amount: 3, Unit: recipe.UnitTablespoon},
				{Name: "silken tofu", Amount: 150, Unit: recipe.UnitGram},
				{Name: "wakame", Amount: 5, Unit: recipe.UnitGram},
				{Name: "scallion", Amount: 1, Unit: recipe.UnitPiece},
			},
			Steps: []string{
				"Bring dashi or water to a bare simmer.",
				"Whisk in the miso off the heat.",
				"Add tofu cubes, wakame and sliced scallion.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagVegetarian, recipe.TagVegan, recipe.TagDairyFree, recipe.TagNutFree},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Coq au Vin",
			Cuisine:    recipe.CuisineFrench,
			Difficulty: recipe.DifficultyHard,
			PrepTime:   30,
			CookTime:   90,
			Servings:   4,
			Ingredients: []recipe.Ingredient{
				{Name: "chicken legs", Amount: 4, Unit: recipe.UnitPiece},
				{Name: "red wine", Amount: 500, Unit: recipe.UnitMilliliter},
				{Name: "bacon lardons", Amount: 150, Unit: recipe.UnitGram},
				{Name: "pearl onions", Amount: 200, Unit: recipe.UnitGram},
				{Name: "mushrooms", Amount: 250, Unit: recipe.UnitGram},
			},
			Steps: []string{
				"Brown the chicken and lardons.",
				"Deglaze with wine and braise slowly.",
				"Add onions and mushrooms for the final half hour.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagNonVegetarian, recipe.TagNutFree},
			Source:       recipe.SourceLocal,
		},
		{
			ID:         uuid.New(),
			Title:      "Greek Salad",
			Cuisine:    recipe.CuisineMediterranean,
			Difficulty: recipe.DifficultyEasy,
			PrepTime:   15,
			CookTime:   0,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: "tomatoes", Amount: 3, Unit: recipe.UnitPiece},
				{Name: "cucumber", Amount: 1, Unit: recipe.UnitPiece},
				{Name: "feta", Amount: 150, Unit: recipe.UnitGram},
				{Name: "kalamata olives", Amount: 80, Unit: recipe.UnitGram},
				{Name: "olive oil", Amount: 3, Unit: recipe.UnitTablespoon},
			},
			Steps: []string{
				"Chop the vegetables coarsely.",
				"Top with feta and olives, dress with oil and oregano.",
			},
			DietaryNotes: []recipe.DietaryTag{recipe.TagVegetarian, recipe.TagGlutenFree, recipe.TagNutFree, recipe.TagLowCarb},
			Source:       recipe.SourceLocal,
		},
	}
}

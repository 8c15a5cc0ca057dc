package catalog

import "github.com/lakay-labs/tiraj/internal/draw"

// defaultSets is the production catalog. Entries are grouped by category;
// within a set the first day entry is day1 of the pair and the second is
// day2. Numbers are 2-digit values (0-99).
var defaultSets = []PatternSet{
	// Cheval
	{
		Category: "Cheval", SubCategory: "Blanc",
		Days: []DayNumbers{
			{Day: draw.Lundi, Numbers: []int{5, 14, 41, 76}},
			{Day: draw.Jeudi, Numbers: []int{5, 23, 32, 76}},
		},
	},
	{
		Category: "Cheval", SubCategory: "Noir",
		Days: []DayNumbers{
			{Day: draw.Mardi, Numbers: []int{10, 18, 81, 90}},
			{Day: draw.Vendredi, Numbers: []int{10, 27, 72, 90}},
		},
	},
	// Chien
	{
		Category: "Chien", SubCategory: "Garde",
		Days: []DayNumbers{
			{Day: draw.Mercredi, Numbers: []int{7, 16, 61, 70}},
			{Day: draw.Samedi, Numbers: []int{7, 34, 43, 70}},
		},
	},
	{
		Category: "Chien", SubCategory: "Errant",
		Days: []DayNumbers{
			{Day: draw.Dimanche, Numbers: []int{12, 21, 48, 84}},
			{Day: draw.Lundi, Numbers: []int{12, 39, 84, 93}},
		},
	},
	// Poisson
	{
		Category: "Poisson", SubCategory: "Rouge",
		Days: []DayNumbers{
			{Day: draw.Mardi, Numbers: []int{8, 24, 42, 80}},
			{Day: draw.Mercredi, Numbers: []int{8, 45, 54, 80}},
		},
	},
	{
		Category: "Poisson", SubCategory: "Grande-Mer",
		Days: []DayNumbers{
			{Day: draw.Jeudi, Numbers: []int{3, 30, 56, 65}},
			{Day: draw.Dimanche, Numbers: []int{3, 30, 67, 76}},
		},
	},
	// Rivière
	{
		Category: "Rivière", SubCategory: "Calme",
		Days: []DayNumbers{
			{Day: draw.Lundi, Numbers: []int{2, 20, 53, 35}},
			{Day: draw.Vendredi, Numbers: []int{2, 20, 58, 85}},
		},
	},
	{
		Category: "Rivière", SubCategory: "Débordée",
		Days: []DayNumbers{
			{Day: draw.Mercredi, Numbers: []int{19, 91, 46, 64}},
			{Day: draw.Dimanche, Numbers: []int{19, 28, 82, 91}},
		},
	},
	// Mariage
	{
		Category: "Mariage", SubCategory: "Église",
		Days: []DayNumbers{
			{Day: draw.Samedi, Numbers: []int{11, 15, 51, 88}},
			{Day: draw.Dimanche, Numbers: []int{11, 26, 62, 88}},
		},
	},
	{
		Category: "Mariage", SubCategory: "Civil",
		Days: []DayNumbers{
			{Day: draw.Jeudi, Numbers: []int{22, 36, 63, 77}},
			{Day: draw.Samedi, Numbers: []int{22, 49, 77, 94}},
		},
	},
	// Maison
	{
		Category: "Maison", SubCategory: "Neuve",
		Days: []DayNumbers{
			{Day: draw.Mardi, Numbers: []int{6, 17, 60, 71}},
			{Day: draw.Samedi, Numbers: []int{6, 38, 60, 83}},
		},
	},
	{
		Category: "Maison", SubCategory: "Ancienne",
		Days: []DayNumbers{
			{Day: draw.Vendredi, Numbers: []int{9, 25, 52, 90}},
			{Day: draw.Lundi, Numbers: []int{9, 47, 74, 90}},
		},
	},
	// Voyage
	{
		Category: "Voyage", SubCategory: "Mer",
		Days: []DayNumbers{
			{Day: draw.Dimanche, Numbers: []int{13, 31, 57, 75}},
			{Day: draw.Mercredi, Numbers: []int{13, 31, 68, 86}},
		},
	},
	{
		Category: "Voyage", SubCategory: "Avion",
		Days: []DayNumbers{
			{Day: draw.Lundi, Numbers: []int{4, 40, 59, 95}},
			{Day: draw.Jeudi, Numbers: []int{4, 40, 66, 96}},
		},
	},
	// Pluie
	{
		Category: "Pluie", SubCategory: "Orage",
		Days: []DayNumbers{
			{Day: draw.Mercredi, Numbers: []int{1, 29, 92, 99}},
			{Day: draw.Vendredi, Numbers: []int{1, 10, 44, 99}},
		},
	},
	{
		Category: "Pluie", SubCategory: "Fine",
		Days: []DayNumbers{
			{Day: draw.Mardi, Numbers: []int{33, 37, 73, 78}},
			{Day: draw.Dimanche, Numbers: []int{33, 50, 73, 87}},
		},
	},
}

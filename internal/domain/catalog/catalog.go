// Package catalog define las categorías de la tienda y el catálogo inicial que se usa cuando
// el almacén todavía no tiene productos guardados.
package catalog

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// AllCategories valor de filtro que devuelve todo el catálogo.
const AllCategories = "All"

var categories = []string{
	"Stationery",
	"Electronics",
	"Books & Learning Materials",
	"Safety Equipment",
	"Tools",
	"Food & Snacks",
	"Personal Care",
	"Campus Accessories",
}

// Categories categorías conocidas, en orden de presentación.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory indica si c es una categoría conocida.
func IsCategory(c string) bool {
	return slices.Contains(categories, c)
}

// Seed devuelve una copia nueva del catálogo inicial (IDs "1".."9").
func Seed() []entity.Product {
	return []entity.Product{
		{
			ID: "1", Name: "Engineering Notebook", Price: decimal.NewFromInt(6500),
			Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
			Category:    "Stationery",
			Description: "Professional engineering notebook with grid pages",
		},
		{
			ID: "2", Name: "Scientific Calculator", Price: decimal.NewFromInt(45000),
			Image:       "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Description: "Advanced scientific calculator for complex calculations",
		},
		{
			ID: "3", Name: "Lab Safety Goggles", Price: decimal.NewFromInt(8500),
			Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
			Category:    "Safety Equipment",
			Description: "Professional safety goggles for laboratory work",
		},
		{
			ID: "4", Name: "Technical Drawing Kit", Price: decimal.NewFromInt(25000),
			Image:       "https://images.unsplash.com/photo-1535268647677-300dbf3d78d1?w=400&h=400&fit=crop",
			Category:    "Tools",
			Description: "Complete set of technical drawing instruments",
		},
		{
			ID: "5", Name: "USB Flash Drive 32GB", Price: decimal.NewFromInt(12500),
			Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Description: "High-speed USB 3.0 flash drive for data storage",
		},
		{
			ID: "6", Name: "Student Handbook", Price: decimal.NewFromInt(3500),
			Image:       "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
			Category:    "Books & Learning Materials",
			Description: "Official polytechnic student handbook and guide",
		},
		{
			ID: "7", Name: "Energy Drink", Price: decimal.NewFromInt(800),
			Image:       "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=400&h=400&fit=crop",
			Category:    "Food & Snacks",
			Description: "Refreshing energy drink for late study sessions",
		},
		{
			ID: "8", Name: "Ballpoint Pens (Pack of 5)", Price: decimal.NewFromInt(1500),
			Image:       "https://images.unsplash.com/photo-1586952518485-11b180e92764?w=400&h=400&fit=crop",
			Category:    "Stationery",
			Description: "High-quality ballpoint pens for everyday writing",
		},
		{
			ID: "9", Name: "Campus ID Lanyard", Price: decimal.NewFromInt(2000),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			Category:    "Campus Accessories",
			Description: "Durable lanyard for your student ID and keys",
		},
	}
}

// Filter devuelve los productos de la categoría; "" o AllCategories devuelve todos.
func Filter(products []entity.Product, category string) []entity.Product {
	if category == "" || category == AllCategories {
		return slices.Clone(products)
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
